package create_reschedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_reschedule: invalid input data: %w", domain.ErrValidation)

	// ErrSameOccurrence возвращается, когда занятие назначения совпадает с исходным
	ErrSameOccurrence = fmt.Errorf("create_reschedule: destination equals origin: %w", domain.ErrValidation)

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = fmt.Errorf("create_reschedule: fixed slot not found: %w", domain.ErrNotFound)

	// ErrStudentNotFound возвращается, когда ученик не найден
	ErrStudentNotFound = fmt.Errorf("create_reschedule: student not found: %w", domain.ErrNotFound)

	// ErrEnrollmentNotFound возвращается, когда запись не найдена или относится к другому слоту
	ErrEnrollmentNotFound = fmt.Errorf("create_reschedule: enrollment not found: %w", domain.ErrNotFound)

	// ErrNotAnOccurrence возвращается, если слот не проводится в указанную дату
	ErrNotAnOccurrence = fmt.Errorf("create_reschedule: slot does not occur on date: %w", domain.ErrValidation)

	// ErrDateInPast возвращается для занятий, которые уже прошли
	ErrDateInPast = fmt.Errorf("create_reschedule: date is in the past: %w", domain.ErrValidation)

	// ErrNonOperating возвращается, если в дату назначения студия не работает
	ErrNonOperating = fmt.Errorf("create_reschedule: destination date is non-operating: %w", domain.ErrValidation)

	// ErrSlotBlocked возвращается, если слот назначения заблокирован
	ErrSlotBlocked = fmt.Errorf("create_reschedule: destination slot is blocked: %w", domain.ErrValidation)

	// ErrStudentNotEligible возвращается для замороженных, неактивных и ожидающих учеников
	ErrStudentNotEligible = fmt.Errorf("create_reschedule: student is not eligible: %w", domain.ErrValidation)

	// ErrNotAttending возвращается, если ученика нет в составе исходного занятия
	ErrNotAttending = fmt.Errorf("create_reschedule: student does not attend origin: %w", domain.ErrValidation)

	// ErrNoAbsence возвращается, если отработка запрошена без отмеченного пропуска
	ErrNoAbsence = fmt.Errorf("create_reschedule: no recorded absence for makeup: %w", domain.ErrValidation)

	// ErrAlreadyAttending возвращается, если ученик уже есть в составе занятия назначения
	ErrAlreadyAttending = fmt.Errorf("create_reschedule: student already attends destination: %w", domain.ErrValidation)

	// ErrDuplicateRequest возвращается, если по исходному занятию уже есть открытая заявка
	ErrDuplicateRequest = fmt.Errorf("create_reschedule: open request for origin already exists: %w", domain.ErrValidation)

	// ErrMakeupExpired возвращается, если окно отработки пропуска закрыто
	ErrMakeupExpired = fmt.Errorf("create_reschedule: makeup window closed: %w", domain.ErrDeadlineExpired)

	// ErrDestinationFull возвращается, когда в занятии назначения нет мест
	ErrDestinationFull = fmt.Errorf("create_reschedule: destination occurrence is full: %w", domain.ErrCapacityExceeded)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reschedule: internal error")
)
