package use_credit

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("use_credit: invalid input data: %w", domain.ErrValidation)

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = fmt.Errorf("use_credit: fixed slot not found: %w", domain.ErrNotFound)

	// ErrStudentNotFound возвращается, когда ученик не найден
	ErrStudentNotFound = fmt.Errorf("use_credit: student not found: %w", domain.ErrNotFound)

	// ErrNotAnOccurrence возвращается, если слот не проводится в указанную дату
	ErrNotAnOccurrence = fmt.Errorf("use_credit: slot does not occur on date: %w", domain.ErrValidation)

	// ErrDateInPast возвращается для прошедших занятий
	ErrDateInPast = fmt.Errorf("use_credit: date is in the past: %w", domain.ErrValidation)

	// ErrNonOperating возвращается, если студия в эту дату не работает
	ErrNonOperating = fmt.Errorf("use_credit: date is non-operating: %w", domain.ErrValidation)

	// ErrSlotBlocked возвращается, если слот заблокирован
	ErrSlotBlocked = fmt.Errorf("use_credit: slot is blocked: %w", domain.ErrValidation)

	// ErrStudentNotEligible возвращается для замороженных, неактивных и ожидающих учеников
	ErrStudentNotEligible = fmt.Errorf("use_credit: student is not eligible: %w", domain.ErrValidation)

	// ErrAlreadyAttending возвращается, если ученик уже есть в составе занятия
	ErrAlreadyAttending = fmt.Errorf("use_credit: student already attends occurrence: %w", domain.ErrValidation)

	// ErrSlotFull возвращается, когда в занятии нет мест
	ErrSlotFull = fmt.Errorf("use_credit: occurrence is full: %w", domain.ErrCapacityExceeded)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("use_credit: internal error")
)
