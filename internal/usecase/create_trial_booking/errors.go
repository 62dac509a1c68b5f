package create_trial_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_trial_booking: invalid input data: %w", domain.ErrValidation)

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = fmt.Errorf("create_trial_booking: fixed slot not found: %w", domain.ErrNotFound)

	// ErrNotAnOccurrence возвращается, если слот не проводится в указанную дату
	ErrNotAnOccurrence = fmt.Errorf("create_trial_booking: slot does not occur on date: %w", domain.ErrValidation)

	// ErrDateInPast возвращается для прошедших занятий
	ErrDateInPast = fmt.Errorf("create_trial_booking: date is in the past: %w", domain.ErrValidation)

	// ErrNonOperating возвращается, если студия в эту дату не работает
	ErrNonOperating = fmt.Errorf("create_trial_booking: date is non-operating: %w", domain.ErrValidation)

	// ErrSlotBlocked возвращается, если слот заблокирован
	ErrSlotBlocked = fmt.Errorf("create_trial_booking: slot is blocked: %w", domain.ErrValidation)

	// ErrDuplicateTrial возвращается, если этот контакт уже записан на занятие
	ErrDuplicateTrial = fmt.Errorf("create_trial_booking: contact already booked for occurrence: %w", domain.ErrValidation)

	// ErrSlotFull возвращается, когда в занятии нет мест
	ErrSlotFull = fmt.Errorf("create_trial_booking: occurrence is full: %w", domain.ErrCapacityExceeded)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_trial_booking: internal error")
)
