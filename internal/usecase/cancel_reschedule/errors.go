package cancel_reschedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("cancel_reschedule: invalid input data: %w", domain.ErrValidation)

	// ErrAccessDenied возвращается, когда отменить заявку пытается не ее автор
	ErrAccessDenied = fmt.Errorf("cancel_reschedule: %w", domain.ErrAccessDenied)

	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = fmt.Errorf("cancel_reschedule: request not found: %w", domain.ErrNotFound)

	// ErrInvalidTransition возвращается для отклоненных и уже отмененных заявок
	ErrInvalidTransition = fmt.Errorf("cancel_reschedule: %w", domain.ErrInvalidStateTransition)

	// ErrAlreadySettled возвращается, если занятие назначения уже закрыто итогом
	ErrAlreadySettled = fmt.Errorf("cancel_reschedule: destination session already recorded: %w", domain.ErrInvalidStateTransition)

	// ErrDatePassed возвращается, если занятие назначения или исходное занятие уже прошло
	ErrDatePassed = fmt.Errorf("cancel_reschedule: occurrence date has passed: %w", domain.ErrInvalidStateTransition)

	// ErrOriginFull возвращается, если в исходном занятии не осталось места для возврата
	ErrOriginFull = fmt.Errorf("cancel_reschedule: origin occurrence is full: %w", domain.ErrCapacityExceeded)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reschedule: internal error")
)
