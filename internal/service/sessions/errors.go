package sessions

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = fmt.Errorf("sessions: fixed slot not found: %w", domain.ErrNotFound)

	// ErrNotAnOccurrence возвращается, если слот не проводится в эту дату
	ErrNotAnOccurrence = fmt.Errorf("sessions: slot does not occur on date: %w", domain.ErrValidation)

	// ErrUnknownAttendee возвращается, если отметка ссылается не на участника занятия
	ErrUnknownAttendee = fmt.Errorf("sessions: entry does not belong to the roster: %w", domain.ErrValidation)

	// ErrDuplicateEntry возвращается при повторной отметке одного участника
	ErrDuplicateEntry = fmt.Errorf("sessions: duplicate entry: %w", domain.ErrValidation)

	// ErrFutureSession возвращается при попытке закрыть занятие в будущем
	ErrFutureSession = fmt.Errorf("sessions: occurrence is in the future: %w", domain.ErrValidation)

	// ErrAccessDenied возвращается, когда роль не позволяет вести журнал
	ErrAccessDenied = fmt.Errorf("sessions: %w", domain.ErrAccessDenied)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("sessions: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions: internal error")
)
