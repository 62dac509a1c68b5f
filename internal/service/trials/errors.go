package trials

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

var (
	// ErrTrialNotFound возвращается, когда пробное занятие не найдено
	ErrTrialNotFound = fmt.Errorf("trials: trial booking not found: %w", domain.ErrNotFound)

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = fmt.Errorf("trials: %w", domain.ErrInvalidStateTransition)

	// ErrAccessDenied возвращается, когда роль не позволяет менять пробные занятия
	ErrAccessDenied = fmt.Errorf("trials: %w", domain.ErrAccessDenied)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("trials: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("trials: internal error")
)
