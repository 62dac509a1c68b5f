package slotblocks

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

var (
	// ErrClassTypeNotFound возвращается, когда модальность не найдена
	ErrClassTypeNotFound = fmt.Errorf("slotblocks: class type not found: %w", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда роль не позволяет блокировать ячейки
	ErrAccessDenied = fmt.Errorf("slotblocks: %w", domain.ErrAccessDenied)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("slotblocks: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slotblocks: internal error")
)
