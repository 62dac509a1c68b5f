package create_fixed_slot

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_fixed_slot: invalid input data: %w", domain.ErrValidation)

	// ErrInvalidTime возвращается, если конец не позже начала или длительность вне допустимых границ
	ErrInvalidTime = fmt.Errorf("create_fixed_slot: invalid time range: %w", domain.ErrValidation)

	// ErrOutsideAvailability возвращается, если слот не помещается в окно доступности модальности
	ErrOutsideAvailability = fmt.Errorf("create_fixed_slot: slot is outside class type availability: %w", domain.ErrValidation)

	// ErrClassTypeNotFound возвращается, когда модальность не найдена
	ErrClassTypeNotFound = fmt.Errorf("create_fixed_slot: class type not found: %w", domain.ErrNotFound)

	// ErrConflictOccupied возвращается, если время занято связанной модальностью
	ErrConflictOccupied = fmt.Errorf("create_fixed_slot: %w", domain.ErrConflictOccupied)

	// ErrAccessDenied возвращается, когда роль не позволяет менять расписание
	ErrAccessDenied = fmt.Errorf("create_fixed_slot: %w", domain.ErrAccessDenied)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_fixed_slot: internal error")
)
