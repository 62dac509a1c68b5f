package students

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

var (
	// ErrStudentNotFound возвращается, когда ученик не найден
	ErrStudentNotFound = fmt.Errorf("students: student not found: %w", domain.ErrNotFound)

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = fmt.Errorf("students: invalid status: %w", domain.ErrValidation)

	// ErrAccessDenied возвращается, когда роль не позволяет менять учеников
	ErrAccessDenied = fmt.Errorf("students: %w", domain.ErrAccessDenied)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("students: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("students: internal error")
)
