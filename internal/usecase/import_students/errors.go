package import_students

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("import_students: invalid input data: %w", domain.ErrValidation)

	// ErrAccessDenied возвращается, когда роль не позволяет импортировать учеников
	ErrAccessDenied = fmt.Errorf("import_students: %w", domain.ErrAccessDenied)

	// ErrChosenIDRequired возвращается, когда для решения choose не указан ученик
	ErrChosenIDRequired = fmt.Errorf("import_students: chosen student id is required: %w", domain.ErrValidation)

	// ErrNothingToConfirm возвращается, когда для решения confirm нет подходящего кандидата
	ErrNothingToConfirm = fmt.Errorf("import_students: no candidate to confirm: %w", domain.ErrValidation)

	// ErrCandidateNotFound возвращается, когда выбранный ученик не существует
	ErrCandidateNotFound = fmt.Errorf("import_students: chosen student not found: %w", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("import_students: internal error")
)
