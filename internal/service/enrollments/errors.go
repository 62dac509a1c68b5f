package enrollments

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = fmt.Errorf("enrollments: fixed slot not found: %w", domain.ErrNotFound)

	// ErrStudentNotFound возвращается, когда ученик не найден
	ErrStudentNotFound = fmt.Errorf("enrollments: student not found: %w", domain.ErrNotFound)

	// ErrEnrollmentNotFound возвращается, когда запись не найдена
	ErrEnrollmentNotFound = fmt.Errorf("enrollments: enrollment not found: %w", domain.ErrNotFound)

	// ErrAlreadyEnrolled возвращается, когда ученик уже записан на слот
	ErrAlreadyEnrolled = fmt.Errorf("enrollments: student already enrolled: %w", domain.ErrValidation)

	// ErrSlotFull возвращается, когда в постоянном составе слота нет мест
	ErrSlotFull = fmt.Errorf("enrollments: fixed slot is full: %w", domain.ErrCapacityExceeded)

	// ErrAccessDenied возвращается, когда роль не позволяет менять записи
	ErrAccessDenied = fmt.Errorf("enrollments: %w", domain.ErrAccessDenied)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("enrollments: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("enrollments: internal error")
)
