package enrollments

import "github.com/m04kA/SMC-StudioSchedule/internal/domain"

// AddRequest запрос на постоянную запись ученика на слот
type AddRequest struct {
	FixedSlotID string      `validate:"required"`
	StudentID   string      `validate:"required"`
	Note        *string     `validate:"omitempty,max=500"`
	Role        domain.Role `validate:"required"`
}
