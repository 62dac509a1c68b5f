package remove_enrollment

import (
	"context"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

type EnrollmentService interface {
	Remove(ctx context.Context, enrollmentID string, role domain.Role) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
