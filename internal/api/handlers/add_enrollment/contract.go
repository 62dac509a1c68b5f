package add_enrollment

import (
	"context"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/enrollments"
)

type EnrollmentService interface {
	Add(ctx context.Context, req *enrollments.AddRequest) (*domain.Enrollment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
