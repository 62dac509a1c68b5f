package set_student_status

import (
	"context"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/students"
)

type StudentService interface {
	SetStatus(ctx context.Context, req *students.SetStatusRequest) (*domain.Student, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
