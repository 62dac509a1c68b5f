package create_student

import (
	"context"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/students"
)

type StudentService interface {
	Create(ctx context.Context, req *students.CreateRequest) (*domain.Student, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
