package students

import (
	"context"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// StudentRepository интерфейс репозитория учеников
type StudentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
	Create(ctx context.Context, s *domain.Student) (*domain.Student, error)
	UpdateStatus(ctx context.Context, s *domain.Student) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
