package import_students

import (
	"context"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/enrollments"
)

// StudentRepository интерфейс репозитория учеников
type StudentRepository interface {
	List(ctx context.Context) ([]*domain.Student, error)
	Create(ctx context.Context, s *domain.Student) (*domain.Student, error)
}

// EnrollmentService интерфейс сервиса постоянных записей
type EnrollmentService interface {
	Add(ctx context.Context, req *enrollments.AddRequest) (*domain.Enrollment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
