package enrollments

import (
	"context"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// FixedSlotRepository интерфейс репозитория слотов
type FixedSlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.FixedSlot, error)
}

// ClassTypeRepository интерфейс репозитория модальностей
type ClassTypeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ClassType, error)
}

// StudentRepository интерфейс репозитория учеников и записей
type StudentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	ListEnrollments(ctx context.Context, fixedSlotID *string) ([]*domain.Enrollment, error)
	GetEnrollment(ctx context.Context, id string) (*domain.Enrollment, error)
	CreateEnrollment(ctx context.Context, e *domain.Enrollment) (*domain.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics доменные счетчики
type Metrics interface {
	ObserveCapacityRejection(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
