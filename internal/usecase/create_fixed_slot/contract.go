package create_fixed_slot

import (
	"context"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// FixedSlotRepository интерфейс репозитория слотов
type FixedSlotRepository interface {
	Create(ctx context.Context, slot *domain.FixedSlot) (*domain.FixedSlot, error)
}

// SnapshotLoader загрузчик снимка данных
type SnapshotLoader interface {
	ForRange(ctx context.Context, rng domain.DateRange) (*domain.Snapshot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
