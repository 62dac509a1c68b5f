package resolve_occupancy

import (
	"context"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// SnapshotLoader загрузчик снимка данных
type SnapshotLoader interface {
	ForOccurrences(ctx context.Context, occs ...domain.Occurrence) (*domain.Snapshot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
