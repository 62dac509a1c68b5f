package check_linked_conflict

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// SnapshotLoader загрузчик снимка данных
type SnapshotLoader interface {
	ForRange(ctx context.Context, rng domain.DateRange) (*domain.Snapshot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
