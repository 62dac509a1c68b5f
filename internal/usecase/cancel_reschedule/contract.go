package cancel_reschedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// RescheduleRepository интерфейс репозитория заявок на перенос
type RescheduleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.RescheduleRequest, error)
	PatchStatus(ctx context.Context, id string, status domain.RescheduleStatus, reviewedBy *string, reviewedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// SessionRepository интерфейс репозитория итогов занятий
type SessionRepository interface {
	Get(ctx context.Context, fixedSlotID string, date time.Time) (*domain.SessionRecord, error)
}

// SnapshotLoader загрузка снимка данных для занятий
type SnapshotLoader interface {
	ForOccurrences(ctx context.Context, occs ...domain.Occurrence) (*domain.Snapshot, error)
}

// OccurrenceLocker блокировка занятия на время транзакции
type OccurrenceLocker interface {
	LockOccurrence(ctx context.Context, occ domain.Occurrence) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics доменные счетчики
type Metrics interface {
	ObserveRescheduleTransition(to string)
	ObserveCapacityRejection(operation string)
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
