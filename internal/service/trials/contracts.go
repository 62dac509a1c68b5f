package trials

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// BookingRepository интерфейс репозитория пробных занятий
type BookingRepository interface {
	GetTrialBooking(ctx context.Context, id string) (*domain.TrialBooking, error)
	PatchTrialStatus(ctx context.Context, id string, status domain.TrialStatus, attended *bool, at time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
