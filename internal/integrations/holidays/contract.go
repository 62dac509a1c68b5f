package holidays

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// Provider источник праздников за диапазон дат
type Provider interface {
	GetHolidays(ctx context.Context, rng domain.DateRange) ([]domain.Holiday, error)
}

// RedisClient подмножество *redis.Client, нужное кешу
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
