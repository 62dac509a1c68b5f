package holidays

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

const cacheKeyPrefix = "studio:holidays:"

// Cache кеширует ответы провайдера в Redis
// Ошибки Redis не прерывают запрос: данные берутся из провайдера напрямую
type Cache struct {
	next  Provider
	redis RedisClient
	ttl   time.Duration
	log   Logger
}

// NewCache создает кеш поверх провайдера
func NewCache(next Provider, client RedisClient, ttl time.Duration, log Logger) *Cache {
	return &Cache{next: next, redis: client, ttl: ttl, log: log}
}

// GetHolidays возвращает праздники из кеша или из провайдера
func (c *Cache) GetHolidays(ctx context.Context, rng domain.DateRange) ([]domain.Holiday, error) {
	key := cacheKey(rng)

	raw, err := c.redis.Get(ctx, key).Result()
	switch {
	case err == nil:
		var dtos []HolidayDTO
		if jsonErr := json.Unmarshal([]byte(raw), &dtos); jsonErr == nil {
			result := make([]domain.Holiday, 0, len(dtos))
			for _, dto := range dtos {
				if h, ok := fromDTO(dto); ok {
					result = append(result, h)
				}
			}
			return result, nil
		}
		c.log.Warn("GetHolidays: corrupted cache entry key=%s", key)
	case errors.Is(err, redis.Nil):
	default:
		c.log.Warn("GetHolidays: redis get failed key=%s: %v", key, err)
	}

	holidays, err := c.next.GetHolidays(ctx, rng)
	if err != nil {
		return nil, err
	}

	dtos := make([]HolidayDTO, 0, len(holidays))
	for _, h := range holidays {
		dtos = append(dtos, toDTO(h))
	}
	payload, err := json.Marshal(dtos)
	if err != nil {
		return holidays, nil
	}
	if err := c.redis.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("GetHolidays: redis set failed key=%s: %v", key, err)
	}
	return holidays, nil
}

func cacheKey(rng domain.DateRange) string {
	return fmt.Sprintf("%s%s:%s", cacheKeyPrefix, rng.From.Format(domain.DateFormat), rng.To.Format(domain.DateFormat))
}
