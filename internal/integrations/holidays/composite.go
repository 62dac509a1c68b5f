package holidays

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// Composite объединяет несколько провайдеров
// Недоступный провайдер пропускается с логом ошибки
type Composite struct {
	providers []Provider
	log       Logger
}

// NewComposite создает объединенный провайдер
func NewComposite(log Logger, providers ...Provider) *Composite {
	return &Composite{providers: providers, log: log}
}

// GetHolidays собирает праздники со всех провайдеров, по одному на дату
// При совпадении дат остается первый по порядку провайдеров
func (c *Composite) GetHolidays(ctx context.Context, rng domain.DateRange) ([]domain.Holiday, error) {
	byDate := make(map[string]domain.Holiday)
	for _, p := range c.providers {
		holidays, err := p.GetHolidays(ctx, rng)
		if err != nil {
			c.log.Error("GetHolidays: provider unavailable, applying graceful degradation: %v", err)
			continue
		}
		for _, h := range holidays {
			key := h.Date.Format(domain.DateFormat)
			if _, ok := byDate[key]; !ok {
				byDate[key] = h
			}
		}
	}

	result := make([]domain.Holiday, 0, len(byDate))
	for _, h := range byDate {
		result = append(result, h)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}
