package holidays

import (
	"context"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// Static фиксированный список праздников (собственные праздники студии из конфига)
type Static struct {
	holidays []domain.Holiday
}

// NewStatic создает провайдер по списку
func NewStatic(holidays []domain.Holiday) *Static {
	return &Static{holidays: holidays}
}

// GetHolidays возвращает праздники, попадающие в диапазон
func (s *Static) GetHolidays(_ context.Context, rng domain.DateRange) ([]domain.Holiday, error) {
	var result []domain.Holiday
	for _, h := range s.holidays {
		if rng.Contains(h.Date) {
			result = append(result, h)
		}
	}
	return result, nil
}
