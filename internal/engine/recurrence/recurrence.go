package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// weekdays индекс: номер дня недели (0 = воскресенье)
var weekdays = [7]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// Rule еженедельное правило повторения для дня недели
func Rule(dayOfWeek int, from time.Time) (*rrule.RRule, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, fmt.Errorf("recurrence: invalid day of week %d", dayOfWeek)
	}
	return rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{weekdays[dayOfWeek]},
		Dtstart:   domain.DateOnly(from),
	})
}

// Dates даты слота в диапазоне (границы включительно)
func Dates(slot *domain.FixedSlot, r domain.DateRange) []time.Time {
	rule, err := Rule(slot.DayOfWeek, r.From)
	if err != nil {
		return nil
	}
	dates := rule.Between(r.From, r.To, true)
	for i := range dates {
		dates[i] = domain.DateOnly(dates[i])
	}
	return dates
}

// Occurrences занятия всех слотов в диапазоне
func Occurrences(slots []*domain.FixedSlot, r domain.DateRange) []domain.Occurrence {
	var result []domain.Occurrence
	for _, slot := range slots {
		for _, d := range Dates(slot, r) {
			result = append(result, domain.NewOccurrence(slot.ID, d))
		}
	}
	return result
}

// IsOccurrence true, если дата является занятием слота
func IsOccurrence(slot *domain.FixedSlot, date time.Time) bool {
	return slot.OccursOn(date)
}
