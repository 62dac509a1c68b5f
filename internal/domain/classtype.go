package domain

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

// ClassType модальность занятий (пилатес, функциональный тренинг и т.п.)
type ClassType struct {
	ID                     string
	Name                   string
	Color                  string
	DefaultCapacity        int
	SessionDurationMinutes int

	// Availability недельные окна, в которые можно ставить занятия
	Availability []AvailabilityWindow

	// LinkedClassTypeIDs модальности, делящие с этой одно помещение
	LinkedClassTypeIDs []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AvailabilityWindow окно доступности [Start, End) в день недели
type AvailabilityWindow struct {
	DayOfWeek int
	Start     types.TimeString
	End       types.TimeString
}

// Contains проверяет попадание момента t в окно
func (w AvailabilityWindow) Contains(day int, t types.TimeString) bool {
	return w.DayOfWeek == day && !t.IsBefore(w.Start) && t.IsBefore(w.End)
}

// IsLinkedTo true, если модальность явно связана с other
func (c *ClassType) IsLinkedTo(other string) bool {
	for _, id := range c.LinkedClassTypeIDs {
		if id == other {
			return true
		}
	}
	return false
}

// IsAvailableAt true, если момент попадает в одно из окон доступности
func (c *ClassType) IsAvailableAt(day int, t types.TimeString) bool {
	for _, w := range c.Availability {
		if w.Contains(day, t) {
			return true
		}
	}
	return false
}

// HasAvailabilityOn true, если у дня недели есть хотя бы одно окно
func (c *ClassType) HasAvailabilityOn(day int) bool {
	for _, w := range c.Availability {
		if w.DayOfWeek == day {
			return true
		}
	}
	return false
}

// Duration длительность занятия в минутах с учетом значения по умолчанию
func (c *ClassType) Duration() int {
	if c.SessionDurationMinutes <= 0 {
		return DefaultSessionDurationMinutes
	}
	return c.SessionDurationMinutes
}
