package domain

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

// SlotBlock ручная блокировка ячейки (модальность, день, время)
type SlotBlock struct {
	ID          string
	ClassTypeID string
	DayOfWeek   int
	Time        types.TimeString
	Manual      bool
	CreatedAt   time.Time
}

// Matches проверяет совпадение ячейки
func (b *SlotBlock) Matches(classTypeID string, day int, t types.TimeString) bool {
	return b.ClassTypeID == classTypeID && b.DayOfWeek == day && b.Time == t
}

// HolidayScope источник праздника
type HolidayScope string

const (
	HolidayNational  HolidayScope = "national"
	HolidayMunicipal HolidayScope = "municipal"
	HolidayCustom    HolidayScope = "custom"
)

// Holiday нерабочий день
type Holiday struct {
	Date  time.Time
	Scope HolidayScope
	Name  string
}

// HolidayPolicy какие праздники студия игнорирует
type HolidayPolicy struct {
	IgnoredScopes []HolidayScope
}

// Applies true, если праздник делает студию нерабочей
func (p HolidayPolicy) Applies(h Holiday) bool {
	for _, s := range p.IgnoredScopes {
		if s == h.Scope {
			return false
		}
	}
	return true
}

// Filter оставляет только действующие праздники
func (p HolidayPolicy) Filter(holidays []Holiday) []Holiday {
	result := make([]Holiday, 0, len(holidays))
	for _, h := range holidays {
		if p.Applies(h) {
			result = append(result, h)
		}
	}
	return result
}
