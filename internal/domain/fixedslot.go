package domain

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

// FixedSlot повторяющееся еженедельное занятие
// Слоты с одинаковыми (инструктор, день, начало, конец) показываются одной группой (турмой),
// но хранятся раздельно
type FixedSlot struct {
	ID               string
	ClassTypeID      string
	InstructorID     string
	DayOfWeek        int // 0 = воскресенье ... 6 = суббота
	StartTime        types.TimeString
	EndTime          types.TimeString
	CapacityOverride *int
	Note             *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TurmaKey ключ группировки слотов в турму
type TurmaKey struct {
	InstructorID string
	StartTime    types.TimeString
	EndTime      types.TimeString
}

// Key возвращает ключ турмы слота
func (s *FixedSlot) Key() TurmaKey {
	return TurmaKey{InstructorID: s.InstructorID, StartTime: s.StartTime, EndTime: s.EndTime}
}

// Covers проверяет start <= t < end в день недели day
func (s *FixedSlot) Covers(day int, t types.TimeString) bool {
	return s.DayOfWeek == day && !t.IsBefore(s.StartTime) && t.IsBefore(s.EndTime)
}

// Overlaps проверяет пересечение полуинтервалов [start, end) в день недели day
func (s *FixedSlot) Overlaps(day int, start, end types.TimeString) bool {
	return s.DayOfWeek == day && start.IsBefore(s.EndTime) && s.StartTime.IsBefore(end)
}

// OccursOn true, если дата приходится на день недели слота
func (s *FixedSlot) OccursOn(date time.Time) bool {
	return Weekday(date) == s.DayOfWeek
}

// EffectiveCapacity вместимость слота: переопределение или значение модальности
func (s *FixedSlot) EffectiveCapacity(ct *ClassType) int {
	if s.CapacityOverride != nil {
		return *s.CapacityOverride
	}
	if ct == nil {
		return 0
	}
	return ct.DefaultCapacity
}

// DurationMinutes длительность слота
func (s *FixedSlot) DurationMinutes() int {
	return s.EndTime.Minutes() - s.StartTime.Minutes()
}
