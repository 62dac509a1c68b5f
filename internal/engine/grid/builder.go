package grid

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/conflict"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

// Build строит сетку модальности на неделю, в которую попадает weekStart (с понедельника)
//
// Строка видна, если хотя бы в один видимый день её момент покрыт работающим слотом
// (start <= t < end) или попадает в окно доступности. Моменты окончания занятий
// показываются граничными строками, если дальше покрытия нет.
// Праздники и ручные блокировки скрывают доступность и отмечаются разными причинами
func Build(snap *domain.Snapshot, classTypeID string, weekStart time.Time) Grid {
	start := domain.WeekStart(weekStart)
	g := Grid{ClassTypeID: classTypeID, WeekStart: start}

	ct, ok := snap.ClassType(classTypeID)
	b := &builder{snap: snap, ct: ct, slots: snap.FixedSlotsOf(classTypeID)}

	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		g.Days = append(g.Days, b.day(date))
	}
	if !ok {
		return g
	}

	for _, t := range b.candidateTimes() {
		visible, boundary := b.rowVisibility(g.Days, t)
		if !visible {
			continue
		}
		row := Row{Time: t, Boundary: boundary}
		for _, d := range g.Days {
			row.Cells = append(row.Cells, b.cell(d, t))
		}
		g.Rows = append(g.Rows, row)
	}

	return g
}

type builder struct {
	snap  *domain.Snapshot
	ct    *domain.ClassType
	slots []*domain.FixedSlot
}

func (b *builder) day(date time.Time) Day {
	d := Day{DayOfWeek: domain.Weekday(date), Date: date}

	if h, ok := b.snap.HolidayOn(date); ok {
		d.Reason = ReasonNonOperating
		d.Holiday = &h
		return d
	}
	if b.ct == nil {
		return d
	}

	hasSlots := false
	for _, slot := range b.slots {
		if slot.DayOfWeek != d.DayOfWeek {
			continue
		}
		hasSlots = true
		if !b.snap.IsSlotBlocked(slot) {
			d.Visible = true
			return d
		}
	}
	if b.ct.HasAvailabilityOn(d.DayOfWeek) {
		d.Visible = true
		return d
	}
	if hasSlots {
		d.Reason = ReasonBlocked
	}
	return d
}

// candidateTimes начала и концы слотов плюс шаги окон доступности
func (b *builder) candidateTimes() []types.TimeString {
	set := make(map[types.TimeString]struct{})
	for _, slot := range b.slots {
		set[slot.StartTime] = struct{}{}
		set[slot.EndTime] = struct{}{}
	}
	step := b.ct.Duration()
	for _, w := range b.ct.Availability {
		for t := w.Start; t.IsBefore(w.End); {
			set[t] = struct{}{}
			next, err := t.AddMinutes(step)
			if err != nil || next == "24:00" {
				break
			}
			t = next
		}
	}

	times := make([]types.TimeString, 0, len(set))
	for t := range set {
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].IsBefore(times[j]) })
	return times
}

func (b *builder) rowVisibility(days []Day, t types.TimeString) (visible, boundary bool) {
	for _, d := range days {
		if !d.Visible {
			continue
		}
		if b.coveredBySlot(d.DayOfWeek, t) != nil || b.available(d.DayOfWeek, t) {
			return true, false
		}
	}
	for _, d := range days {
		if d.Visible && b.endsAt(d.DayOfWeek, t) {
			return true, true
		}
	}
	return false, false
}

func (b *builder) coveredBySlot(day int, t types.TimeString) *domain.FixedSlot {
	for _, slot := range b.slots {
		if slot.Covers(day, t) && !b.snap.IsSlotBlocked(slot) {
			return slot
		}
	}
	return nil
}

func (b *builder) available(day int, t types.TimeString) bool {
	return b.ct.IsAvailableAt(day, t) && !b.snap.IsBlocked(b.ct.ID, day, t)
}

func (b *builder) endsAt(day int, t types.TimeString) bool {
	for _, slot := range b.slots {
		if slot.DayOfWeek == day && slot.EndTime == t && !b.snap.IsSlotBlocked(slot) {
			return true
		}
	}
	return false
}

func (b *builder) cell(d Day, t types.TimeString) Cell {
	c := Cell{DayOfWeek: d.DayOfWeek, Date: d.Date, Status: CellEmpty}

	if d.Reason == ReasonNonOperating {
		c.Status, c.Reason = CellNonOperating, ReasonNonOperating
		return c
	}

	c.Turmas = b.turmas(d, t)
	blocked := b.snap.IsBlocked(b.ct.ID, d.DayOfWeek, t)

	switch {
	case blocked:
		c.Status, c.Reason = CellBlocked, ReasonBlocked
	case len(c.Turmas) > 0:
		c.Status = CellScheduled
	case b.coveredBySlot(d.DayOfWeek, t) != nil:
		c.Status = CellCovered
	case b.ct.IsAvailableAt(d.DayOfWeek, t):
		c.Status = CellAvailable
	}

	if res := conflict.CheckOn(b.snap, b.ct.ID, d.Date, t); res.Occupied {
		c.Conflict = &res
		if c.Status == CellAvailable {
			c.Status = CellLinkedOccupied
		}
	}
	return c
}

// turmas группирует слоты, начинающиеся в момент t, по (инструктор, начало, конец)
func (b *builder) turmas(d Day, t types.TimeString) []Turma {
	index := make(map[domain.TurmaKey]int)
	var result []Turma
	var seen []map[string]bool

	for _, slot := range b.slots {
		if slot.DayOfWeek != d.DayOfWeek || slot.StartTime != t {
			continue
		}
		key := slot.Key()
		i, ok := index[key]
		if !ok {
			i = len(result)
			index[key] = i
			result = append(result, Turma{Key: key})
			seen = append(seen, make(map[string]bool))
		}

		occ := roster.Resolve(b.snap, slot.ID, d.Date)
		turma := &result[i]
		turma.Slots = append(turma.Slots, TurmaSlot{
			Slot:      slot,
			Blocked:   b.snap.IsSlotBlocked(slot),
			Occupancy: occ,
		})
		// Строки одной группы делят одну вместимость, ученик в нескольких строках учитывается один раз
		for _, a := range occ.Attendees {
			k := a.StudentID
			if k == "" {
				k = "ref:" + a.Ref
			}
			if !seen[i][k] {
				seen[i][k] = true
				turma.ActiveCount++
			}
		}
		if occ.Capacity > turma.Capacity {
			turma.Capacity = occ.Capacity
		}
	}

	for i := range result {
		result[i].IsFull = result[i].ActiveCount >= result[i].Capacity
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Key.InstructorID != result[j].Key.InstructorID {
			return result[i].Key.InstructorID < result[j].Key.InstructorID
		}
		return result[i].Key.EndTime.IsBefore(result[j].Key.EndTime)
	})
	return result
}
