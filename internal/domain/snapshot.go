package domain

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

// SnapshotData сырые наборы записей для построения снимка
type SnapshotData struct {
	ClassTypes  []*ClassType
	FixedSlots  []*FixedSlot
	Students    []*Student
	Enrollments []*Enrollment
	Reschedules []*RescheduleRequest
	Trials      []*TrialBooking
	Credits     []*CreditUsage
	Sessions    []*SessionRecord
	Blocks      []*SlotBlock
	Holidays    []Holiday
}

// Snapshot неизменяемый индексированный снимок данных студии
// Все функции расчета работают только с ним, поэтому безопасны для конкурентного чтения.
// Возвращаемые срезы и указатели нельзя изменять.
// Записи без id или с битыми ссылками пропускаются при построении
type Snapshot struct {
	classTypes map[string]*ClassType
	slots      map[string]*FixedSlot
	slotOrder  []*FixedSlot
	students   map[string]*Student

	enrollments       map[string]*Enrollment
	enrollmentsBySlot map[string][]*Enrollment

	reschedules   []*RescheduleRequest
	rescheduleIDs map[string]*RescheduleRequest
	byOrigin      map[string][]*RescheduleRequest
	byDestination map[string][]*RescheduleRequest

	trials   map[string][]*TrialBooking
	credits  map[string][]*CreditUsage
	sessions map[string]*SessionRecord
	blocks   map[string][]*SlotBlock
	holidays map[string]Holiday
}

// NewSnapshot строит снимок
func NewSnapshot(data SnapshotData) *Snapshot {
	s := &Snapshot{
		classTypes:        make(map[string]*ClassType, len(data.ClassTypes)),
		slots:             make(map[string]*FixedSlot, len(data.FixedSlots)),
		students:          make(map[string]*Student, len(data.Students)),
		enrollments:       make(map[string]*Enrollment, len(data.Enrollments)),
		enrollmentsBySlot: make(map[string][]*Enrollment),
		rescheduleIDs:     make(map[string]*RescheduleRequest, len(data.Reschedules)),
		byOrigin:          make(map[string][]*RescheduleRequest),
		byDestination:     make(map[string][]*RescheduleRequest),
		trials:            make(map[string][]*TrialBooking),
		credits:           make(map[string][]*CreditUsage),
		sessions:          make(map[string]*SessionRecord),
		blocks:            make(map[string][]*SlotBlock),
		holidays:          make(map[string]Holiday, len(data.Holidays)),
	}

	for _, ct := range data.ClassTypes {
		if ct != nil && ct.ID != "" {
			s.classTypes[ct.ID] = ct
		}
	}

	for _, slot := range data.FixedSlots {
		if slot == nil || slot.ID == "" || slot.StartTime.Validate() != nil || slot.EndTime.Validate() != nil {
			continue
		}
		if _, dup := s.slots[slot.ID]; dup {
			continue
		}
		s.slots[slot.ID] = slot
		s.slotOrder = append(s.slotOrder, slot)
	}
	sort.SliceStable(s.slotOrder, func(i, j int) bool {
		a, b := s.slotOrder[i], s.slotOrder[j]
		if a.DayOfWeek != b.DayOfWeek {
			return a.DayOfWeek < b.DayOfWeek
		}
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})

	for _, st := range data.Students {
		if st != nil && st.ID != "" {
			s.students[st.ID] = st
		}
	}

	for _, e := range data.Enrollments {
		if e == nil || e.ID == "" || e.FixedSlotID == "" || e.StudentID == "" {
			continue
		}
		s.enrollments[e.ID] = e
		s.enrollmentsBySlot[e.FixedSlotID] = append(s.enrollmentsBySlot[e.FixedSlotID], e)
	}

	for _, r := range data.Reschedules {
		if r == nil || r.ID == "" || !r.Status.IsValid() {
			continue
		}
		s.reschedules = append(s.reschedules, r)
		s.rescheduleIDs[r.ID] = r
		s.byOrigin[r.Origin().Key()] = append(s.byOrigin[r.Origin().Key()], r)
		s.byDestination[r.Destination().Key()] = append(s.byDestination[r.Destination().Key()], r)
	}

	for _, t := range data.Trials {
		if t != nil && t.ID != "" {
			key := t.Occurrence().Key()
			s.trials[key] = append(s.trials[key], t)
		}
	}

	for _, c := range data.Credits {
		if c != nil && c.ID != "" && c.StudentID != "" {
			key := c.Occurrence().Key()
			s.credits[key] = append(s.credits[key], c)
		}
	}

	for _, rec := range data.Sessions {
		if rec != nil && rec.FixedSlotID != "" {
			s.sessions[rec.Occurrence().Key()] = rec
		}
	}

	for _, b := range data.Blocks {
		if b != nil && b.ClassTypeID != "" {
			s.blocks[b.ClassTypeID] = append(s.blocks[b.ClassTypeID], b)
		}
	}

	for _, h := range data.Holidays {
		s.holidays[DateOnly(h.Date).Format(DateFormat)] = h
	}

	return s
}

// ClassType ищет модальность
func (s *Snapshot) ClassType(id string) (*ClassType, bool) {
	ct, ok := s.classTypes[id]
	return ct, ok
}

// ClassTypes все модальности в порядке id
func (s *Snapshot) ClassTypes() []*ClassType {
	result := make([]*ClassType, 0, len(s.classTypes))
	for _, ct := range s.classTypes {
		result = append(result, ct)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// FixedSlot ищет слот
func (s *Snapshot) FixedSlot(id string) (*FixedSlot, bool) {
	slot, ok := s.slots[id]
	return slot, ok
}

// FixedSlots все слоты, упорядоченные по дню и времени
func (s *Snapshot) FixedSlots() []*FixedSlot {
	return s.slotOrder
}

// FixedSlotsOf слоты модальности, упорядоченные по дню и времени
func (s *Snapshot) FixedSlotsOf(classTypeID string) []*FixedSlot {
	var result []*FixedSlot
	for _, slot := range s.slotOrder {
		if slot.ClassTypeID == classTypeID {
			result = append(result, slot)
		}
	}
	return result
}

// Student ищет ученика
func (s *Snapshot) Student(id string) (*Student, bool) {
	st, ok := s.students[id]
	return st, ok
}

// Students все ученики
func (s *Snapshot) Students() []*Student {
	result := make([]*Student, 0, len(s.students))
	for _, st := range s.students {
		result = append(result, st)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Enrollment ищет запись на слот
func (s *Snapshot) Enrollment(id string) (*Enrollment, bool) {
	e, ok := s.enrollments[id]
	return e, ok
}

// EnrollmentsOf записи на слот
func (s *Snapshot) EnrollmentsOf(slotID string) []*Enrollment {
	return s.enrollmentsBySlot[slotID]
}

// Reschedule ищет заявку
func (s *Snapshot) Reschedule(id string) (*RescheduleRequest, bool) {
	r, ok := s.rescheduleIDs[id]
	return r, ok
}

// Reschedules все заявки
func (s *Snapshot) Reschedules() []*RescheduleRequest {
	return s.reschedules
}

// ReschedulesFrom заявки, уходящие с занятия
func (s *Snapshot) ReschedulesFrom(occ Occurrence) []*RescheduleRequest {
	return s.byOrigin[occ.Key()]
}

// ReschedulesTo заявки, приходящие на занятие
func (s *Snapshot) ReschedulesTo(occ Occurrence) []*RescheduleRequest {
	return s.byDestination[occ.Key()]
}

// TrialsFor пробные записи на занятие
func (s *Snapshot) TrialsFor(occ Occurrence) []*TrialBooking {
	return s.trials[occ.Key()]
}

// CreditsFor разовые посещения занятия
func (s *Snapshot) CreditsFor(occ Occurrence) []*CreditUsage {
	return s.credits[occ.Key()]
}

// Session итог занятия, если он есть
func (s *Snapshot) Session(occ Occurrence) (*SessionRecord, bool) {
	rec, ok := s.sessions[occ.Key()]
	return rec, ok
}

// Sessions все итоги занятий, упорядоченные по дате
func (s *Snapshot) Sessions() []*SessionRecord {
	result := make([]*SessionRecord, 0, len(s.sessions))
	for _, rec := range s.sessions {
		result = append(result, rec)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].FixedSlotID < result[j].FixedSlotID
	})
	return result
}

// BlocksOf блокировки модальности
func (s *Snapshot) BlocksOf(classTypeID string) []*SlotBlock {
	return s.blocks[classTypeID]
}

// IsBlocked true, если ячейка модальности заблокирована вручную
func (s *Snapshot) IsBlocked(classTypeID string, day int, t types.TimeString) bool {
	for _, b := range s.blocks[classTypeID] {
		if b.Matches(classTypeID, day, t) {
			return true
		}
	}
	return false
}

// IsSlotBlocked true, если заблокировано начало слота
func (s *Snapshot) IsSlotBlocked(slot *FixedSlot) bool {
	return s.IsBlocked(slot.ClassTypeID, slot.DayOfWeek, slot.StartTime)
}

// HolidayOn праздник на дату, если он есть
func (s *Snapshot) HolidayOn(date time.Time) (Holiday, bool) {
	h, ok := s.holidays[DateOnly(date).Format(DateFormat)]
	return h, ok
}

// LinkedClassTypes модальности, связанные с данной в любую сторону
func (s *Snapshot) LinkedClassTypes(classTypeID string) []*ClassType {
	seen := make(map[string]bool)
	var result []*ClassType

	add := func(id string) {
		if id == classTypeID || seen[id] {
			return
		}
		if ct, ok := s.classTypes[id]; ok {
			seen[id] = true
			result = append(result, ct)
		}
	}

	if ct, ok := s.classTypes[classTypeID]; ok {
		for _, id := range ct.LinkedClassTypeIDs {
			add(id)
		}
	}
	for _, other := range s.ClassTypes() {
		if other.IsLinkedTo(classTypeID) {
			add(other.ID)
		}
	}
	return result
}
