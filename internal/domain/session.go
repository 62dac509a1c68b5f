package domain

import "time"

// AttendanceEntry отметка присутствия
// StudentRef это id ученика, id заявки на перенос или id пробного занятия
type AttendanceEntry struct {
	StudentRef string
	Present    bool
}

// SessionRecord итог проведенного занятия
// Для пары (слот, дата) существует не более одной записи
type SessionRecord struct {
	ID           string
	FixedSlotID  string
	Date         time.Time
	Entries      []AttendanceEntry
	PresentCount int
	AbsentCount  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Occurrence занятие, к которому относится запись
func (s *SessionRecord) Occurrence() Occurrence {
	return NewOccurrence(s.FixedSlotID, s.Date)
}

// EntryFor ищет отметку по ссылке
func (s *SessionRecord) EntryFor(ref string) (AttendanceEntry, bool) {
	for _, e := range s.Entries {
		if e.StudentRef == ref {
			return e, true
		}
	}
	return AttendanceEntry{}, false
}

// Recount пересчитывает итоги по отметкам
func (s *SessionRecord) Recount() {
	s.PresentCount, s.AbsentCount = 0, 0
	for _, e := range s.Entries {
		if e.Present {
			s.PresentCount++
		} else {
			s.AbsentCount++
		}
	}
}
