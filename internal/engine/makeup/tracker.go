package makeup

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// Status состояние отработки пропуска
type Status string

const (
	// StatusOpen окно отработки открыто, заявки нет
	StatusOpen Status = "open"
	// StatusPending заявка на отработку ждет решения
	StatusPending Status = "pending"
	// StatusScheduled отработка назначена (одобренная заявка)
	StatusScheduled Status = "scheduled"
	// StatusExpired окно закрыто без отработки
	StatusExpired Status = "expired"
)

// Absence пропуск ученика
type Absence struct {
	StudentID   string
	FixedSlotID string
	Date        time.Time
	SessionID   string
}

// Tracking состояние отработки пропуска
type Tracking struct {
	Absence          Absence
	HasMakeupRequest bool
	MakeupRequest    *domain.RescheduleRequest
	PendingRequest   *domain.RescheduleRequest
	Deadline         time.Time
	IsExpired        bool
	Status           Status
}

// Deadline последний день, когда можно отработать пропуск от absenceDate
func Deadline(absenceDate time.Time) time.Time {
	return domain.DateOnly(absenceDate).AddDate(0, 0, domain.MakeupWindowDays)
}

// IsExpired true, если today позже дедлайна
func IsExpired(absenceDate, today time.Time) bool {
	return domain.DateOnly(today).After(Deadline(absenceDate))
}

// Track вычисляет состояние отработки пропуска на дату today
func Track(snap *domain.Snapshot, absence Absence, today time.Time) Tracking {
	tr := Tracking{
		Absence:   absence,
		Deadline:  Deadline(absence.Date),
		IsExpired: IsExpired(absence.Date, today),
	}

	origin := domain.NewOccurrence(absence.FixedSlotID, absence.Date)
	for _, r := range snap.ReschedulesFrom(origin) {
		if !r.IsMakeup || r.StudentID != absence.StudentID {
			continue
		}
		switch {
		case r.IsApproved():
			tr.HasMakeupRequest = true
			tr.MakeupRequest = r
		case r.IsPending() && tr.PendingRequest == nil:
			tr.PendingRequest = r
		}
	}

	switch {
	case tr.HasMakeupRequest:
		tr.Status = StatusScheduled
	case tr.IsExpired:
		tr.Status = StatusExpired
	case tr.PendingRequest != nil:
		tr.Status = StatusPending
	default:
		tr.Status = StatusOpen
	}
	return tr
}

// Filter ограничивает список пропусков
type Filter struct {
	StudentID   string
	FixedSlotID string
	Range       *domain.DateRange
}

// Absences пропуски из итогов занятий
// Отметка по заявке на перенос относится к ученику заявки, пробные занятия пропуском не считаются
func Absences(snap *domain.Snapshot, f Filter) []Absence {
	var result []Absence
	for _, rec := range snap.Sessions() {
		if f.FixedSlotID != "" && rec.FixedSlotID != f.FixedSlotID {
			continue
		}
		if f.Range != nil && !f.Range.Contains(rec.Date) {
			continue
		}
		for _, e := range rec.Entries {
			if e.Present {
				continue
			}
			studentID, ok := studentOf(snap, e.StudentRef)
			if !ok || (f.StudentID != "" && studentID != f.StudentID) {
				continue
			}
			result = append(result, Absence{
				StudentID:   studentID,
				FixedSlotID: rec.FixedSlotID,
				Date:        domain.DateOnly(rec.Date),
				SessionID:   rec.ID,
			})
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].StudentID < result[j].StudentID
	})
	return result
}

// IsAbsent true, если в итогах занятия ученик отмечен отсутствующим
func IsAbsent(snap *domain.Snapshot, occ domain.Occurrence, studentID string) bool {
	rec, ok := snap.Session(occ)
	if !ok {
		return false
	}
	for _, e := range rec.Entries {
		if id, ok := studentOf(snap, e.StudentRef); ok && id == studentID {
			return !e.Present
		}
	}
	return false
}

func studentOf(snap *domain.Snapshot, ref string) (string, bool) {
	if _, ok := snap.Student(ref); ok {
		return ref, true
	}
	if r, ok := snap.Reschedule(ref); ok {
		return r.StudentID, true
	}
	return "", false
}
