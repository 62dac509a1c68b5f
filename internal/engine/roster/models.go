package roster

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// Provenance откуда участник попал в занятие
type Provenance string

const (
	FromEnrollment Provenance = "enrollment"
	FromReschedule Provenance = "reschedule"
	FromTrial      Provenance = "trial"
	FromCredit     Provenance = "credit"
)

// Presence отметка присутствия на дату
type Presence string

const (
	PresenceUnknown Presence = "unknown"
	PresencePresent Presence = "present"
	PresenceAbsent  Presence = "absent"
)

// Attendee участник занятия
type Attendee struct {
	// Ref ссылка для отметки присутствия: id ученика, заявки или пробного занятия
	Ref          string
	StudentID    string // пусто для пробного занятия
	Name         string
	Provenance   Provenance
	Presence     Presence
	EnrollmentID string
	RequestID    string
	IsMakeup     bool
}

// AnnotationKind вид пометки о заявке
type AnnotationKind string

const (
	// ApprovedOutgoing одобренный уход с занятия (место освобождено)
	ApprovedOutgoing AnnotationKind = "approved_outgoing"
	// PendingOutgoing заявка на уход ждет решения, место не освобождено
	PendingOutgoing AnnotationKind = "pending_outgoing"
	// PendingIncoming заявка на приход ждет решения, место не занято
	PendingIncoming AnnotationKind = "pending_incoming"
)

// Annotation пометка о заявке на перенос
type Annotation struct {
	Kind        AnnotationKind
	RequestID   string
	StudentID   string
	Counterpart domain.Occurrence
	IsMakeup    bool
}

// Occupancy состав и заполненность занятия на дату
type Occupancy struct {
	SlotID      string
	Date        time.Time
	ActiveCount int
	Capacity    int
	IsFull      bool
	Attendees   []Attendee
	Annotations []Annotation

	// Settled true, если по занятию уже есть итоговая запись посещаемости
	Settled bool
}

// AvailableSpots количество свободных мест (не меньше нуля)
func (o Occupancy) AvailableSpots() int {
	if free := o.Capacity - o.ActiveCount; free > 0 {
		return free
	}
	return 0
}

// Has true, если ученик среди участников
func (o Occupancy) Has(studentID string) bool {
	for _, a := range o.Attendees {
		if a.StudentID != "" && a.StudentID == studentID {
			return true
		}
	}
	return false
}
