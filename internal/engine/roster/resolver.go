package roster

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

type options struct {
	excluded map[string]struct{}
}

// Option настройка расчета
type Option func(*options)

// WithoutRequest исключает заявку из расчета
// Используется при повторной проверке вместимости во время одобрения самой заявки
func WithoutRequest(ids ...string) Option {
	return func(o *options) {
		if o.excluded == nil {
			o.excluded = make(map[string]struct{}, len(ids))
		}
		for _, id := range ids {
			o.excluded[id] = struct{}{}
		}
	}
}

// Resolve восстанавливает фактический состав занятия slotID на дату date
//
// Порядок применения:
//  1. постоянные записи учеников, занимающих место;
//  2. минус одобренные переносы с этого занятия (отработка с закрытого итогом занятия ученика не снимает);
//  3. плюс одобренные переносы на это занятие;
//  4. плюс пробные занятия в статусах scheduled и approved;
//  5. плюс разовые посещения за кредит.
//
// Заявки в ожидании места не меняют и возвращаются как пометки.
// Ученик учитывается не больше одного раза. Функция чистая: одинаковый снимок дает одинаковый результат
func Resolve(snap *domain.Snapshot, slotID string, date time.Time, opts ...Option) Occupancy {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	occ := domain.NewOccurrence(slotID, date)
	result := Occupancy{SlotID: slotID, Date: occ.Date}

	slot, ok := snap.FixedSlot(slotID)
	if !ok {
		result.IsFull = true
		return result
	}
	ct, _ := snap.ClassType(slot.ClassTypeID)
	result.Capacity = slot.EffectiveCapacity(ct)

	session, settled := snap.Session(occ)
	result.Settled = settled

	b := &builder{snap: snap, session: session, seen: make(map[string]bool)}

	// 1. Постоянные записи
	for _, e := range snap.EnrollmentsOf(slotID) {
		student, ok := snap.Student(e.StudentID)
		if !ok || !student.IsCountable() {
			continue
		}
		b.add(Attendee{
			Ref:          student.ID,
			StudentID:    student.ID,
			Name:         student.Name,
			Provenance:   FromEnrollment,
			EnrollmentID: e.ID,
		})
	}

	// 2. Уходы с занятия
	for _, r := range snap.ReschedulesFrom(occ) {
		if o.isExcluded(r.ID) {
			continue
		}
		switch {
		case r.IsApproved():
			// В итоге занятия ученик уже отмечен отсутствующим
			if !(r.IsMakeup && settled) {
				b.remove(leavingStudent(snap, r))
			}
			result.Annotations = append(result.Annotations, annotate(ApprovedOutgoing, r, r.Destination()))
		case r.IsPending():
			result.Annotations = append(result.Annotations, annotate(PendingOutgoing, r, r.Destination()))
		}
	}

	// 3. Приходы на занятие
	for _, r := range snap.ReschedulesTo(occ) {
		if o.isExcluded(r.ID) {
			continue
		}
		switch {
		case r.IsApproved():
			student, ok := snap.Student(r.StudentID)
			if !ok || !student.IsCountable() {
				continue
			}
			b.add(Attendee{
				Ref:        r.ID,
				StudentID:  student.ID,
				Name:       student.Name,
				Provenance: FromReschedule,
				RequestID:  r.ID,
				IsMakeup:   r.IsMakeup,
			})
		case r.IsPending():
			result.Annotations = append(result.Annotations, annotate(PendingIncoming, r, r.Origin()))
		}
	}

	// 4. Пробные занятия
	for _, t := range snap.TrialsFor(occ) {
		if !t.CountsTowardOccupancy() {
			continue
		}
		b.add(Attendee{
			Ref:        t.ID,
			Name:       t.ContactName,
			Provenance: FromTrial,
		})
	}

	// 5. Разовые посещения
	for _, c := range snap.CreditsFor(occ) {
		student, ok := snap.Student(c.StudentID)
		if !ok || !student.IsCountable() {
			continue
		}
		b.add(Attendee{
			Ref:        student.ID,
			StudentID:  student.ID,
			Name:       student.Name,
			Provenance: FromCredit,
		})
	}

	result.Attendees = b.attendees
	result.ActiveCount = len(b.attendees)
	result.IsFull = result.ActiveCount >= result.Capacity
	return result
}

func (o options) isExcluded(id string) bool {
	_, ok := o.excluded[id]
	return ok
}

// leavingStudent ученик, уходящий по заявке: из записи на слот, если она указана
func leavingStudent(snap *domain.Snapshot, r *domain.RescheduleRequest) string {
	if r.OriginEnrollmentID != nil {
		if e, ok := snap.Enrollment(*r.OriginEnrollmentID); ok {
			return e.StudentID
		}
	}
	return r.StudentID
}

func annotate(kind AnnotationKind, r *domain.RescheduleRequest, counterpart domain.Occurrence) Annotation {
	return Annotation{
		Kind:        kind,
		RequestID:   r.ID,
		StudentID:   r.StudentID,
		Counterpart: counterpart,
		IsMakeup:    r.IsMakeup,
	}
}

type builder struct {
	snap      *domain.Snapshot
	session   *domain.SessionRecord
	seen      map[string]bool
	attendees []Attendee
}

func (b *builder) add(a Attendee) {
	// Пробные занятия не привязаны к ученику, дубли среди них исключаются по id записи
	key := a.StudentID
	if key == "" {
		key = "ref:" + a.Ref
	}
	if b.seen[key] {
		return
	}
	b.seen[key] = true
	a.Presence = b.presence(a)
	b.attendees = append(b.attendees, a)
}

func (b *builder) remove(studentID string) {
	if studentID == "" || !b.seen[studentID] {
		return
	}
	delete(b.seen, studentID)
	for i, a := range b.attendees {
		if a.StudentID == studentID {
			b.attendees = append(b.attendees[:i:i], b.attendees[i+1:]...)
			return
		}
	}
}

func (b *builder) presence(a Attendee) Presence {
	if b.session == nil {
		return PresenceUnknown
	}
	entry, ok := b.session.EntryFor(a.Ref)
	if !ok && a.StudentID != "" && a.StudentID != a.Ref {
		entry, ok = b.session.EntryFor(a.StudentID)
	}
	switch {
	case !ok:
		return PresenceUnknown
	case entry.Present:
		return PresencePresent
	default:
		return PresenceAbsent
	}
}
