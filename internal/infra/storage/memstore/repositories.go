package memstore

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/classtype"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/fixedslot"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/reschedule"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/session"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/student"
)

// ClassTypeRepository модальности и блокировки ячеек
type ClassTypeRepository struct{ s *Store }

func (r *ClassTypeRepository) GetByID(_ context.Context, id string) (*domain.ClassType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ct, ok := r.s.d.classTypes[id]
	if !ok {
		return nil, classtype.ErrClassTypeNotFound
	}
	cp := cloneClassType(ct)
	return &cp, nil
}

func (r *ClassTypeRepository) List(_ context.Context) ([]*domain.ClassType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*domain.ClassType, 0, len(r.s.d.classTypes))
	for _, ct := range r.s.d.classTypes {
		cp := cloneClassType(ct)
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *ClassTypeRepository) ListSlotBlocks(_ context.Context, classTypeID *string) ([]*domain.SlotBlock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*domain.SlotBlock
	for _, b := range r.s.d.blocks {
		if classTypeID != nil && b.ClassTypeID != *classTypeID {
			continue
		}
		cp := b
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.ClassTypeID != b.ClassTypeID {
			return a.ClassTypeID < b.ClassTypeID
		}
		if a.DayOfWeek != b.DayOfWeek {
			return a.DayOfWeek < b.DayOfWeek
		}
		return a.Time.Compare(b.Time) < 0
	})
	return result, nil
}

func (r *ClassTypeRepository) ToggleSlotBlock(_ context.Context, block *domain.SlotBlock) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, b := range r.s.d.blocks {
		if b.Matches(block.ClassTypeID, block.DayOfWeek, block.Time) {
			delete(r.s.d.blocks, id)
			return false, nil
		}
	}
	block.CreatedAt = r.s.stamp()
	r.s.d.blocks[block.ID] = *block
	return true, nil
}

// FixedSlotRepository слоты расписания
type FixedSlotRepository struct{ s *Store }

func (r *FixedSlotRepository) GetByID(_ context.Context, id string) (*domain.FixedSlot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	slot, ok := r.s.d.slots[id]
	if !ok {
		return nil, fixedslot.ErrFixedSlotNotFound
	}
	return &slot, nil
}

func (r *FixedSlotRepository) List(_ context.Context, classTypeID *string) ([]*domain.FixedSlot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*domain.FixedSlot
	for _, slot := range r.s.d.slots {
		if classTypeID != nil && slot.ClassTypeID != *classTypeID {
			continue
		}
		cp := slot
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.DayOfWeek != b.DayOfWeek {
			return a.DayOfWeek < b.DayOfWeek
		}
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})
	return result, nil
}

func (r *FixedSlotRepository) Create(_ context.Context, slot *domain.FixedSlot) (*domain.FixedSlot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	slot.CreatedAt = r.s.stamp()
	slot.UpdatedAt = slot.CreatedAt
	r.s.d.slots[slot.ID] = *slot
	return slot, nil
}

// StudentRepository ученики и постоянные записи
type StudentRepository struct{ s *Store }

func (r *StudentRepository) GetByID(_ context.Context, id string) (*domain.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	st, ok := r.s.d.students[id]
	if !ok {
		return nil, student.ErrStudentNotFound
	}
	return &st, nil
}

func (r *StudentRepository) List(_ context.Context) ([]*domain.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*domain.Student, 0, len(r.s.d.students))
	for _, st := range r.s.d.students {
		cp := st
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *StudentRepository) Create(_ context.Context, st *domain.Student) (*domain.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	st.CreatedAt = r.s.stamp()
	st.UpdatedAt = st.CreatedAt
	r.s.d.students[st.ID] = *st
	return st, nil
}

func (r *StudentRepository) UpdateStatus(_ context.Context, st *domain.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.d.students[st.ID]
	if !ok {
		return student.ErrStudentNotFound
	}
	stored.Frozen = st.Frozen
	stored.Inactive = st.Inactive
	stored.Waitlisted = st.Waitlisted
	stored.UpdatedAt = r.s.stamp()
	r.s.d.students[st.ID] = stored
	return nil
}

func (r *StudentRepository) ListEnrollments(_ context.Context, fixedSlotID *string) ([]*domain.Enrollment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*domain.Enrollment
	for _, e := range r.s.d.enrollments {
		if fixedSlotID != nil && e.FixedSlotID != *fixedSlotID {
			continue
		}
		cp := e
		result = append(result, &cp)
	}
	sortByCreated(result,
		func(e *domain.Enrollment) time.Time { return e.CreatedAt },
		func(e *domain.Enrollment) string { return e.ID },
	)
	return result, nil
}

func (r *StudentRepository) GetEnrollment(_ context.Context, id string) (*domain.Enrollment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.d.enrollments[id]
	if !ok {
		return nil, student.ErrEnrollmentNotFound
	}
	return &e, nil
}

func (r *StudentRepository) CreateEnrollment(_ context.Context, e *domain.Enrollment) (*domain.Enrollment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.d.enrollments {
		if existing.FixedSlotID == e.FixedSlotID && existing.StudentID == e.StudentID {
			return nil, student.ErrAlreadyEnrolled
		}
	}
	e.CreatedAt = r.s.stamp()
	r.s.d.enrollments[e.ID] = *e
	return e, nil
}

func (r *StudentRepository) DeleteEnrollment(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.enrollments[id]; !ok {
		return student.ErrEnrollmentNotFound
	}
	delete(r.s.d.enrollments, id)
	return nil
}

// RescheduleRepository заявки на перенос и отработку
type RescheduleRepository struct{ s *Store }

func (r *RescheduleRepository) GetByID(_ context.Context, id string) (*domain.RescheduleRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	req, ok := r.s.d.reschedules[id]
	if !ok {
		return nil, reschedule.ErrRescheduleNotFound
	}
	return &req, nil
}

func (r *RescheduleRepository) List(_ context.Context, rng *domain.DateRange) ([]*domain.RescheduleRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*domain.RescheduleRequest
	for _, req := range r.s.d.reschedules {
		if !inRange(rng, req.OriginDate, req.DestinationDate) {
			continue
		}
		cp := req
		result = append(result, &cp)
	}
	sortByCreated(result,
		func(r *domain.RescheduleRequest) time.Time { return r.CreatedAt },
		func(r *domain.RescheduleRequest) string { return r.ID },
	)
	return result, nil
}

func (r *RescheduleRepository) Create(_ context.Context, req *domain.RescheduleRequest) (*domain.RescheduleRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if req.IsOpen() {
		for _, existing := range r.s.d.reschedules {
			if existing.IsOpen() &&
				existing.StudentID == req.StudentID &&
				existing.Origin().Equal(req.Origin()) {
				return nil, reschedule.ErrDuplicateOpenRequest
			}
		}
	}
	req.CreatedAt = r.s.stamp()
	req.UpdatedAt = req.CreatedAt
	r.s.d.reschedules[req.ID] = *req
	return req, nil
}

func (r *RescheduleRepository) PatchStatus(_ context.Context, id string, status domain.RescheduleStatus, reviewedBy *string, reviewedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.d.reschedules[id]
	if !ok {
		return reschedule.ErrRescheduleNotFound
	}
	req.Status = status
	req.UpdatedAt = reviewedAt
	if reviewedBy != nil {
		by := *reviewedBy
		at := reviewedAt
		req.ReviewedBy = &by
		req.ReviewedAt = &at
	}
	r.s.d.reschedules[id] = req
	return nil
}

func (r *RescheduleRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.reschedules[id]; !ok {
		return reschedule.ErrRescheduleNotFound
	}
	delete(r.s.d.reschedules, id)
	return nil
}

// BookingRepository пробные занятия и кредиты
type BookingRepository struct{ s *Store }

func (r *BookingRepository) GetTrialBooking(_ context.Context, id string) (*domain.TrialBooking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.d.trials[id]
	if !ok {
		return nil, booking.ErrTrialNotFound
	}
	return &t, nil
}

func (r *BookingRepository) ListTrialBookings(_ context.Context, rng *domain.DateRange) ([]*domain.TrialBooking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*domain.TrialBooking
	for _, t := range r.s.d.trials {
		if !inRange(rng, t.Date) {
			continue
		}
		cp := t
		result = append(result, &cp)
	}
	sortByCreated(result,
		func(t *domain.TrialBooking) time.Time { return t.CreatedAt },
		func(t *domain.TrialBooking) string { return t.ID },
	)
	return result, nil
}

func (r *BookingRepository) CreateTrialBooking(_ context.Context, t *domain.TrialBooking) (*domain.TrialBooking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t.CreatedAt = r.s.stamp()
	t.UpdatedAt = t.CreatedAt
	r.s.d.trials[t.ID] = *t
	return t, nil
}

func (r *BookingRepository) PatchTrialStatus(_ context.Context, id string, status domain.TrialStatus, attended *bool, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.d.trials[id]
	if !ok {
		return booking.ErrTrialNotFound
	}
	t.Status = status
	t.Attended = attended
	t.UpdatedAt = at
	r.s.d.trials[id] = t
	return nil
}

func (r *BookingRepository) ListCreditUsages(_ context.Context, rng *domain.DateRange) ([]*domain.CreditUsage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*domain.CreditUsage
	for _, c := range r.s.d.credits {
		if !inRange(rng, c.Date) {
			continue
		}
		cp := c
		result = append(result, &cp)
	}
	sortByCreated(result,
		func(c *domain.CreditUsage) time.Time { return c.CreatedAt },
		func(c *domain.CreditUsage) string { return c.ID },
	)
	return result, nil
}

func (r *BookingRepository) CreateCreditUsage(_ context.Context, c *domain.CreditUsage) (*domain.CreditUsage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.d.credits {
		if existing.StudentID == c.StudentID && existing.Occurrence().Equal(c.Occurrence()) {
			return nil, booking.ErrCreditAlreadyUsed
		}
	}
	c.CreatedAt = r.s.stamp()
	r.s.d.credits[c.ID] = *c
	return c, nil
}

// SessionRepository журналы посещаемости
type SessionRepository struct{ s *Store }

func (r *SessionRepository) Get(_ context.Context, fixedSlotID string, date time.Time) (*domain.SessionRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	occ := domain.NewOccurrence(fixedSlotID, date)
	for _, rec := range r.s.d.sessions {
		if rec.Occurrence().Equal(occ) {
			cp := rec
			cp.Entries = slices.Clone(rec.Entries)
			return &cp, nil
		}
	}
	return nil, session.ErrSessionNotFound
}

func (r *SessionRepository) ListInRange(_ context.Context, rng *domain.DateRange) ([]*domain.SessionRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*domain.SessionRecord
	for _, rec := range r.s.d.sessions {
		if !inRange(rng, rec.Date) {
			continue
		}
		cp := rec
		cp.Entries = slices.Clone(rec.Entries)
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].FixedSlotID < result[j].FixedSlotID
	})
	return result, nil
}

func (r *SessionRepository) Create(_ context.Context, rec *domain.SessionRecord) (*domain.SessionRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.d.sessions {
		if existing.Occurrence().Equal(rec.Occurrence()) {
			return nil, session.ErrSessionExists
		}
	}
	rec.CreatedAt = r.s.stamp()
	rec.UpdatedAt = rec.CreatedAt
	cp := *rec
	cp.Entries = slices.Clone(rec.Entries)
	r.s.d.sessions[rec.ID] = cp
	return rec, nil
}

func (r *SessionRepository) UpdateEntries(_ context.Context, rec *domain.SessionRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.d.sessions[rec.ID]
	if !ok {
		return session.ErrSessionNotFound
	}
	stored.Entries = slices.Clone(rec.Entries)
	stored.PresentCount = rec.PresentCount
	stored.AbsentCount = rec.AbsentCount
	stored.UpdatedAt = rec.UpdatedAt
	r.s.d.sessions[rec.ID] = stored
	return nil
}
