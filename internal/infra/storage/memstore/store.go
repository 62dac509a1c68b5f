// Package memstore хранилище в памяти с тем же контрактом, что и репозитории PostgreSQL.
// Используется в тестах и при запуске без базы данных.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

type data struct {
	classTypes  map[string]domain.ClassType
	slots       map[string]domain.FixedSlot
	students    map[string]domain.Student
	enrollments map[string]domain.Enrollment
	reschedules map[string]domain.RescheduleRequest
	trials      map[string]domain.TrialBooking
	credits     map[string]domain.CreditUsage
	sessions    map[string]domain.SessionRecord
	blocks      map[string]domain.SlotBlock
	seq         int64
}

func newData() *data {
	return &data{
		classTypes:  make(map[string]domain.ClassType),
		slots:       make(map[string]domain.FixedSlot),
		students:    make(map[string]domain.Student),
		enrollments: make(map[string]domain.Enrollment),
		reschedules: make(map[string]domain.RescheduleRequest),
		trials:      make(map[string]domain.TrialBooking),
		credits:     make(map[string]domain.CreditUsage),
		sessions:    make(map[string]domain.SessionRecord),
		blocks:      make(map[string]domain.SlotBlock),
	}
}

func (d *data) clone() *data {
	return &data{
		classTypes:  maps.Clone(d.classTypes),
		slots:       maps.Clone(d.slots),
		students:    maps.Clone(d.students),
		enrollments: maps.Clone(d.enrollments),
		reschedules: maps.Clone(d.reschedules),
		trials:      maps.Clone(d.trials),
		credits:     maps.Clone(d.credits),
		sessions:    maps.Clone(d.sessions),
		blocks:      maps.Clone(d.blocks),
		seq:         d.seq,
	}
}

// Store общее состояние всех репозиториев в памяти
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	d    *data
	now  func() time.Time
}

// New создает пустое хранилище
func New() *Store {
	return &Store{
		d:   newData(),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// WithClock подменяет источник времени для created_at/updated_at
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Seed загружает записи как есть, перезаписывая совпадающие id
func (s *Store) Seed(in domain.SnapshotData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ct := range in.ClassTypes {
		s.d.classTypes[ct.ID] = cloneClassType(*ct)
	}
	for _, slot := range in.FixedSlots {
		s.d.slots[slot.ID] = *slot
	}
	for _, st := range in.Students {
		s.d.students[st.ID] = *st
	}
	for _, e := range in.Enrollments {
		s.d.enrollments[e.ID] = *e
	}
	for _, r := range in.Reschedules {
		s.d.reschedules[r.ID] = *r
	}
	for _, t := range in.Trials {
		s.d.trials[t.ID] = *t
	}
	for _, c := range in.Credits {
		s.d.credits[c.ID] = *c
	}
	for _, rec := range in.Sessions {
		cp := *rec
		cp.Entries = slices.Clone(rec.Entries)
		s.d.sessions[rec.ID] = cp
	}
	for _, b := range in.Blocks {
		s.d.blocks[b.ID] = *b
	}
}

// stamp возвращает строго возрастающее время для упорядочивания записей
func (s *Store) stamp() time.Time {
	s.d.seq++
	return s.now().Add(time.Duration(s.d.seq) * time.Microsecond)
}

// ClassTypes репозиторий модальностей
func (s *Store) ClassTypes() *ClassTypeRepository { return &ClassTypeRepository{s: s} }

// FixedSlots репозиторий слотов расписания
func (s *Store) FixedSlots() *FixedSlotRepository { return &FixedSlotRepository{s: s} }

// Students репозиторий учеников и записей на слоты
func (s *Store) Students() *StudentRepository { return &StudentRepository{s: s} }

// Reschedules репозиторий заявок на перенос
func (s *Store) Reschedules() *RescheduleRepository { return &RescheduleRepository{s: s} }

// Bookings репозиторий пробных занятий и кредитов
func (s *Store) Bookings() *BookingRepository { return &BookingRepository{s: s} }

// Sessions репозиторий журналов посещаемости
func (s *Store) Sessions() *SessionRepository { return &SessionRepository{s: s} }

// TxManager менеджер транзакций поверх хранилища
func (s *Store) TxManager() *TxManager { return &TxManager{s: s} }

// Locker блокировки занятий (транзакции и так выполняются последовательно)
func (s *Store) Locker() *Locker { return &Locker{} }

type txKey struct{}

// TxManager выполняет транзакции строго последовательно.
// При ошибке состояние откатывается к моменту начала транзакции.
// Изменения вне транзакции при откате теряются, поэтому все записи выполняются внутри Do.
type TxManager struct {
	s *Store
}

// Do выполняет fn в транзакции
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoSerializable выполняет fn в транзакции
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoReadOnly выполняет fn в транзакции
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()

	m.s.mu.RLock()
	backup := m.s.d.clone()
	m.s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		m.s.mu.Lock()
		m.s.d = backup
		m.s.mu.Unlock()
		return err
	}
	return nil
}

// Locker заглушка advisory-блокировок
type Locker struct{}

// LockOccurrence ничего не делает
func (l *Locker) LockOccurrence(_ context.Context, _ domain.Occurrence) error {
	return nil
}

func cloneClassType(ct domain.ClassType) domain.ClassType {
	ct.Availability = slices.Clone(ct.Availability)
	ct.LinkedClassTypeIDs = slices.Clone(ct.LinkedClassTypeIDs)
	return ct
}

func sortByCreated[T any](items []T, created func(T) time.Time, id func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := created(items[i]), created(items[j])
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}
		return id(items[i]) < id(items[j])
	})
}

func inRange(rng *domain.DateRange, dates ...time.Time) bool {
	if rng == nil {
		return true
	}
	for _, d := range dates {
		if rng.Contains(d) {
			return true
		}
	}
	return false
}
