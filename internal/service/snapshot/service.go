package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// Repositories набор репозиториев, из которых собирается снимок
type Repositories struct {
	ClassTypes  ClassTypeRepository
	FixedSlots  FixedSlotRepository
	Students    StudentRepository
	Reschedules RescheduleRepository
	Bookings    BookingRepository
	Sessions    SessionRepository
}

// Loader загружает согласованный снимок данных студии
// Каждое чтение заново читает хранилище: кеширования снимков нет
type Loader struct {
	repos    Repositories
	holidays HolidayProvider
	policy   domain.HolidayPolicy
	logger   Logger
}

// NewLoader создает загрузчик снимков. holidays может быть nil
func NewLoader(repos Repositories, holidays HolidayProvider, policy domain.HolidayPolicy, logger Logger) *Loader {
	return &Loader{
		repos:    repos,
		holidays: holidays,
		policy:   policy,
		logger:   logger,
	}
}

// ForRange снимок с заявками, бронированиями и журналами в диапазоне дат
// Справочные данные (модальности, слоты, ученики, записи, блокировки) загружаются целиком
func (l *Loader) ForRange(ctx context.Context, rng domain.DateRange) (*domain.Snapshot, error) {
	var data domain.SnapshotData
	var err error

	if data.ClassTypes, err = l.repos.ClassTypes.List(ctx); err != nil {
		return nil, l.fail("class types", err)
	}
	if data.Blocks, err = l.repos.ClassTypes.ListSlotBlocks(ctx, nil); err != nil {
		return nil, l.fail("slot blocks", err)
	}
	if data.FixedSlots, err = l.repos.FixedSlots.List(ctx, nil); err != nil {
		return nil, l.fail("fixed slots", err)
	}
	if data.Students, err = l.repos.Students.List(ctx); err != nil {
		return nil, l.fail("students", err)
	}
	if data.Enrollments, err = l.repos.Students.ListEnrollments(ctx, nil); err != nil {
		return nil, l.fail("enrollments", err)
	}
	if data.Reschedules, err = l.repos.Reschedules.List(ctx, &rng); err != nil {
		return nil, l.fail("reschedules", err)
	}
	if data.Trials, err = l.repos.Bookings.ListTrialBookings(ctx, &rng); err != nil {
		return nil, l.fail("trial bookings", err)
	}
	if data.Credits, err = l.repos.Bookings.ListCreditUsages(ctx, &rng); err != nil {
		return nil, l.fail("credit usages", err)
	}
	if data.Sessions, err = l.repos.Sessions.ListInRange(ctx, &rng); err != nil {
		return nil, l.fail("sessions", err)
	}
	data.Holidays = l.loadHolidays(ctx, rng)

	return domain.NewSnapshot(data), nil
}

// ForOccurrences снимок, покрывающий даты всех переданных занятий
func (l *Loader) ForOccurrences(ctx context.Context, occs ...domain.Occurrence) (*domain.Snapshot, error) {
	if len(occs) == 0 {
		return l.ForRange(ctx, domain.NewDateRange(time.Now(), time.Now()))
	}
	from, to := occs[0].Date, occs[0].Date
	for _, o := range occs[1:] {
		if o.Date.Before(from) {
			from = o.Date
		}
		if o.Date.After(to) {
			to = o.Date
		}
	}
	return l.ForRange(ctx, domain.NewDateRange(from, to))
}

// ForWeek снимок недели, начинающейся в понедельник weekStart
func (l *Loader) ForWeek(ctx context.Context, weekStart time.Time) (*domain.Snapshot, error) {
	return l.ForRange(ctx, domain.WeekRange(weekStart))
}

// loadHolidays при недоступности календаря студия считается работающей
func (l *Loader) loadHolidays(ctx context.Context, rng domain.DateRange) []domain.Holiday {
	if l.holidays == nil {
		return nil
	}
	holidays, err := l.holidays.GetHolidays(ctx, rng)
	if err != nil {
		l.logger.Error("ForRange: holidays unavailable for %s..%s, treating days as operating: %v",
			rng.From.Format(domain.DateFormat), rng.To.Format(domain.DateFormat), err)
		return nil
	}
	return l.policy.Filter(holidays)
}

func (l *Loader) fail(what string, err error) error {
	l.logger.Error("ForRange: failed to load %s: %v", what, err)
	return fmt.Errorf("%w: ForRange - load %s: %v", ErrInternal, what, err)
}
