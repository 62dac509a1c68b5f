package snapshot

import (
	"context"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

// ClassTypeRepository интерфейс репозитория модальностей
type ClassTypeRepository interface {
	List(ctx context.Context) ([]*domain.ClassType, error)
	ListSlotBlocks(ctx context.Context, classTypeID *string) ([]*domain.SlotBlock, error)
}

// FixedSlotRepository интерфейс репозитория слотов
type FixedSlotRepository interface {
	List(ctx context.Context, classTypeID *string) ([]*domain.FixedSlot, error)
}

// StudentRepository интерфейс репозитория учеников
type StudentRepository interface {
	List(ctx context.Context) ([]*domain.Student, error)
	ListEnrollments(ctx context.Context, fixedSlotID *string) ([]*domain.Enrollment, error)
}

// RescheduleRepository интерфейс репозитория заявок
type RescheduleRepository interface {
	List(ctx context.Context, rng *domain.DateRange) ([]*domain.RescheduleRequest, error)
}

// BookingRepository интерфейс репозитория пробных занятий и кредитов
type BookingRepository interface {
	ListTrialBookings(ctx context.Context, rng *domain.DateRange) ([]*domain.TrialBooking, error)
	ListCreditUsages(ctx context.Context, rng *domain.DateRange) ([]*domain.CreditUsage, error)
}

// SessionRepository интерфейс репозитория журналов
type SessionRepository interface {
	ListInRange(ctx context.Context, rng *domain.DateRange) ([]*domain.SessionRecord, error)
}

// HolidayProvider источник праздников
type HolidayProvider interface {
	GetHolidays(ctx context.Context, rng domain.DateRange) ([]domain.Holiday, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
