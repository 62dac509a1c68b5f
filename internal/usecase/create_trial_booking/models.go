package create_trial_booking

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
)

// Request модель запроса на пробное занятие
type Request struct {
	FixedSlotID  string    `validate:"required"`
	Date         time.Time `validate:"required"`
	ContactName  string    `validate:"required,max=200"`
	ContactPhone string    `validate:"required,min=8,max=32"`
	ContactEmail *string   `validate:"omitempty,email"`
}

// Response созданная запись и состав занятия после нее
type Response struct {
	Trial     *domain.TrialBooking
	Occupancy roster.Occupancy
}
