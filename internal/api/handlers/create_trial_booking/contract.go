package create_trial_booking

import (
	"context"

	createTrialBooking "github.com/m04kA/SMC-StudioSchedule/internal/usecase/create_trial_booking"
)

type CreateTrialBookingUseCase interface {
	Execute(ctx context.Context, req *createTrialBooking.Request) (*createTrialBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
