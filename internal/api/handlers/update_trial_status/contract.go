package update_trial_status

import (
	"context"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/trials"
)

type TrialService interface {
	SetStatus(ctx context.Context, req *trials.SetStatusRequest) (*domain.TrialBooking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
