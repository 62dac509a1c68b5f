package cancel_reschedule

import (
	"context"

	cancelReschedule "github.com/m04kA/SMC-StudioSchedule/internal/usecase/cancel_reschedule"
)

type CancelRescheduleUseCase interface {
	Execute(ctx context.Context, req *cancelReschedule.Request) (*cancelReschedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
