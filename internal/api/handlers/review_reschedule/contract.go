package review_reschedule

import (
	"context"

	reviewReschedule "github.com/m04kA/SMC-StudioSchedule/internal/usecase/review_reschedule"
)

type ReviewRescheduleUseCase interface {
	Execute(ctx context.Context, req *reviewReschedule.Request) (*reviewReschedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
