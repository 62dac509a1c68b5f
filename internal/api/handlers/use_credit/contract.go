package use_credit

import (
	"context"

	useCredit "github.com/m04kA/SMC-StudioSchedule/internal/usecase/use_credit"
)

type UseCreditUseCase interface {
	Execute(ctx context.Context, req *useCredit.Request) (*useCredit.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
