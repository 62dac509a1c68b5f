package get_makeups

import (
	"context"

	getMakeupStatus "github.com/m04kA/SMC-StudioSchedule/internal/usecase/get_makeup_status"
)

type GetMakeupStatusUseCase interface {
	Execute(ctx context.Context, req *getMakeupStatus.Request) (*getMakeupStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
