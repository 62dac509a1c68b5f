package get_occupancy

import (
	"context"

	resolveOccupancy "github.com/m04kA/SMC-StudioSchedule/internal/usecase/resolve_occupancy"
)

type ResolveOccupancyUseCase interface {
	Execute(ctx context.Context, req *resolveOccupancy.Request) (*resolveOccupancy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
