package get_week_grid

import (
	"context"

	buildWeekGrid "github.com/m04kA/SMC-StudioSchedule/internal/usecase/build_week_grid"
)

type BuildWeekGridUseCase interface {
	Execute(ctx context.Context, req *buildWeekGrid.Request) (*buildWeekGrid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
