package create_fixed_slot

import (
	"context"

	createFixedSlot "github.com/m04kA/SMC-StudioSchedule/internal/usecase/create_fixed_slot"
)

type CreateFixedSlotUseCase interface {
	Execute(ctx context.Context, req *createFixedSlot.Request) (*createFixedSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
