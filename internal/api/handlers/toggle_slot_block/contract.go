package toggle_slot_block

import (
	"context"

	"github.com/m04kA/SMC-StudioSchedule/internal/service/slotblocks"
)

type SlotBlockService interface {
	Toggle(ctx context.Context, req *slotblocks.ToggleRequest) (*slotblocks.ToggleResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
