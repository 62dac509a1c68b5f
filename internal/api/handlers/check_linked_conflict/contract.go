package check_linked_conflict

import (
	"context"

	checkLinkedConflict "github.com/m04kA/SMC-StudioSchedule/internal/usecase/check_linked_conflict"
)

type CheckLinkedConflictUseCase interface {
	Execute(ctx context.Context, req *checkLinkedConflict.Request) (*checkLinkedConflict.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
