package commit_import

import (
	"context"

	importStudents "github.com/m04kA/SMC-StudioSchedule/internal/usecase/import_students"
)

type CommitUseCase interface {
	Commit(ctx context.Context, req *importStudents.CommitRequest) (*importStudents.CommitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
