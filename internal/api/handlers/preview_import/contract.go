package preview_import

import (
	"context"

	importStudents "github.com/m04kA/SMC-StudioSchedule/internal/usecase/import_students"
)

type PreviewUseCase interface {
	Preview(ctx context.Context, req *importStudents.PreviewRequest) (*importStudents.PreviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
