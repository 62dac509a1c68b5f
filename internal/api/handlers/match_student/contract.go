package match_student

import (
	"context"

	"github.com/m04kA/SMC-StudioSchedule/internal/service/students"
)

type StudentService interface {
	Match(ctx context.Context, req *students.MatchRequest) (*students.MatchResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
