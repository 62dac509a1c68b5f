package finalize_session

import (
	"context"

	"github.com/m04kA/SMC-StudioSchedule/internal/service/sessions"
)

type SessionService interface {
	Finalize(ctx context.Context, req *sessions.FinalizeRequest) (*sessions.FinalizeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
