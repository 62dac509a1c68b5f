package match_student

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/students"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "имя обязательно, не длиннее 200 символов"
)

type Handler struct {
	service StudentService
	logger  Logger
}

func NewHandler(service StudentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/students/match
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /students/match - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Match(r.Context(), &students.MatchRequest{Name: req.Name, Limit: req.Limit})
	if err != nil {
		switch {
		case errors.Is(err, students.ErrInvalidInput):
			h.logger.Warn("POST /students/match - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidName)
		default:
			h.logger.Error("POST /students/match - Failed to match: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /students/match - name=%q, alternatives=%d", req.Name, len(result.Alternatives))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
