package get_makeups

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	getMakeupStatus "github.com/m04kA/SMC-StudioSchedule/internal/usecase/get_makeup_status"
)

const (
	msgInvalidFrom    = "некорректный параметр from, ожидается YYYY-MM-DD"
	msgInvalidTo      = "некорректный параметр to, ожидается YYYY-MM-DD"
	msgInvalidSuggest = "некорректный параметр suggest"
	msgInvalidRange   = "некорректный период"
)

type Handler struct {
	useCase GetMakeupStatusUseCase
	logger  Logger
}

func NewHandler(useCase GetMakeupStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/students/{studentId}/makeups и GET /api/v1/slots/{slotId}/makeups
// Query params: from, to (optional, YYYY-MM-DD), suggest (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	from, err := handlers.ParseOptionalDate(query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /makeups - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}
	to, err := handlers.ParseOptionalDate(query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /makeups - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}
	suggest, err := handlers.ParseBool(query.Get("suggest"))
	if err != nil {
		h.logger.Warn("GET /makeups - Invalid suggest: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSuggest)
		return
	}

	req := &getMakeupStatus.Request{
		StudentID:       vars["studentId"],
		FixedSlotID:     vars["slotId"],
		From:            from,
		To:              to,
		WithSuggestions: suggest,
	}
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getMakeupStatus.ErrInvalidInput):
			h.logger.Warn("GET /makeups - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
		default:
			h.logger.Error("GET /makeups - Failed: student_id=%s, slot_id=%s, error=%v", req.StudentID, req.FixedSlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /makeups - student_id=%s, slot_id=%s, items=%d", req.StudentID, req.FixedSlotID, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
