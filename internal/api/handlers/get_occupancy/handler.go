package get_occupancy

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	resolveOccupancy "github.com/m04kA/SMC-StudioSchedule/internal/usecase/resolve_occupancy"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase ResolveOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase ResolveOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/{slotId}/occupancy
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots/{id}/occupancy - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /slots/{id}/occupancy - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &resolveOccupancy.Request{FixedSlotID: slotID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, resolveOccupancy.ErrInternal):
			h.logger.Error("GET /slots/{id}/occupancy - Failed to resolve: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		default:
			h.logger.Warn("GET /slots/{id}/occupancy - Rejected: slot_id=%s, error=%v", slotID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("GET /slots/{id}/occupancy - slot_id=%s, date=%s, %d/%d",
		slotID, dateStr, result.ActiveCount, result.Capacity)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
