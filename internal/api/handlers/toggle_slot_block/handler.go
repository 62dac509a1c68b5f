package toggle_slot_block

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/api/middleware"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/slotblocks"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput       = "некорректный день недели или время"
	msgForbidden          = "блокировать ячейки может только персонал студии"
	msgClassTypeNotFound  = "модальность не найдена"
)

type Handler struct {
	service SlotBlockService
	logger  Logger
}

func NewHandler(service SlotBlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/class-types/{classTypeId}/blocks/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classTypeID := mux.Vars(r)["classTypeId"]
	role, _ := middleware.GetRole(r.Context())

	var req ToggleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /class-types/{id}/blocks/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	t, err := handlers.ParseTime(req.Time)
	if err != nil {
		h.logger.Warn("POST /class-types/{id}/blocks/toggle - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.Toggle(r.Context(), &slotblocks.ToggleRequest{
		ClassTypeID: classTypeID,
		DayOfWeek:   req.DayOfWeek,
		Time:        t,
		Role:        role,
	})
	if err != nil {
		switch {
		case errors.Is(err, slotblocks.ErrInvalidInput):
			h.logger.Warn("POST /class-types/{id}/blocks/toggle - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, slotblocks.ErrAccessDenied):
			h.logger.Warn("POST /class-types/{id}/blocks/toggle - Access denied: role=%s", role)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, slotblocks.ErrClassTypeNotFound):
			h.logger.Warn("POST /class-types/{id}/blocks/toggle - Class type not found: %s", classTypeID)
			handlers.RespondNotFound(w, msgClassTypeNotFound)
		default:
			h.logger.Error("POST /class-types/{id}/blocks/toggle - Failed: class_type_id=%s, error=%v", classTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := ToggleResponse{Blocked: result.Blocked}
	if result.Block != nil {
		resp.BlockID = result.Block.ID
	}
	h.logger.Info("POST /class-types/{id}/blocks/toggle - class_type_id=%s, day=%d, time=%s, blocked=%t",
		classTypeID, req.DayOfWeek, t, result.Blocked)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
