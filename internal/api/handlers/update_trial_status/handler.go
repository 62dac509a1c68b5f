package update_trial_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/api/middleware"
	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/trials"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус пробного занятия"
	msgForbidden          = "менять статус пробного занятия может только персонал студии"
	msgNotFound           = "пробное занятие не найдено"
	msgInvalidTransition  = "недопустимая смена статуса"
)

type Handler struct {
	service TrialService
	logger  Logger
}

func NewHandler(service TrialService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/trial-bookings/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trialID := mux.Vars(r)["id"]
	role, _ := middleware.GetRole(r.Context())

	var req UpdateTrialStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /trial-bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	trial, err := h.service.SetStatus(r.Context(), &trials.SetStatusRequest{
		TrialID:  trialID,
		Status:   domain.TrialStatus(req.Status),
		Attended: req.Attended,
		Role:     role,
	})
	if err != nil {
		switch {
		case errors.Is(err, trials.ErrInvalidInput):
			h.logger.Warn("PATCH /trial-bookings/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, trials.ErrAccessDenied):
			h.logger.Warn("PATCH /trial-bookings/{id}/status - Access denied: role=%s", role)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, trials.ErrTrialNotFound):
			h.logger.Warn("PATCH /trial-bookings/{id}/status - Not found: trial_id=%s", trialID)
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, trials.ErrInvalidTransition):
			h.logger.Warn("PATCH /trial-bookings/{id}/status - Invalid transition: trial_id=%s, status=%s", trialID, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)
		default:
			h.logger.Error("PATCH /trial-bookings/{id}/status - Failed: trial_id=%s, error=%v", trialID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /trial-bookings/{id}/status - trial_id=%s, status=%s", trialID, trial.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromTrial(trial))
}
