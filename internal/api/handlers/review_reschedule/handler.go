package review_reschedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/api/middleware"
	reviewReschedule "github.com/m04kA/SMC-StudioSchedule/internal/usecase/review_reschedule"
)

const (
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "рассматривать заявки может только персонал студии"
	msgNotFound          = "заявка не найдена"
	msgInvalidTransition = "заявка уже рассмотрена"
	msgDestinationPassed = "занятие назначения уже прошло"
	msgNotEligible       = "ученик не может занимать место"
	msgAlreadyAttending  = "ученик уже записан на занятие назначения"
	msgDestinationFull   = "на занятии назначения нет мест"
)

// Handler один обработчик на действие: approve или reject
type Handler struct {
	useCase ReviewRescheduleUseCase
	action  reviewReschedule.Action
	logger  Logger
}

func NewHandler(useCase ReviewRescheduleUseCase, action reviewReschedule.Action, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		action:  action,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reschedules/{id}/approve и PATCH /api/v1/reschedules/{id}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["id"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reschedules/{id}/%s - Missing user ID", h.action)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetRole(r.Context())

	result, err := h.useCase.Execute(r.Context(), &reviewReschedule.Request{
		RequestID:  requestID,
		Action:     h.action,
		ReviewerID: userID,
		Role:       role,
	})
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, reviewReschedule.ErrInternal):
			h.logger.Error("PATCH /reschedules/{id}/%s - Failed: request_id=%s, error=%v", h.action, requestID, err)
			handlers.RespondInternalError(w)
			return
		case errors.Is(err, reviewReschedule.ErrAccessDenied):
			msg = msgForbidden
		case errors.Is(err, reviewReschedule.ErrRequestNotFound):
			msg = msgNotFound
		case errors.Is(err, reviewReschedule.ErrInvalidTransition):
			msg = msgInvalidTransition
		case errors.Is(err, reviewReschedule.ErrDestinationPassed):
			msg = msgDestinationPassed
		case errors.Is(err, reviewReschedule.ErrStudentNotEligible):
			msg = msgNotEligible
		case errors.Is(err, reviewReschedule.ErrAlreadyAttending):
			msg = msgAlreadyAttending
		case errors.Is(err, reviewReschedule.ErrDestinationFull):
			msg = msgDestinationFull
		}
		h.logger.Warn("PATCH /reschedules/{id}/%s - Rejected: request_id=%s, error=%v", h.action, requestID, err)
		handlers.RespondDomainError(w, err, msg)
		return
	}

	h.logger.Info("PATCH /reschedules/{id}/%s - request_id=%s, status=%s, reviewer=%s",
		h.action, requestID, result.Request.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
