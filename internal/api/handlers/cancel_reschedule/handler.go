package cancel_reschedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/api/middleware"
	cancelReschedule "github.com/m04kA/SMC-StudioSchedule/internal/usecase/cancel_reschedule"
)

const (
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "отменить заявку может только ее автор или персонал студии"
	msgNotFound          = "заявка не найдена"
	msgInvalidTransition = "заявку в этом статусе нельзя отменить"
	msgAlreadySettled    = "занятие назначения уже проведено"
	msgDatePassed        = "занятие уже прошло"
	msgOriginFull        = "в исходном занятии нет свободного места"
)

type Handler struct {
	useCase CancelRescheduleUseCase
	logger  Logger
}

func NewHandler(useCase CancelRescheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reschedules/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["id"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reschedules/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetRole(r.Context())

	result, err := h.useCase.Execute(r.Context(), &cancelReschedule.Request{
		RequestID: requestID,
		ActorID:   userID,
		Role:      role,
	})
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, cancelReschedule.ErrInternal):
			h.logger.Error("PATCH /reschedules/{id}/cancel - Failed: request_id=%s, error=%v", requestID, err)
			handlers.RespondInternalError(w)
			return
		case errors.Is(err, cancelReschedule.ErrAccessDenied):
			msg = msgForbidden
		case errors.Is(err, cancelReschedule.ErrRequestNotFound):
			msg = msgNotFound
		case errors.Is(err, cancelReschedule.ErrInvalidTransition):
			msg = msgInvalidTransition
		case errors.Is(err, cancelReschedule.ErrAlreadySettled):
			msg = msgAlreadySettled
		case errors.Is(err, cancelReschedule.ErrDatePassed):
			msg = msgDatePassed
		case errors.Is(err, cancelReschedule.ErrOriginFull):
			msg = msgOriginFull
		}
		h.logger.Warn("PATCH /reschedules/{id}/cancel - Rejected: request_id=%s, user_id=%s, error=%v", requestID, userID, err)
		handlers.RespondDomainError(w, err, msg)
		return
	}

	h.logger.Info("PATCH /reschedules/{id}/cancel - request_id=%s, deleted=%t, user_id=%s",
		requestID, result.Deleted, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
