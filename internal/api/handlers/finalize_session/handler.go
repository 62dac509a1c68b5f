package finalize_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/api/middleware"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные журнала"
	msgForbidden          = "закрывать занятия может только персонал студии"
	msgSlotNotFound       = "слот не найден"
	msgNotAnOccurrence    = "в эту дату слот не проводится"
	msgUnknownAttendee    = "отметка для участника не из состава занятия"
	msgDuplicateEntry     = "участник отмечен дважды"
	msgFutureSession      = "занятие еще не прошло"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
// Повторный вызов для того же занятия исправляет отметки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetRole(r.Context())

	var req FinalizeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(role)
	if err != nil {
		h.logger.Warn("POST /sessions - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Finalize(r.Context(), serviceReq)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, sessions.ErrInternal):
			h.logger.Error("POST /sessions - Failed: slot_id=%s, date=%s, error=%v", req.FixedSlotID, req.Date, err)
			handlers.RespondInternalError(w)
			return
		case errors.Is(err, sessions.ErrAccessDenied):
			msg = msgForbidden
		case errors.Is(err, sessions.ErrSlotNotFound):
			msg = msgSlotNotFound
		case errors.Is(err, sessions.ErrNotAnOccurrence):
			msg = msgNotAnOccurrence
		case errors.Is(err, sessions.ErrUnknownAttendee):
			msg = msgUnknownAttendee
		case errors.Is(err, sessions.ErrDuplicateEntry):
			msg = msgDuplicateEntry
		case errors.Is(err, sessions.ErrFutureSession):
			msg = msgFutureSession
		case errors.Is(err, sessions.ErrInvalidInput):
			msg = msgInvalidInput
		}
		h.logger.Warn("POST /sessions - Rejected: slot_id=%s, date=%s, error=%v", req.FixedSlotID, req.Date, err)
		handlers.RespondDomainError(w, err, msg)
		return
	}

	status := http.StatusCreated
	if result.Corrected {
		status = http.StatusOK
	}
	h.logger.Info("POST /sessions - slot_id=%s, date=%s, corrected=%t", req.FixedSlotID, req.Date, result.Corrected)
	handlers.RespondJSON(w, status, FromServiceResponse(result))
}
