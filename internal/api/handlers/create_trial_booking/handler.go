package create_trial_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	createTrialBooking "github.com/m04kA/SMC-StudioSchedule/internal/usecase/create_trial_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSlotNotFound       = "слот не найден"
	msgNotAnOccurrence    = "в эту дату слот не проводится"
	msgDateInPast         = "дата занятия уже прошла"
	msgNonOperating       = "студия не работает в эту дату"
	msgSlotBlocked        = "слот заблокирован"
	msgDuplicateTrial     = "пробное занятие для этого контакта уже записано"
	msgSlotFull           = "на занятии нет мест"
)

type Handler struct {
	useCase CreateTrialBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateTrialBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/trial-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTrialRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trial-bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /trial-bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, createTrialBooking.ErrInternal):
			h.logger.Error("POST /trial-bookings - Failed: slot_id=%s, error=%v", req.FixedSlotID, err)
			handlers.RespondInternalError(w)
			return
		case errors.Is(err, createTrialBooking.ErrSlotNotFound):
			msg = msgSlotNotFound
		case errors.Is(err, createTrialBooking.ErrNotAnOccurrence):
			msg = msgNotAnOccurrence
		case errors.Is(err, createTrialBooking.ErrDateInPast):
			msg = msgDateInPast
		case errors.Is(err, createTrialBooking.ErrNonOperating):
			msg = msgNonOperating
		case errors.Is(err, createTrialBooking.ErrSlotBlocked):
			msg = msgSlotBlocked
		case errors.Is(err, createTrialBooking.ErrDuplicateTrial):
			msg = msgDuplicateTrial
		case errors.Is(err, createTrialBooking.ErrSlotFull):
			msg = msgSlotFull
		}
		h.logger.Warn("POST /trial-bookings - Rejected: slot_id=%s, date=%s, error=%v", req.FixedSlotID, req.Date, err)
		handlers.RespondDomainError(w, err, msg)
		return
	}

	h.logger.Info("POST /trial-bookings - Trial created: id=%s, slot_id=%s, date=%s",
		result.Trial.ID, req.FixedSlotID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
