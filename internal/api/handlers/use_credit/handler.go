package use_credit

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/api/middleware"
	useCredit "github.com/m04kA/SMC-StudioSchedule/internal/usecase/use_credit"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSlotNotFound       = "слот не найден"
	msgStudentNotFound    = "ученик не найден"
	msgNotAnOccurrence    = "в эту дату слот не проводится"
	msgDateInPast         = "дата занятия уже прошла"
	msgNonOperating       = "студия не работает в эту дату"
	msgSlotBlocked        = "слот заблокирован"
	msgNotEligible        = "ученик не может занимать место"
	msgAlreadyAttending   = "ученик уже записан на это занятие"
	msgSlotFull           = "на занятии нет мест"
)

type Handler struct {
	useCase UseCreditUseCase
	logger  Logger
}

func NewHandler(useCase UseCreditUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/credit-usages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetRole(r.Context())

	var req UseCreditRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /credit-usages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(role)
	if err != nil {
		h.logger.Warn("POST /credit-usages - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, useCredit.ErrInternal):
			h.logger.Error("POST /credit-usages - Failed: student_id=%s, error=%v", req.StudentID, err)
			handlers.RespondInternalError(w)
			return
		case errors.Is(err, useCredit.ErrSlotNotFound):
			msg = msgSlotNotFound
		case errors.Is(err, useCredit.ErrStudentNotFound):
			msg = msgStudentNotFound
		case errors.Is(err, useCredit.ErrNotAnOccurrence):
			msg = msgNotAnOccurrence
		case errors.Is(err, useCredit.ErrDateInPast):
			msg = msgDateInPast
		case errors.Is(err, useCredit.ErrNonOperating):
			msg = msgNonOperating
		case errors.Is(err, useCredit.ErrSlotBlocked):
			msg = msgSlotBlocked
		case errors.Is(err, useCredit.ErrStudentNotEligible):
			msg = msgNotEligible
		case errors.Is(err, useCredit.ErrAlreadyAttending):
			msg = msgAlreadyAttending
		case errors.Is(err, useCredit.ErrSlotFull):
			msg = msgSlotFull
		}
		h.logger.Warn("POST /credit-usages - Rejected: student_id=%s, slot_id=%s, error=%v", req.StudentID, req.FixedSlotID, err)
		handlers.RespondDomainError(w, err, msg)
		return
	}

	h.logger.Info("POST /credit-usages - Credit used: id=%s, student_id=%s, slot_id=%s",
		result.Credit.ID, req.StudentID, req.FixedSlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
