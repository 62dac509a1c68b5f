package create_reschedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/api/middleware"
	createReschedule "github.com/m04kA/SMC-StudioSchedule/internal/usecase/create_reschedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSameOccurrence     = "занятие назначения совпадает с исходным"
	msgSlotNotFound       = "слот не найден"
	msgStudentNotFound    = "ученик не найден"
	msgEnrollmentNotFound = "постоянная запись не найдена"
	msgNotAnOccurrence    = "в эту дату слот не проводится"
	msgDateInPast         = "дата занятия уже прошла"
	msgNonOperating       = "студия не работает в эту дату"
	msgSlotBlocked        = "слот заблокирован"
	msgNotEligible        = "ученик не может занимать место"
	msgNotAttending       = "ученик не записан на исходное занятие"
	msgNoAbsence          = "пропуск на исходном занятии не отмечен"
	msgAlreadyAttending   = "ученик уже записан на занятие назначения"
	msgDuplicateRequest   = "заявка с этого занятия уже существует"
	msgMakeupExpired      = "срок отработки пропуска истек"
	msgDestinationFull    = "на занятии назначения нет мест"
)

type Handler struct {
	useCase CreateRescheduleUseCase
	logger  Logger
}

func NewHandler(useCase CreateRescheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reschedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reschedules - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetRole(r.Context())

	var req CreateRescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reschedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, role)
	if err != nil {
		h.logger.Warn("POST /reschedules - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, err, userID)
		return
	}

	h.logger.Info("POST /reschedules - Request created: id=%s, status=%s, user_id=%s",
		result.Request.ID, result.Request.Status, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, err error, userID string) {
	var msg string
	switch {
	case errors.Is(err, createReschedule.ErrInternal):
		h.logger.Error("POST /reschedules - Failed to create request: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	case errors.Is(err, createReschedule.ErrSameOccurrence):
		msg = msgSameOccurrence
	case errors.Is(err, createReschedule.ErrSlotNotFound):
		msg = msgSlotNotFound
	case errors.Is(err, createReschedule.ErrStudentNotFound):
		msg = msgStudentNotFound
	case errors.Is(err, createReschedule.ErrEnrollmentNotFound):
		msg = msgEnrollmentNotFound
	case errors.Is(err, createReschedule.ErrNotAnOccurrence):
		msg = msgNotAnOccurrence
	case errors.Is(err, createReschedule.ErrDateInPast):
		msg = msgDateInPast
	case errors.Is(err, createReschedule.ErrNonOperating):
		msg = msgNonOperating
	case errors.Is(err, createReschedule.ErrSlotBlocked):
		msg = msgSlotBlocked
	case errors.Is(err, createReschedule.ErrStudentNotEligible):
		msg = msgNotEligible
	case errors.Is(err, createReschedule.ErrNotAttending):
		msg = msgNotAttending
	case errors.Is(err, createReschedule.ErrNoAbsence):
		msg = msgNoAbsence
	case errors.Is(err, createReschedule.ErrAlreadyAttending):
		msg = msgAlreadyAttending
	case errors.Is(err, createReschedule.ErrDuplicateRequest):
		msg = msgDuplicateRequest
	case errors.Is(err, createReschedule.ErrMakeupExpired):
		msg = msgMakeupExpired
	case errors.Is(err, createReschedule.ErrDestinationFull):
		msg = msgDestinationFull
	}
	h.logger.Warn("POST /reschedules - Rejected: user_id=%s, error=%v", userID, err)
	handlers.RespondDomainError(w, err, msg)
}
