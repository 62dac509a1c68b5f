package create_fixed_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/api/middleware"
	createFixedSlot "github.com/m04kA/SMC-StudioSchedule/internal/usecase/create_fixed_slot"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidTime         = "некорректный формат времени, ожидается HH:MM"
	msgInvalidRange        = "некорректный интервал занятия"
	msgOutsideAvailability = "слот выходит за окно доступности модальности"
	msgClassTypeNotFound   = "модальность не найдена"
	msgConflictOccupied    = "время занято связанной модальностью"
	msgForbidden           = "создавать слоты может только персонал студии"
)

type Handler struct {
	useCase CreateFixedSlotUseCase
	logger  Logger
}

func NewHandler(useCase CreateFixedSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/class-types/{classTypeId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classTypeID := mux.Vars(r)["classTypeId"]
	role, _ := middleware.GetRole(r.Context())

	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /class-types/{id}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(classTypeID, role)
	if err != nil {
		h.logger.Warn("POST /class-types/{id}/slots - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, createFixedSlot.ErrInternal):
			h.logger.Error("POST /class-types/{id}/slots - Failed: class_type_id=%s, error=%v", classTypeID, err)
			handlers.RespondInternalError(w)
			return
		case errors.Is(err, createFixedSlot.ErrInvalidTime):
			msg = msgInvalidRange
		case errors.Is(err, createFixedSlot.ErrOutsideAvailability):
			msg = msgOutsideAvailability
		case errors.Is(err, createFixedSlot.ErrClassTypeNotFound):
			msg = msgClassTypeNotFound
		case errors.Is(err, createFixedSlot.ErrConflictOccupied):
			msg = msgConflictOccupied
		case errors.Is(err, createFixedSlot.ErrAccessDenied):
			msg = msgForbidden
		}
		h.logger.Warn("POST /class-types/{id}/slots - Rejected: class_type_id=%s, error=%v", classTypeID, err)
		handlers.RespondDomainError(w, err, msg)
		return
	}

	h.logger.Info("POST /class-types/{id}/slots - Slot created: id=%s, class_type_id=%s, turma=%d",
		result.Slot.ID, classTypeID, result.Turma)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
