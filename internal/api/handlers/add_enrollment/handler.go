package add_enrollment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/api/middleware"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/enrollments"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "ученик обязателен"
	msgForbidden          = "записывать учеников может только персонал студии"
	msgSlotNotFound       = "слот не найден"
	msgStudentNotFound    = "ученик не найден"
	msgAlreadyEnrolled    = "ученик уже записан на слот"
	msgSlotFull           = "в постоянном составе слота нет мест"
)

type Handler struct {
	service EnrollmentService
	logger  Logger
}

func NewHandler(service EnrollmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/enrollments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]
	role, _ := middleware.GetRole(r.Context())

	var req AddEnrollmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/{id}/enrollments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	enrollment, err := h.service.Add(r.Context(), &enrollments.AddRequest{
		FixedSlotID: slotID,
		StudentID:   req.StudentID,
		Note:        req.Note,
		Role:        role,
	})
	if err != nil {
		switch {
		case errors.Is(err, enrollments.ErrInvalidInput):
			h.logger.Warn("POST /slots/{id}/enrollments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, enrollments.ErrAccessDenied):
			h.logger.Warn("POST /slots/{id}/enrollments - Access denied: role=%s", role)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, enrollments.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/enrollments - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
		case errors.Is(err, enrollments.ErrStudentNotFound):
			h.logger.Warn("POST /slots/{id}/enrollments - Student not found: student_id=%s", req.StudentID)
			handlers.RespondNotFound(w, msgStudentNotFound)
		case errors.Is(err, enrollments.ErrAlreadyEnrolled):
			h.logger.Warn("POST /slots/{id}/enrollments - Already enrolled: slot_id=%s, student_id=%s", slotID, req.StudentID)
			handlers.RespondConflict(w, msgAlreadyEnrolled)
		case errors.Is(err, enrollments.ErrSlotFull):
			h.logger.Warn("POST /slots/{id}/enrollments - Slot full: slot_id=%s", slotID)
			handlers.RespondConflict(w, msgSlotFull)
		default:
			h.logger.Error("POST /slots/{id}/enrollments - Failed: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/enrollments - Enrollment created: id=%s, slot_id=%s, student_id=%s",
		enrollment.ID, slotID, req.StudentID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromEnrollment(enrollment))
}
