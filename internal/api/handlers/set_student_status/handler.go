package set_student_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/api/middleware"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/students"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "статус должен быть active, frozen или inactive"
	msgNothingToUpdate    = "нужно указать status или waitlisted"
	msgForbidden          = "менять статус ученика может только персонал студии"
	msgNotFound           = "ученик не найден"
)

type Handler struct {
	service StudentService
	logger  Logger
}

func NewHandler(service StudentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/students/{studentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)["studentId"]
	role, _ := middleware.GetRole(r.Context())

	var req SetStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /students/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	student, err := h.service.SetStatus(r.Context(), &students.SetStatusRequest{
		StudentID:  studentID,
		Status:     req.Status,
		Waitlisted: req.Waitlisted,
		Role:       role,
	})
	if err != nil {
		switch {
		case errors.Is(err, students.ErrInvalidStatus):
			h.logger.Warn("PATCH /students/{id}/status - Invalid status: %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, students.ErrInvalidInput):
			h.logger.Warn("PATCH /students/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgNothingToUpdate)
		case errors.Is(err, students.ErrAccessDenied):
			h.logger.Warn("PATCH /students/{id}/status - Access denied: role=%s", role)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, students.ErrStudentNotFound):
			h.logger.Warn("PATCH /students/{id}/status - Not found: student_id=%s", studentID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("PATCH /students/{id}/status - Failed: student_id=%s, error=%v", studentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /students/{id}/status - student_id=%s, status=%s, waitlisted=%t",
		studentID, student.Status(), student.Waitlisted)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromStudent(student))
}
