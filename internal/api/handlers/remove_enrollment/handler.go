package remove_enrollment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/api/middleware"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/enrollments"
)

const (
	msgForbidden = "удалять записи может только персонал студии"
	msgNotFound  = "запись не найдена"
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

// Handle DELETE /api/v1/enrollments/{enrollmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	enrollmentID := mux.Vars(r)["enrollmentId"]
	role, _ := middleware.GetRole(r.Context())

	if err := h.service.Remove(r.Context(), enrollmentID, role); err != nil {
		switch {
		case errors.Is(err, enrollments.ErrAccessDenied):
			h.logger.Warn("DELETE /enrollments/{id} - Access denied: role=%s", role)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, enrollments.ErrEnrollmentNotFound):
			h.logger.Warn("DELETE /enrollments/{id} - Not found: enrollment_id=%s", enrollmentID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("DELETE /enrollments/{id} - Failed: enrollment_id=%s, error=%v", enrollmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /enrollments/{id} - Enrollment removed: enrollment_id=%s", enrollmentID)
	w.WriteHeader(http.StatusNoContent)
}
