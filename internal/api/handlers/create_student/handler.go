package create_student

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/api/middleware"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/students"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "имя обязательно, не длиннее 200 символов"
	msgForbidden          = "заводить учеников может только персонал студии"
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

// Handle POST /api/v1/students
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetRole(r.Context())

	var req CreateStudentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /students - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	student, err := h.service.Create(r.Context(), &students.CreateRequest{
		Name:           req.Name,
		PartnershipTag: req.PartnershipTag,
		Note:           req.Note,
		Waitlisted:     req.Waitlisted,
		Role:           role,
	})
	if err != nil {
		switch {
		case errors.Is(err, students.ErrInvalidInput):
			h.logger.Warn("POST /students - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, students.ErrAccessDenied):
			h.logger.Warn("POST /students - Access denied: role=%s", role)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("POST /students - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /students - Student created: id=%s", student.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromStudent(student))
}
