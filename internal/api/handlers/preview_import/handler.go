package preview_import

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/api/middleware"
	importStudents "github.com/m04kA/SMC-StudioSchedule/internal/usecase/import_students"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRows        = "нужно от 1 до 1000 строк с непустыми именами"
	msgForbidden          = "импортировать учеников может только персонал студии"
)

type Handler struct {
	useCase PreviewUseCase
	logger  Logger
}

func NewHandler(useCase PreviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/imports/students/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetRole(r.Context())

	var req PreviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /imports/students/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Preview(r.Context(), req.ToUseCaseRequest(role))
	if err != nil {
		switch {
		case errors.Is(err, importStudents.ErrInvalidInput):
			h.logger.Warn("POST /imports/students/preview - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRows)
		case errors.Is(err, importStudents.ErrAccessDenied):
			h.logger.Warn("POST /imports/students/preview - Access denied: role=%s", role)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("POST /imports/students/preview - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /imports/students/preview - rows=%d, need_decisions=%d", len(result.Items), result.NeedDecisions)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
