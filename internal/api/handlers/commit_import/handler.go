package commit_import

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/api/middleware"
	importStudents "github.com/m04kA/SMC-StudioSchedule/internal/usecase/import_students"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRows        = "некорректные строки импорта: нужны имя и решение confirm, choose, skip или create"
	msgForbidden          = "импортировать учеников может только персонал студии"
)

type Handler struct {
	useCase CommitUseCase
	logger  Logger
}

func NewHandler(useCase CommitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/imports/students/commit
// Ошибки отдельных строк возвращаются в results, код ответа 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetRole(r.Context())

	var req CommitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /imports/students/commit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Commit(r.Context(), req.ToUseCaseRequest(role))
	if err != nil {
		switch {
		case errors.Is(err, importStudents.ErrInvalidInput):
			h.logger.Warn("POST /imports/students/commit - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRows)
		case errors.Is(err, importStudents.ErrAccessDenied):
			h.logger.Warn("POST /imports/students/commit - Access denied: role=%s", role)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("POST /imports/students/commit - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /imports/students/commit - created=%d, matched=%d, skipped=%d, failed=%d",
		result.Created, result.Matched, result.Skipped, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
