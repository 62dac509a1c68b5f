package get_week_grid

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	buildWeekGrid "github.com/m04kA/SMC-StudioSchedule/internal/usecase/build_week_grid"
)

const (
	msgInvalidWeek = "некорректный формат недели, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase BuildWeekGridUseCase
	logger  Logger
}

func NewHandler(useCase BuildWeekGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/class-types/{classTypeId}/grid
// Query params: week (optional, любая дата недели YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classTypeID := mux.Vars(r)["classTypeId"]

	var week time.Time
	if raw := r.URL.Query().Get("week"); raw != "" {
		parsed, err := handlers.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /class-types/{id}/grid - Invalid week: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeek)
			return
		}
		week = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &buildWeekGrid.Request{ClassTypeID: classTypeID, Week: week})
	if err != nil {
		if errors.Is(err, buildWeekGrid.ErrInternal) {
			h.logger.Error("GET /class-types/{id}/grid - Failed to build grid: class_type_id=%s, error=%v", classTypeID, err)
		}
		handlers.RespondDomainError(w, err, "")
		return
	}

	h.logger.Info("GET /class-types/{id}/grid - class_type_id=%s, week=%s, rows=%d",
		classTypeID, handlers.FormatDate(result.WeekStart), len(result.Rows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
