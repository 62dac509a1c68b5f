package check_linked_conflict

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	checkLinkedConflict "github.com/m04kA/SMC-StudioSchedule/internal/usecase/check_linked_conflict"
)

const (
	msgMissingMoment = "нужно указать day или date"
	msgInvalidDay    = "некорректный день недели, ожидается 0..6"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime   = "некорректный формат времени, ожидается HH:MM"
)

type Handler struct {
	useCase CheckLinkedConflictUseCase
	logger  Logger
}

func NewHandler(useCase CheckLinkedConflictUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/class-types/{classTypeId}/linked-conflict
// Query params: day (0..6) или date (YYYY-MM-DD), time (required, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classTypeID := mux.Vars(r)["classTypeId"]
	query := r.URL.Query()

	req := &checkLinkedConflict.Request{ClassTypeID: classTypeID}

	dayStr, dateStr := query.Get("day"), query.Get("date")
	if dayStr == "" && dateStr == "" {
		h.logger.Warn("GET /class-types/{id}/linked-conflict - Missing day and date")
		handlers.RespondBadRequest(w, msgMissingMoment)
		return
	}
	if dayStr != "" {
		day, err := strconv.Atoi(dayStr)
		if err != nil || day < 0 || day > 6 {
			h.logger.Warn("GET /class-types/{id}/linked-conflict - Invalid day: %q", dayStr)
			handlers.RespondBadRequest(w, msgInvalidDay)
			return
		}
		req.DayOfWeek = &day
	}
	date, err := handlers.ParseOptionalDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /class-types/{id}/linked-conflict - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	req.Date = date

	req.Time, err = handlers.ParseTime(query.Get("time"))
	if err != nil {
		h.logger.Warn("GET /class-types/{id}/linked-conflict - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, checkLinkedConflict.ErrInternal) {
			h.logger.Error("GET /class-types/{id}/linked-conflict - Failed: class_type_id=%s, error=%v", classTypeID, err)
		}
		handlers.RespondDomainError(w, err, "")
		return
	}

	h.logger.Info("GET /class-types/{id}/linked-conflict - class_type_id=%s, time=%s, occupied=%t",
		classTypeID, req.Time, result.Occupied)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
