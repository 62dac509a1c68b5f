package create_fixed_slot

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

var validate = validator.New()

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !req.Role.IsPrivileged() {
		return ErrAccessDenied
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidTime, err)
	}
	if !req.EndTime.IsZero() {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: endTime: %v", ErrInvalidTime, err)
		}
	}
	return nil
}

// resolveEnd конец слота: из запроса или по длительности модальности
func resolveEnd(req *Request, ct *domain.ClassType) (types.TimeString, error) {
	if !req.EndTime.IsZero() {
		return req.EndTime, nil
	}
	end, err := req.StartTime.AddMinutes(ct.Duration())
	if err != nil {
		return "", fmt.Errorf("%w: session does not fit into the day", ErrInvalidTime)
	}
	return end, nil
}

// validateTimeRange проверяет start < end и границы длительности
func validateTimeRange(start, end types.TimeString) error {
	duration := end.Minutes() - start.Minutes()
	if !start.IsBefore(end) || duration <= 0 {
		return fmt.Errorf("%w: end %s must be after start %s", ErrInvalidTime, end, start)
	}
	if duration < domain.MinDurationMinutes || duration > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration %d minutes", ErrInvalidTime, duration)
	}
	return nil
}

// fitsAvailability слот должен целиком лежать в одном окне доступности
// Модальность без окон ограничений не задает
func fitsAvailability(ct *domain.ClassType, day int, start, end types.TimeString) bool {
	if len(ct.Availability) == 0 {
		return true
	}
	for _, w := range ct.Availability {
		if w.DayOfWeek == day && !start.IsBefore(w.Start) && !end.IsAfter(w.End) {
			return true
		}
	}
	return false
}
