package get_makeup_status

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

var validate = validator.New()

// validateRequest валидирует входные данные запроса и возвращает период
func validateRequest(req *Request, now time.Time) (domain.DateRange, error) {
	if err := validate.Struct(req); err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	to := domain.DateOnly(now)
	if req.To != nil {
		to = domain.DateOnly(*req.To)
	}
	from := to.AddDate(0, 0, -domain.DefaultMakeupLookup)
	if req.From != nil {
		from = domain.DateOnly(*req.From)
	}
	if from.After(to) {
		return domain.DateRange{}, fmt.Errorf("%w: from is after to", ErrInvalidInput)
	}
	if to.Sub(from) > maxRangeDays*24*time.Hour {
		return domain.DateRange{}, fmt.Errorf("%w: range exceeds %d days", ErrInvalidInput, maxRangeDays)
	}
	return domain.DateRange{From: from, To: to}, nil
}
