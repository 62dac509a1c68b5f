package review_reschedule

import (
	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	reviewReschedule "github.com/m04kA/SMC-StudioSchedule/internal/usecase/review_reschedule"
)

// ReviewResponse HTTP response model
type ReviewResponse struct {
	Request     *handlers.RescheduleDTO `json:"request"`
	Destination handlers.OccupancyDTO   `json:"destination"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reviewReschedule.Response) *ReviewResponse {
	return &ReviewResponse{
		Request:     handlers.FromReschedule(resp.Request),
		Destination: handlers.FromOccupancy(resp.Destination),
	}
}
