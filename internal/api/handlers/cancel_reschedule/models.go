package cancel_reschedule

import (
	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	cancelReschedule "github.com/m04kA/SMC-StudioSchedule/internal/usecase/cancel_reschedule"
)

// CancelResponse HTTP response model
// Deleted true, если заявка в ожидании была удалена
type CancelResponse struct {
	Request *handlers.RescheduleDTO `json:"request"`
	Deleted bool                    `json:"deleted"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelReschedule.Response) *CancelResponse {
	return &CancelResponse{
		Request: handlers.FromReschedule(resp.Request),
		Deleted: resp.Deleted,
	}
}
