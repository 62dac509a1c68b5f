package cancel_reschedule

import "github.com/m04kA/SMC-StudioSchedule/internal/domain"

// Request модель запроса на отмену заявки
type Request struct {
	RequestID string      `validate:"required"`
	ActorID   string      `validate:"required"`
	Role      domain.Role `validate:"required"`
}

// Response результат отмены
// Deleted true для заявки в ожидании: она удаляется, так как места не занимала
type Response struct {
	Request *domain.RescheduleRequest
	Deleted bool
}
