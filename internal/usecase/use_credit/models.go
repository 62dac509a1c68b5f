package use_credit

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
)

// Request модель запроса на разовое посещение за кредит
type Request struct {
	StudentID   string      `validate:"required"`
	FixedSlotID string      `validate:"required"`
	Date        time.Time   `validate:"required"`
	CreditRef   string      `validate:"required,max=100"`
	Role        domain.Role `validate:"required"`
}

// Response созданное посещение и состав занятия после него
type Response struct {
	Credit    *domain.CreditUsage
	Occupancy roster.Occupancy
}
