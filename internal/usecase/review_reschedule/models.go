package review_reschedule

import (
	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
)

// Action решение по заявке
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// Request модель запроса на рассмотрение заявки
type Request struct {
	RequestID  string      `validate:"required"`
	Action     Action      `validate:"required,oneof=approve reject"`
	ReviewerID string      `validate:"required"`
	Role       domain.Role `validate:"required"`
}

// Response заявка после рассмотрения и состав занятия назначения
type Response struct {
	Request     *domain.RescheduleRequest
	Destination roster.Occupancy
}

func (a Action) target() domain.RescheduleStatus {
	if a == ActionApprove {
		return domain.RescheduleApproved
	}
	return domain.RescheduleRejected
}
