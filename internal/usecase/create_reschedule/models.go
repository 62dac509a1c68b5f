package create_reschedule

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
)

// Request модель запроса на перенос или отработку
// Ученик определяется по OriginEnrollmentID, если он указан
type Request struct {
	StudentID          string
	OriginEnrollmentID *string   `validate:"omitempty,min=1"`
	OriginSlotID       string    `validate:"required"`
	OriginDate         time.Time `validate:"required"`
	DestinationSlotID  string    `validate:"required"`
	DestinationDate    time.Time `validate:"required"`
	IsMakeup           bool
	Reason             *string     `validate:"omitempty,max=500"`
	RequestedBy        string      `validate:"required"`
	Role               domain.Role `validate:"required"`
}

// Response созданная заявка и состав обоих занятий после изменения
type Response struct {
	Request     *domain.RescheduleRequest
	Origin      roster.Occupancy
	Destination roster.Occupancy
}
