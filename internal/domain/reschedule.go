package domain

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

// RescheduleStatus статус заявки на перенос
type RescheduleStatus string

const (
	ReschedulePending   RescheduleStatus = "pending"
	RescheduleApproved  RescheduleStatus = "approved"
	RescheduleRejected  RescheduleStatus = "rejected"
	RescheduleCancelled RescheduleStatus = "cancelled"
)

// IsValid проверяет, что статус известен
func (s RescheduleStatus) IsValid() bool {
	switch s {
	case ReschedulePending, RescheduleApproved, RescheduleRejected, RescheduleCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal true для статусов, из которых переходов нет
func (s RescheduleStatus) IsTerminal() bool {
	return s == RescheduleRejected || s == RescheduleCancelled
}

// transitions допустимые переходы статусов
var transitions = map[RescheduleStatus][]RescheduleStatus{
	ReschedulePending:  {RescheduleApproved, RescheduleRejected},
	RescheduleApproved: {RescheduleCancelled},
}

// CanTransition проверяет переход from -> to
// Отзыв заявки в статусе pending не является переходом: такая заявка удаляется
func CanTransition(from, to RescheduleStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// RescheduleRequest заявка на перенос занятия или отработку пропуска
type RescheduleRequest struct {
	ID                 string
	StudentID          string
	OriginEnrollmentID *string // nil для отработки без постоянной записи
	OriginSlotID       string
	OriginDate         time.Time
	DestinationSlotID  string
	DestinationDate    time.Time
	DestinationStart   types.TimeString
	DestinationEnd     types.TimeString
	Status             RescheduleStatus
	IsMakeup           bool
	Reason             *string
	RequestedBy        string
	ReviewedBy         *string
	ReviewedAt         *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Origin занятие, с которого ученик уходит
func (r *RescheduleRequest) Origin() Occurrence {
	return NewOccurrence(r.OriginSlotID, r.OriginDate)
}

// Destination занятие, на которое ученик приходит
func (r *RescheduleRequest) Destination() Occurrence {
	return NewOccurrence(r.DestinationSlotID, r.DestinationDate)
}

// IsApproved заявка влияет на подсчет мест
func (r *RescheduleRequest) IsApproved() bool {
	return r.Status == RescheduleApproved
}

// IsPending заявка ждет рассмотрения
func (r *RescheduleRequest) IsPending() bool {
	return r.Status == ReschedulePending
}

// IsOpen заявка еще может повлиять на расписание (pending или approved)
func (r *RescheduleRequest) IsOpen() bool {
	return r.IsPending() || r.IsApproved()
}
