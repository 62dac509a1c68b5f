package domain

import "time"

// TrialStatus статус пробного занятия
type TrialStatus string

const (
	TrialScheduled TrialStatus = "scheduled"
	TrialApproved  TrialStatus = "approved"
	TrialCancelled TrialStatus = "cancelled"
)

// IsValid проверяет, что статус известен
func (s TrialStatus) IsValid() bool {
	return s == TrialScheduled || s == TrialApproved || s == TrialCancelled
}

// TrialBooking запись на пробное занятие на одну дату
type TrialBooking struct {
	ID           string
	FixedSlotID  string
	Date         time.Time
	ContactName  string
	ContactPhone string
	ContactEmail *string
	Status       TrialStatus
	Attended     *bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Occurrence занятие, на которое записан пробник
func (t *TrialBooking) Occurrence() Occurrence {
	return NewOccurrence(t.FixedSlotID, t.Date)
}

// CountsTowardOccupancy отмененные пробные места не занимают
func (t *TrialBooking) CountsTowardOccupancy() bool {
	return t.Status == TrialScheduled || t.Status == TrialApproved
}

// CreditUsage разовое посещение за счет кредита
type CreditUsage struct {
	ID          string
	StudentID   string
	FixedSlotID string
	Date        time.Time
	CreditRef   string
	CreatedAt   time.Time
}

// Occurrence занятие, на которое потрачен кредит
func (c *CreditUsage) Occurrence() Occurrence {
	return NewOccurrence(c.FixedSlotID, c.Date)
}
