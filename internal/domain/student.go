package domain

import "time"

// StudentStatus взаимоисключающий статус ученика
type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentFrozen   StudentStatus = "frozen"
	StudentInactive StudentStatus = "inactive"
)

// IsValid проверяет, что статус известен
func (s StudentStatus) IsValid() bool {
	return s == StudentActive || s == StudentFrozen || s == StudentInactive
}

// Student ученик студии
type Student struct {
	ID             string
	Name           string
	Frozen         bool
	Inactive       bool
	Waitlisted     bool
	PartnershipTag *string
	Note           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Status возвращает статус по флагам
func (s *Student) Status() StudentStatus {
	switch {
	case s.Frozen:
		return StudentFrozen
	case s.Inactive:
		return StudentInactive
	default:
		return StudentActive
	}
}

// SetStatus выставляет флаги frozen/inactive так, что истинным может быть только один
func (s *Student) SetStatus(status StudentStatus) {
	s.Frozen = status == StudentFrozen
	s.Inactive = status == StudentInactive
}

// IsCountable true, если ученик занимает место в группе
// Замороженные, неактивные и ученики из листа ожидания мест не занимают
func (s *Student) IsCountable() bool {
	return !s.Frozen && !s.Inactive && !s.Waitlisted
}

// Enrollment постоянная запись ученика на слот
type Enrollment struct {
	ID          string
	FixedSlotID string
	StudentID   string
	Note        *string
	CreatedAt   time.Time
}
