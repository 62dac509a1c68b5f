package handlers

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
)

// AttendeeDTO участник занятия
type AttendeeDTO struct {
	Ref          string `json:"ref"`
	StudentID    string `json:"studentId,omitempty"`
	Name         string `json:"name"`
	Provenance   string `json:"provenance"`
	Presence     string `json:"presence"`
	EnrollmentID string `json:"enrollmentId,omitempty"`
	RequestID    string `json:"requestId,omitempty"`
	IsMakeup     bool   `json:"isMakeup"`
}

// AnnotationDTO пометка о заявке на перенос
type AnnotationDTO struct {
	Kind            string `json:"kind"`
	RequestID       string `json:"requestId"`
	StudentID       string `json:"studentId"`
	CounterpartSlot string `json:"counterpartSlotId"`
	CounterpartDate string `json:"counterpartDate"`
	IsMakeup        bool   `json:"isMakeup"`
}

// OccupancyDTO состав занятия
type OccupancyDTO struct {
	SlotID         string          `json:"slotId"`
	Date           string          `json:"date"`
	ActiveCount    int             `json:"activeCount"`
	Capacity       int             `json:"capacity"`
	AvailableSpots int             `json:"availableSpots"`
	IsFull         bool            `json:"isFull"`
	Settled        bool            `json:"settled"`
	Attendees      []AttendeeDTO   `json:"attendees"`
	Annotations    []AnnotationDTO `json:"annotations"`
}

// RescheduleDTO заявка на перенос
type RescheduleDTO struct {
	ID                 string  `json:"id"`
	StudentID          string  `json:"studentId"`
	OriginEnrollmentID *string `json:"originEnrollmentId,omitempty"`
	OriginSlotID       string  `json:"originSlotId"`
	OriginDate         string  `json:"originDate"`
	DestinationSlotID  string  `json:"destinationSlotId"`
	DestinationDate    string  `json:"destinationDate"`
	DestinationStart   string  `json:"destinationStart"`
	DestinationEnd     string  `json:"destinationEnd"`
	Status             string  `json:"status"`
	IsMakeup           bool    `json:"isMakeup"`
	Reason             *string `json:"reason,omitempty"`
	RequestedBy        string  `json:"requestedBy"`
	ReviewedBy         *string `json:"reviewedBy,omitempty"`
	ReviewedAt         *string `json:"reviewedAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
}

// TrialDTO пробное занятие
type TrialDTO struct {
	ID           string  `json:"id"`
	FixedSlotID  string  `json:"fixedSlotId"`
	Date         string  `json:"date"`
	ContactName  string  `json:"contactName"`
	ContactPhone string  `json:"contactPhone"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	Status       string  `json:"status"`
	Attended     *bool   `json:"attended,omitempty"`
}

// StudentDTO ученик
type StudentDTO struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Status         string  `json:"status"`
	Waitlisted     bool    `json:"waitlisted"`
	PartnershipTag *string `json:"partnershipTag,omitempty"`
	Note           *string `json:"note,omitempty"`
}

// EnrollmentDTO постоянная запись
type EnrollmentDTO struct {
	ID          string  `json:"id"`
	FixedSlotID string  `json:"fixedSlotId"`
	StudentID   string  `json:"studentId"`
	Note        *string `json:"note,omitempty"`
}

// FixedSlotDTO слот расписания
type FixedSlotDTO struct {
	ID               string  `json:"id"`
	ClassTypeID      string  `json:"classTypeId"`
	InstructorID     string  `json:"instructorId"`
	DayOfWeek        int     `json:"dayOfWeek"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	CapacityOverride *int    `json:"capacityOverride,omitempty"`
	Note             *string `json:"note,omitempty"`
}

// FromOccupancy конвертирует состав занятия
func FromOccupancy(o roster.Occupancy) OccupancyDTO {
	dto := OccupancyDTO{
		SlotID:         o.SlotID,
		Date:           FormatDate(o.Date),
		ActiveCount:    o.ActiveCount,
		Capacity:       o.Capacity,
		AvailableSpots: o.AvailableSpots(),
		IsFull:         o.IsFull,
		Settled:        o.Settled,
		Attendees:      FromAttendees(o.Attendees),
		Annotations:    FromAnnotations(o.Annotations),
	}
	return dto
}

// FromAttendees конвертирует участников
func FromAttendees(list []roster.Attendee) []AttendeeDTO {
	result := make([]AttendeeDTO, 0, len(list))
	for _, a := range list {
		result = append(result, AttendeeDTO{
			Ref:          a.Ref,
			StudentID:    a.StudentID,
			Name:         a.Name,
			Provenance:   string(a.Provenance),
			Presence:     string(a.Presence),
			EnrollmentID: a.EnrollmentID,
			RequestID:    a.RequestID,
			IsMakeup:     a.IsMakeup,
		})
	}
	return result
}

// FromAnnotations конвертирует пометки о заявках
func FromAnnotations(list []roster.Annotation) []AnnotationDTO {
	result := make([]AnnotationDTO, 0, len(list))
	for _, a := range list {
		result = append(result, AnnotationDTO{
			Kind:            string(a.Kind),
			RequestID:       a.RequestID,
			StudentID:       a.StudentID,
			CounterpartSlot: a.Counterpart.SlotID,
			CounterpartDate: FormatDate(a.Counterpart.Date),
			IsMakeup:        a.IsMakeup,
		})
	}
	return result
}

// FromReschedule конвертирует заявку на перенос
func FromReschedule(r *domain.RescheduleRequest) *RescheduleDTO {
	if r == nil {
		return nil
	}
	dto := &RescheduleDTO{
		ID:                 r.ID,
		StudentID:          r.StudentID,
		OriginEnrollmentID: r.OriginEnrollmentID,
		OriginSlotID:       r.OriginSlotID,
		OriginDate:         FormatDate(r.OriginDate),
		DestinationSlotID:  r.DestinationSlotID,
		DestinationDate:    FormatDate(r.DestinationDate),
		DestinationStart:   r.DestinationStart.String(),
		DestinationEnd:     r.DestinationEnd.String(),
		Status:             string(r.Status),
		IsMakeup:           r.IsMakeup,
		Reason:             r.Reason,
		RequestedBy:        r.RequestedBy,
		ReviewedBy:         r.ReviewedBy,
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
	}
	if r.ReviewedAt != nil {
		at := r.ReviewedAt.Format(time.RFC3339)
		dto.ReviewedAt = &at
	}
	return dto
}

// FromTrial конвертирует пробное занятие
func FromTrial(t *domain.TrialBooking) *TrialDTO {
	if t == nil {
		return nil
	}
	return &TrialDTO{
		ID:           t.ID,
		FixedSlotID:  t.FixedSlotID,
		Date:         FormatDate(t.Date),
		ContactName:  t.ContactName,
		ContactPhone: t.ContactPhone,
		ContactEmail: t.ContactEmail,
		Status:       string(t.Status),
		Attended:     t.Attended,
	}
}

// FromStudent конвертирует ученика
func FromStudent(s *domain.Student) *StudentDTO {
	if s == nil {
		return nil
	}
	return &StudentDTO{
		ID:             s.ID,
		Name:           s.Name,
		Status:         string(s.Status()),
		Waitlisted:     s.Waitlisted,
		PartnershipTag: s.PartnershipTag,
		Note:           s.Note,
	}
}

// FromEnrollment конвертирует постоянную запись
func FromEnrollment(e *domain.Enrollment) *EnrollmentDTO {
	if e == nil {
		return nil
	}
	return &EnrollmentDTO{
		ID:          e.ID,
		FixedSlotID: e.FixedSlotID,
		StudentID:   e.StudentID,
		Note:        e.Note,
	}
}

// FromFixedSlot конвертирует слот
func FromFixedSlot(s *domain.FixedSlot) *FixedSlotDTO {
	if s == nil {
		return nil
	}
	return &FixedSlotDTO{
		ID:               s.ID,
		ClassTypeID:      s.ClassTypeID,
		InstructorID:     s.InstructorID,
		DayOfWeek:        s.DayOfWeek,
		StartTime:        s.StartTime.String(),
		EndTime:          s.EndTime.String(),
		CapacityOverride: s.CapacityOverride,
		Note:             s.Note,
	}
}
