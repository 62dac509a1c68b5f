package create_reschedule

import (
	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	createReschedule "github.com/m04kA/SMC-StudioSchedule/internal/usecase/create_reschedule"
)

// CreateRescheduleRequest HTTP request model
type CreateRescheduleRequest struct {
	StudentID          string  `json:"studentId"`
	OriginEnrollmentID *string `json:"originEnrollmentId,omitempty"`
	OriginSlotID       string  `json:"originSlotId"`
	OriginDate         string  `json:"originDate"`
	DestinationSlotID  string  `json:"destinationSlotId"`
	DestinationDate    string  `json:"destinationDate"`
	IsMakeup           bool    `json:"isMakeup"`
	Reason             *string `json:"reason,omitempty"`
}

// RescheduleResponse HTTP response model
type RescheduleResponse struct {
	Request     *handlers.RescheduleDTO `json:"request"`
	Origin      handlers.OccupancyDTO   `json:"origin"`
	Destination handlers.OccupancyDTO   `json:"destination"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRescheduleRequest) ToUseCaseRequest(userID string, role domain.Role) (*createReschedule.Request, error) {
	originDate, err := handlers.ParseDate(r.OriginDate)
	if err != nil {
		return nil, err
	}
	destinationDate, err := handlers.ParseDate(r.DestinationDate)
	if err != nil {
		return nil, err
	}

	return &createReschedule.Request{
		StudentID:          r.StudentID,
		OriginEnrollmentID: r.OriginEnrollmentID,
		OriginSlotID:       r.OriginSlotID,
		OriginDate:         originDate,
		DestinationSlotID:  r.DestinationSlotID,
		DestinationDate:    destinationDate,
		IsMakeup:           r.IsMakeup,
		Reason:             r.Reason,
		RequestedBy:        userID,
		Role:               role,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReschedule.Response) *RescheduleResponse {
	return &RescheduleResponse{
		Request:     handlers.FromReschedule(resp.Request),
		Origin:      handlers.FromOccupancy(resp.Origin),
		Destination: handlers.FromOccupancy(resp.Destination),
	}
}
