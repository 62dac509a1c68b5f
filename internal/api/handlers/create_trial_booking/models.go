package create_trial_booking

import (
	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	createTrialBooking "github.com/m04kA/SMC-StudioSchedule/internal/usecase/create_trial_booking"
)

// CreateTrialRequest HTTP request model
type CreateTrialRequest struct {
	FixedSlotID  string  `json:"fixedSlotId"`
	Date         string  `json:"date"`
	ContactName  string  `json:"contactName"`
	ContactPhone string  `json:"contactPhone"`
	ContactEmail *string `json:"contactEmail,omitempty"`
}

// TrialResponse HTTP response model
type TrialResponse struct {
	Trial     *handlers.TrialDTO    `json:"trial"`
	Occupancy handlers.OccupancyDTO `json:"occupancy"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateTrialRequest) ToUseCaseRequest() (*createTrialBooking.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &createTrialBooking.Request{
		FixedSlotID:  r.FixedSlotID,
		Date:         date,
		ContactName:  r.ContactName,
		ContactPhone: r.ContactPhone,
		ContactEmail: r.ContactEmail,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createTrialBooking.Response) *TrialResponse {
	return &TrialResponse{
		Trial:     handlers.FromTrial(resp.Trial),
		Occupancy: handlers.FromOccupancy(resp.Occupancy),
	}
}
