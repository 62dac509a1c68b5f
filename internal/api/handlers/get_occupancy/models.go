package get_occupancy

import (
	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	resolveOccupancy "github.com/m04kA/SMC-StudioSchedule/internal/usecase/resolve_occupancy"
)

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	handlers.OccupancyDTO
	ClassTypeID  string `json:"classTypeId"`
	InstructorID string `json:"instructorId"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	NonOperating bool   `json:"nonOperating"`
	HolidayName  string `json:"holidayName,omitempty"`
	Blocked      bool   `json:"blocked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveOccupancy.Response) *OccupancyResponse {
	return &OccupancyResponse{
		OccupancyDTO: handlers.OccupancyDTO{
			SlotID:         resp.FixedSlotID,
			Date:           handlers.FormatDate(resp.Date),
			ActiveCount:    resp.ActiveCount,
			Capacity:       resp.Capacity,
			AvailableSpots: resp.AvailableSpots,
			IsFull:         resp.IsFull,
			Settled:        resp.Settled,
			Attendees:      handlers.FromAttendees(resp.Attendees),
			Annotations:    handlers.FromAnnotations(resp.Annotations),
		},
		ClassTypeID:  resp.ClassTypeID,
		InstructorID: resp.InstructorID,
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		NonOperating: resp.NonOperating,
		HolidayName:  resp.HolidayName,
		Blocked:      resp.Blocked,
	}
}
