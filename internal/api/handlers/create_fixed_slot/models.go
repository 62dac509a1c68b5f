package create_fixed_slot

import (
	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	createFixedSlot "github.com/m04kA/SMC-StudioSchedule/internal/usecase/create_fixed_slot"
	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

// CreateSlotRequest HTTP request model
// EndTime необязателен: по умолчанию начало плюс длительность занятия модальности
type CreateSlotRequest struct {
	InstructorID     string  `json:"instructorId"`
	DayOfWeek        int     `json:"dayOfWeek"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime,omitempty"`
	CapacityOverride *int    `json:"capacityOverride,omitempty"`
	Note             *string `json:"note,omitempty"`
}

// CreateSlotResponse HTTP response model
type CreateSlotResponse struct {
	Slot  *handlers.FixedSlotDTO `json:"slot"`
	Turma int                    `json:"turma"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSlotRequest) ToUseCaseRequest(classTypeID string, role domain.Role) (*createFixedSlot.Request, error) {
	start, err := handlers.ParseTime(r.StartTime)
	if err != nil {
		return nil, err
	}
	var end types.TimeString
	if r.EndTime != "" {
		if end, err = handlers.ParseTime(r.EndTime); err != nil {
			return nil, err
		}
	}
	return &createFixedSlot.Request{
		ClassTypeID:      classTypeID,
		InstructorID:     r.InstructorID,
		DayOfWeek:        r.DayOfWeek,
		StartTime:        start,
		EndTime:          end,
		CapacityOverride: r.CapacityOverride,
		Note:             r.Note,
		Role:             role,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createFixedSlot.Response) *CreateSlotResponse {
	return &CreateSlotResponse{
		Slot:  handlers.FromFixedSlot(resp.Slot),
		Turma: resp.Turma,
	}
}
