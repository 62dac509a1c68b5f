package get_makeups

import (
	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	getMakeupStatus "github.com/m04kA/SMC-StudioSchedule/internal/usecase/get_makeup_status"
)

// SuggestionDTO свободное занятие для отработки
type SuggestionDTO struct {
	FixedSlotID    string `json:"fixedSlotId"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	AvailableSpots int    `json:"availableSpots"`
}

// MakeupDTO пропуск и состояние его отработки
type MakeupDTO struct {
	StudentID      string                  `json:"studentId"`
	FixedSlotID    string                  `json:"fixedSlotId"`
	AbsenceDate    string                  `json:"absenceDate"`
	SessionID      string                  `json:"sessionId"`
	Deadline       string                  `json:"deadline"`
	IsExpired      bool                    `json:"isExpired"`
	Status         string                  `json:"status"`
	MakeupRequest  *handlers.RescheduleDTO `json:"makeupRequest,omitempty"`
	PendingRequest *handlers.RescheduleDTO `json:"pendingRequest,omitempty"`
	Suggestions    []SuggestionDTO         `json:"suggestions,omitempty"`
}

// MakeupsResponse HTTP response model
type MakeupsResponse struct {
	From  string      `json:"from"`
	To    string      `json:"to"`
	Items []MakeupDTO `json:"items"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMakeupStatus.Response) *MakeupsResponse {
	out := &MakeupsResponse{
		From:  handlers.FormatDate(resp.From),
		To:    handlers.FormatDate(resp.To),
		Items: make([]MakeupDTO, 0, len(resp.Items)),
	}
	for _, item := range resp.Items {
		dto := MakeupDTO{
			StudentID:      item.Absence.StudentID,
			FixedSlotID:    item.Absence.FixedSlotID,
			AbsenceDate:    handlers.FormatDate(item.Absence.Date),
			SessionID:      item.Absence.SessionID,
			Deadline:       handlers.FormatDate(item.Deadline),
			IsExpired:      item.IsExpired,
			Status:         string(item.Status),
			MakeupRequest:  handlers.FromReschedule(item.MakeupRequest),
			PendingRequest: handlers.FromReschedule(item.PendingRequest),
		}
		for _, s := range item.Suggestions {
			dto.Suggestions = append(dto.Suggestions, SuggestionDTO{
				FixedSlotID:    s.FixedSlotID,
				Date:           handlers.FormatDate(s.Date),
				StartTime:      s.StartTime.String(),
				EndTime:        s.EndTime.String(),
				AvailableSpots: s.AvailableSpots,
			})
		}
		out.Items = append(out.Items, dto)
	}
	return out
}
