package check_linked_conflict

import (
	checkLinkedConflict "github.com/m04kA/SMC-StudioSchedule/internal/usecase/check_linked_conflict"
)

// ConflictResponse HTTP response model
type ConflictResponse struct {
	Occupied        bool   `json:"occupied"`
	ByClassTypeID   string `json:"byClassTypeId,omitempty"`
	ByClassTypeName string `json:"byClassTypeName,omitempty"`
	FixedSlotID     string `json:"fixedSlotId,omitempty"`
	WindowStart     string `json:"windowStart,omitempty"`
	WindowEnd       string `json:"windowEnd,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkLinkedConflict.Response) *ConflictResponse {
	return &ConflictResponse{
		Occupied:        resp.Occupied,
		ByClassTypeID:   resp.ByClassTypeID,
		ByClassTypeName: resp.ByClassTypeName,
		FixedSlotID:     resp.FixedSlotID,
		WindowStart:     resp.WindowStart.String(),
		WindowEnd:       resp.WindowEnd.String(),
	}
}
