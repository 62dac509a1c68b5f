package finalize_session

import (
	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/sessions"
)

// EntryDTO отметка присутствия
type EntryDTO struct {
	StudentRef string `json:"studentRef"`
	Present    bool   `json:"present"`
}

// FinalizeRequest HTTP request model
type FinalizeRequest struct {
	FixedSlotID string     `json:"fixedSlotId"`
	Date        string     `json:"date"`
	Entries     []EntryDTO `json:"entries"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID           string     `json:"id"`
	FixedSlotID  string     `json:"fixedSlotId"`
	Date         string     `json:"date"`
	Entries      []EntryDTO `json:"entries"`
	PresentCount int        `json:"presentCount"`
	AbsentCount  int        `json:"absentCount"`
	Corrected    bool       `json:"corrected"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *FinalizeRequest) ToServiceRequest(role domain.Role) (*sessions.FinalizeRequest, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	entries := make([]sessions.Entry, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, sessions.Entry{StudentRef: e.StudentRef, Present: e.Present})
	}
	return &sessions.FinalizeRequest{
		FixedSlotID: r.FixedSlotID,
		Date:        date,
		Entries:     entries,
		Role:        role,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *sessions.FinalizeResponse) *SessionResponse {
	rec := resp.Record
	out := &SessionResponse{
		ID:           rec.ID,
		FixedSlotID:  rec.FixedSlotID,
		Date:         handlers.FormatDate(rec.Date),
		Entries:      make([]EntryDTO, 0, len(rec.Entries)),
		PresentCount: rec.PresentCount,
		AbsentCount:  rec.AbsentCount,
		Corrected:    resp.Corrected,
	}
	for _, e := range rec.Entries {
		out.Entries = append(out.Entries, EntryDTO{StudentRef: e.StudentRef, Present: e.Present})
	}
	return out
}
