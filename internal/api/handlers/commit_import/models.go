package commit_import

import (
	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/namematch"
	importStudents "github.com/m04kA/SMC-StudioSchedule/internal/usecase/import_students"
)

// RowDTO строка импорта с решением оператора
type RowDTO struct {
	Line        int     `json:"line"`
	Name        string  `json:"name"`
	Decision    string  `json:"decision"` // confirm | choose | skip | create
	ChosenID    *string `json:"chosenId,omitempty"`
	FixedSlotID *string `json:"fixedSlotId,omitempty"`
	Waitlisted  bool    `json:"waitlisted"`
	Note        *string `json:"note,omitempty"`
}

// CommitRequest HTTP request model
type CommitRequest struct {
	Rows []RowDTO `json:"rows"`
}

// ResultDTO итог строки
type ResultDTO struct {
	Line            int    `json:"line"`
	Name            string `json:"name"`
	Outcome         string `json:"outcome"`
	StudentID       string `json:"studentId,omitempty"`
	EnrollmentID    string `json:"enrollmentId,omitempty"`
	AlreadyEnrolled bool   `json:"alreadyEnrolled,omitempty"`
	Error           string `json:"error,omitempty"`
}

// CommitResponse HTTP response model
type CommitResponse struct {
	Results []ResultDTO `json:"results"`
	Created int         `json:"created"`
	Matched int         `json:"matched"`
	Skipped int         `json:"skipped"`
	Failed  int         `json:"failed"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CommitRequest) ToUseCaseRequest(role domain.Role) *importStudents.CommitRequest {
	rows := make([]importStudents.CommitRow, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, importStudents.CommitRow{
			Line:        row.Line,
			Name:        row.Name,
			Decision:    namematch.Decision(row.Decision),
			ChosenID:    row.ChosenID,
			FixedSlotID: row.FixedSlotID,
			Waitlisted:  row.Waitlisted,
			Note:        row.Note,
		})
	}
	return &importStudents.CommitRequest{Rows: rows, Role: role}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *importStudents.CommitResponse) *CommitResponse {
	out := &CommitResponse{
		Results: make([]ResultDTO, 0, len(resp.Results)),
		Created: resp.Created,
		Matched: resp.Matched,
		Skipped: resp.Skipped,
		Failed:  resp.Failed,
	}
	for _, r := range resp.Results {
		out.Results = append(out.Results, ResultDTO{
			Line:            r.Line,
			Name:            r.Name,
			Outcome:         string(r.Outcome),
			StudentID:       r.StudentID,
			EnrollmentID:    r.EnrollmentID,
			AlreadyEnrolled: r.AlreadyEnrolled,
			Error:           r.Error,
		})
	}
	return out
}
