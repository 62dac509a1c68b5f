package preview_import

import (
	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers/match_student"
	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	importStudents "github.com/m04kA/SMC-StudioSchedule/internal/usecase/import_students"
)

// RowDTO строка файла импорта
type RowDTO struct {
	Line int    `json:"line"`
	Name string `json:"name"`
}

// PreviewRequest HTTP request model
type PreviewRequest struct {
	Rows []RowDTO `json:"rows"`
}

// ItemDTO кандидаты для строки
type ItemDTO struct {
	Line          int                          `json:"line"`
	Name          string                       `json:"name"`
	Best          *match_student.CandidateDTO  `json:"best,omitempty"`
	NeedsDecision bool                         `json:"needsDecision"`
	Alternatives  []match_student.CandidateDTO `json:"alternatives"`
	Suggested     string                       `json:"suggested"`
}

// PreviewResponse HTTP response model
type PreviewResponse struct {
	Items         []ItemDTO `json:"items"`
	NeedDecisions int       `json:"needDecisions"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PreviewRequest) ToUseCaseRequest(role domain.Role) *importStudents.PreviewRequest {
	rows := make([]importStudents.PreviewRow, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, importStudents.PreviewRow{Line: row.Line, Name: row.Name})
	}
	return &importStudents.PreviewRequest{Rows: rows, Role: role}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *importStudents.PreviewResponse) *PreviewResponse {
	out := &PreviewResponse{
		Items:         make([]ItemDTO, 0, len(resp.Items)),
		NeedDecisions: resp.NeedDecisions,
	}
	for _, item := range resp.Items {
		dto := ItemDTO{
			Line:          item.Line,
			Name:          item.Name,
			NeedsDecision: item.NeedsDecision,
			Alternatives:  match_student.FromMatches(item.Alternatives),
			Suggested:     string(item.Suggested),
		}
		if item.Best != nil {
			best := match_student.FromMatch(*item.Best)
			dto.Best = &best
		}
		out.Items = append(out.Items, dto)
	}
	return out
}
