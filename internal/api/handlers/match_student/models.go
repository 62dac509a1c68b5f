package match_student

import (
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/namematch"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/students"
)

// MatchRequest HTTP request model
type MatchRequest struct {
	Name  string `json:"name"`
	Limit int    `json:"limit,omitempty"`
}

// CandidateDTO кандидат и его схожесть
type CandidateDTO struct {
	StudentID string  `json:"studentId"`
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
}

// MatchResponse HTTP response model
type MatchResponse struct {
	Best          *CandidateDTO  `json:"best,omitempty"`
	NeedsDecision bool           `json:"needsDecision"`
	Alternatives  []CandidateDTO `json:"alternatives"`
}

// FromMatch конвертирует результат сопоставления
func FromMatch(m namematch.Match) CandidateDTO {
	return CandidateDTO{StudentID: m.Candidate.ID, Name: m.Candidate.Name, Score: m.Score}
}

// FromMatches конвертирует список кандидатов
func FromMatches(list []namematch.Match) []CandidateDTO {
	result := make([]CandidateDTO, 0, len(list))
	for _, m := range list {
		result = append(result, FromMatch(m))
	}
	return result
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *students.MatchResponse) *MatchResponse {
	out := &MatchResponse{
		NeedsDecision: resp.NeedsDecision,
		Alternatives:  FromMatches(resp.Alternatives),
	}
	if resp.Best != nil {
		best := FromMatch(*resp.Best)
		out.Best = &best
	}
	return out
}
