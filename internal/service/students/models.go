package students

import (
	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/namematch"
)

// CreateRequest запрос на создание ученика
type CreateRequest struct {
	Name           string      `validate:"required,max=200"`
	PartnershipTag *string     `validate:"omitempty,max=100"`
	Note           *string     `validate:"omitempty,max=500"`
	Waitlisted     bool
	Role           domain.Role `validate:"required"`
}

// SetStatusRequest запрос на смену статуса
// Status пустой, если меняется только признак листа ожидания
type SetStatusRequest struct {
	StudentID  string      `validate:"required"`
	Status     string      `validate:"omitempty,oneof=active frozen inactive"`
	Waitlisted *bool
	Role       domain.Role `validate:"required"`
}

// MatchRequest запрос на поиск ученика по имени
type MatchRequest struct {
	Name  string `validate:"required,max=200"`
	Limit int    `validate:"min=0,max=50"`
}

// MatchResponse лучший кандидат и альтернативы по убыванию схожести
type MatchResponse struct {
	Best          *namematch.Match
	NeedsDecision bool
	Alternatives  []namematch.Match
}
