package import_students

import (
	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/namematch"
)

const (
	alternativeLimit = 5
)

// PreviewRow строка файла импорта
type PreviewRow struct {
	Line int
	Name string `validate:"required,max=200"`
}

// PreviewRequest запрос предпросмотра импорта
type PreviewRequest struct {
	Rows []PreviewRow `validate:"required,min=1,max=1000,dive"`
	Role domain.Role  `validate:"required"`
}

// PreviewItem кандидаты для строки импорта
type PreviewItem struct {
	Line          int
	Name          string
	Best          *namematch.Match
	NeedsDecision bool
	Alternatives  []namematch.Match
	// Suggested решение по умолчанию: confirm при похожем ученике, иначе create
	Suggested namematch.Decision
}

// PreviewResponse результат предпросмотра
type PreviewResponse struct {
	Items         []PreviewItem
	NeedDecisions int
}

// CommitRow строка импорта с решением оператора
type CommitRow struct {
	Line        int
	Name        string             `validate:"required,max=200"`
	Decision    namematch.Decision `validate:"required,oneof=confirm choose skip create"`
	ChosenID    *string
	FixedSlotID *string
	Waitlisted  bool
	Note        *string `validate:"omitempty,max=500"`
}

// CommitRequest запрос применения импорта
type CommitRequest struct {
	Rows []CommitRow `validate:"required,min=1,max=1000,dive"`
	Role domain.Role `validate:"required"`
}

// Outcome итог обработки строки
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeMatched Outcome = "matched"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// RowResult итог строки импорта
type RowResult struct {
	Line         int
	Name         string
	Outcome      Outcome
	StudentID    string
	EnrollmentID string
	// AlreadyEnrolled ученик уже был записан на слот
	AlreadyEnrolled bool
	Error           string
}

// CommitResponse результат импорта
type CommitResponse struct {
	Results []RowResult
	Created int
	Matched int
	Skipped int
	Failed  int
}
