package get_makeup_status

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/engine/makeup"
	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

// maxRangeDays наибольший запрашиваемый период
const maxRangeDays = 366

// Request запрос пропусков ученика или слота
// Без дат берется период domain.DefaultMakeupLookup дней до сегодняшнего дня
type Request struct {
	StudentID   string `validate:"required_without=FixedSlotID"`
	FixedSlotID string
	From        *time.Time
	To          *time.Time
	// WithSuggestions добавляет свободные занятия той же модальности для открытых пропусков
	WithSuggestions bool
}

// Suggestion занятие, на которое можно записаться на отработку
type Suggestion struct {
	FixedSlotID    string
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	AvailableSpots int
}

// Item пропуск и состояние его отработки
type Item struct {
	makeup.Tracking
	Suggestions []Suggestion
}

// Response список пропусков
type Response struct {
	From  time.Time
	To    time.Time
	Items []Item
}
