package resolve_occupancy

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

// Request запрос состава занятия
type Request struct {
	FixedSlotID string    `validate:"required"`
	Date        time.Time `validate:"required"`
}

// Response состав занятия на дату
type Response struct {
	FixedSlotID    string
	ClassTypeID    string
	InstructorID   string
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	ActiveCount    int
	Capacity       int
	AvailableSpots int
	IsFull         bool
	Settled        bool

	// NonOperating true, если дата выпала на праздник
	NonOperating bool
	HolidayName  string
	Blocked      bool

	Attendees   []roster.Attendee
	Annotations []roster.Annotation
}
