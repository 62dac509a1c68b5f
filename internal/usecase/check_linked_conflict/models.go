package check_linked_conflict

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

// Request проверка момента недели или конкретной даты
// Если задана Date, день недели берется из нее и учитываются праздники
type Request struct {
	ClassTypeID string           `validate:"required"`
	DayOfWeek   *int             `validate:"omitempty,min=0,max=6"`
	Date        *time.Time       `validate:"required_without=DayOfWeek"`
	Time        types.TimeString `validate:"required"`
}

// Response результат проверки
type Response struct {
	Occupied        bool
	ByClassTypeID   string
	ByClassTypeName string
	FixedSlotID     string
	WindowStart     types.TimeString
	WindowEnd       types.TimeString
}
