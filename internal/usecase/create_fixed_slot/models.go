package create_fixed_slot

import (
	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

// Request модель запроса на создание слота
// Если EndTime не задан, он вычисляется по длительности занятия модальности
type Request struct {
	ClassTypeID      string           `validate:"required"`
	InstructorID     string           `validate:"required"`
	DayOfWeek        int              `validate:"min=0,max=6"`
	StartTime        types.TimeString `validate:"required"`
	EndTime          types.TimeString
	CapacityOverride *int        `validate:"omitempty,min=1,max=200"`
	Note             *string     `validate:"omitempty,max=500"`
	Role             domain.Role `validate:"required"`
}

// Response созданный слот
type Response struct {
	Slot *domain.FixedSlot
	// Turma сколько слотов, включая новый, показываются одной группой
	Turma int
}
