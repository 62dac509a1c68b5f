package build_week_grid

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/engine/grid"
)

// Request запрос недельной сетки
type Request struct {
	ClassTypeID string `validate:"required"`
	// Week любая дата недели. Нулевое значение означает текущую неделю
	Week time.Time
}

// Response недельная сетка модальности
type Response struct {
	ClassTypeName string
	// Known false, если модальность не найдена: сетка пустая
	Known bool
	grid.Grid
}
