package grid

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/conflict"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

// CellStatus состояние ячейки сетки
type CellStatus string

const (
	CellEmpty          CellStatus = "empty"
	CellAvailable      CellStatus = "available"
	CellScheduled      CellStatus = "scheduled"
	CellCovered        CellStatus = "covered" // продолжение занятия, начавшегося раньше
	CellLinkedOccupied CellStatus = "linked_occupied"
	CellBlocked        CellStatus = "blocked"
	CellNonOperating   CellStatus = "non_operating"
)

// Reason почему день или ячейка скрыты
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonBlocked      Reason = "blocked"
	ReasonNonOperating Reason = "non_operating"
)

// TurmaSlot слот в составе турмы и его состав на дату
type TurmaSlot struct {
	Slot      *domain.FixedSlot
	Blocked   bool
	Occupancy roster.Occupancy
}

// Turma группа слотов с одинаковыми (инструктор, начало, конец)
type Turma struct {
	Key         domain.TurmaKey
	Slots       []TurmaSlot
	ActiveCount int
	Capacity    int
	IsFull      bool
}

// Cell ячейка (день, время)
type Cell struct {
	DayOfWeek int
	Date      time.Time
	Status    CellStatus
	Reason    Reason
	Turmas    []Turma
	Conflict  *conflict.Result
}

// Row строка сетки
// Boundary true для строки, видимой только как момент окончания занятия
type Row struct {
	Time     types.TimeString
	Boundary bool
	Cells    []Cell
}

// Day колонка сетки
type Day struct {
	DayOfWeek int
	Date      time.Time
	Visible   bool
	Reason    Reason
	Holiday   *domain.Holiday
}

// Grid недельная сетка модальности
type Grid struct {
	ClassTypeID string
	WeekStart   time.Time
	Days        []Day
	Rows        []Row
}
