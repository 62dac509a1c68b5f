package get_week_grid

import (
	"github.com/m04kA/SMC-StudioSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/grid"
	buildWeekGrid "github.com/m04kA/SMC-StudioSchedule/internal/usecase/build_week_grid"
)

// GridResponse HTTP response model
type GridResponse struct {
	ClassTypeID   string   `json:"classTypeId"`
	ClassTypeName string   `json:"classTypeName"`
	Known         bool     `json:"known"`
	WeekStart     string   `json:"weekStart"`
	Days          []DayDTO `json:"days"`
	Rows          []RowDTO `json:"rows"`
}

type DayDTO struct {
	DayOfWeek int    `json:"dayOfWeek"`
	Date      string `json:"date"`
	Visible   bool   `json:"visible"`
	Reason    string `json:"reason,omitempty"`
	Holiday   string `json:"holiday,omitempty"`
}

type RowDTO struct {
	Time     string    `json:"time"`
	Boundary bool      `json:"boundary"`
	Cells    []CellDTO `json:"cells"`
}

type CellDTO struct {
	DayOfWeek int          `json:"dayOfWeek"`
	Date      string       `json:"date"`
	Status    string       `json:"status"`
	Reason    string       `json:"reason,omitempty"`
	Turmas    []TurmaDTO   `json:"turmas,omitempty"`
	Conflict  *ConflictDTO `json:"conflict,omitempty"`
}

type TurmaDTO struct {
	InstructorID string         `json:"instructorId"`
	StartTime    string         `json:"startTime"`
	EndTime      string         `json:"endTime"`
	ActiveCount  int            `json:"activeCount"`
	Capacity     int            `json:"capacity"`
	IsFull       bool           `json:"isFull"`
	Slots        []TurmaSlotDTO `json:"slots"`
}

type TurmaSlotDTO struct {
	SlotID    string                `json:"slotId"`
	Blocked   bool                  `json:"blocked"`
	Occupancy handlers.OccupancyDTO `json:"occupancy"`
}

type ConflictDTO struct {
	ClassTypeID   string `json:"classTypeId"`
	ClassTypeName string `json:"classTypeName"`
	SlotID        string `json:"slotId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buildWeekGrid.Response) *GridResponse {
	out := &GridResponse{
		ClassTypeID:   resp.ClassTypeID,
		ClassTypeName: resp.ClassTypeName,
		Known:         resp.Known,
		WeekStart:     handlers.FormatDate(resp.WeekStart),
		Days:          make([]DayDTO, 0, len(resp.Days)),
		Rows:          make([]RowDTO, 0, len(resp.Rows)),
	}
	for _, d := range resp.Days {
		day := DayDTO{
			DayOfWeek: d.DayOfWeek,
			Date:      handlers.FormatDate(d.Date),
			Visible:   d.Visible,
			Reason:    string(d.Reason),
		}
		if d.Holiday != nil {
			day.Holiday = d.Holiday.Name
		}
		out.Days = append(out.Days, day)
	}
	for _, row := range resp.Rows {
		dto := RowDTO{Time: row.Time.String(), Boundary: row.Boundary, Cells: make([]CellDTO, 0, len(row.Cells))}
		for _, c := range row.Cells {
			dto.Cells = append(dto.Cells, fromCell(c))
		}
		out.Rows = append(out.Rows, dto)
	}
	return out
}

func fromCell(c grid.Cell) CellDTO {
	cell := CellDTO{
		DayOfWeek: c.DayOfWeek,
		Date:      handlers.FormatDate(c.Date),
		Status:    string(c.Status),
		Reason:    string(c.Reason),
	}
	for _, t := range c.Turmas {
		turma := TurmaDTO{
			InstructorID: t.Key.InstructorID,
			StartTime:    t.Key.StartTime.String(),
			EndTime:      t.Key.EndTime.String(),
			ActiveCount:  t.ActiveCount,
			Capacity:     t.Capacity,
			IsFull:       t.IsFull,
		}
		for _, s := range t.Slots {
			turma.Slots = append(turma.Slots, TurmaSlotDTO{
				SlotID:    s.Slot.ID,
				Blocked:   s.Blocked,
				Occupancy: handlers.FromOccupancy(s.Occupancy),
			})
		}
		cell.Turmas = append(cell.Turmas, turma)
	}
	if c.Conflict != nil && c.Conflict.Occupied && c.Conflict.By != nil {
		cell.Conflict = &ConflictDTO{
			ClassTypeID:   c.Conflict.By.ID,
			ClassTypeName: c.Conflict.By.Name,
		}
		if c.Conflict.Slot != nil {
			cell.Conflict.SlotID = c.Conflict.Slot.ID
		}
	}
	return cell
}
