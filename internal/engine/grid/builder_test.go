package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func gridData() domain.SnapshotData {
	return domain.SnapshotData{
		ClassTypes: []*domain.ClassType{
			{
				ID: "pilates", DefaultCapacity: 4, SessionDurationMinutes: 60,
				LinkedClassTypeIDs: []string{"yoga"},
				Availability: []domain.AvailabilityWindow{
					{DayOfWeek: 2, Start: "07:00", End: "09:00"},
				},
			},
			{ID: "yoga", DefaultCapacity: 10},
		},
		FixedSlots: []*domain.FixedSlot{
			{ID: "p1", ClassTypeID: "pilates", InstructorID: "ana", DayOfWeek: 1, StartTime: "18:00", EndTime: "19:00"},
			{ID: "p2", ClassTypeID: "pilates", InstructorID: "ana", DayOfWeek: 1, StartTime: "18:00", EndTime: "19:00"},
			{ID: "p3", ClassTypeID: "pilates", InstructorID: "bia", DayOfWeek: 1, StartTime: "18:00", EndTime: "19:00"},
			{ID: "y1", ClassTypeID: "yoga", InstructorID: "rui", DayOfWeek: 2, StartTime: "08:00", EndTime: "09:00"},
		},
		Students: []*domain.Student{{ID: "s1"}, {ID: "s2"}},
		Enrollments: []*domain.Enrollment{
			{ID: "e1", FixedSlotID: "p1", StudentID: "s1"},
			{ID: "e2", FixedSlotID: "p2", StudentID: "s2"},
		},
	}
}

func rowTimes(g Grid) []types.TimeString {
	var times []types.TimeString
	for _, r := range g.Rows {
		times = append(times, r.Time)
	}
	return times
}

func findRow(t *testing.T, g Grid, at types.TimeString) Row {
	t.Helper()
	for _, r := range g.Rows {
		if r.Time == at {
			return r
		}
	}
	require.Failf(t, "row not found", "time %s", at)
	return Row{}
}

func TestBuild_DaysAndRows(t *testing.T) {
	g := Build(domain.NewSnapshot(gridData()), "pilates", monday.AddDate(0, 0, 3))

	assert.Equal(t, monday, g.WeekStart)
	require.Len(t, g.Days, 7)
	assert.True(t, g.Days[0].Visible, "monday has slots")
	assert.True(t, g.Days[1].Visible, "tuesday has availability")
	for _, d := range g.Days[2:] {
		assert.False(t, d.Visible)
		assert.Equal(t, ReasonNone, d.Reason)
	}

	assert.Equal(t, []types.TimeString{"07:00", "08:00", "18:00", "19:00"}, rowTimes(g))
	assert.True(t, findRow(t, g, "19:00").Boundary)
	assert.False(t, findRow(t, g, "18:00").Boundary)
}

func TestBuild_GroupsTurmas(t *testing.T) {
	g := Build(domain.NewSnapshot(gridData()), "pilates", monday)

	cell := findRow(t, g, "18:00").Cells[0]
	assert.Equal(t, CellScheduled, cell.Status)
	require.Len(t, cell.Turmas, 2)

	ana := cell.Turmas[0]
	assert.Equal(t, "ana", ana.Key.InstructorID)
	assert.Len(t, ana.Slots, 2)
	assert.Equal(t, 2, ana.ActiveCount)
	assert.Equal(t, 4, ana.Capacity)
	assert.False(t, ana.IsFull)

	assert.Equal(t, "bia", cell.Turmas[1].Key.InstructorID)
}

func TestBuild_TurmaCapacityIsSharedByRows(t *testing.T) {
	data := domain.SnapshotData{
		ClassTypes: []*domain.ClassType{{ID: "pilates", DefaultCapacity: 5, SessionDurationMinutes: 60}},
		FixedSlots: []*domain.FixedSlot{
			{ID: "r1", ClassTypeID: "pilates", InstructorID: "i", DayOfWeek: 1, StartTime: "18:00", EndTime: "19:00"},
			{ID: "r2", ClassTypeID: "pilates", InstructorID: "i", DayOfWeek: 1, StartTime: "18:00", EndTime: "19:00"},
			{ID: "r3", ClassTypeID: "pilates", InstructorID: "i", DayOfWeek: 1, StartTime: "18:00", EndTime: "19:00"},
		},
	}
	for i, slotID := range []string{"r1", "r1", "r2", "r2", "r3"} {
		id := string(rune('a' + i))
		data.Students = append(data.Students, &domain.Student{ID: id})
		data.Enrollments = append(data.Enrollments, &domain.Enrollment{ID: "e" + id, FixedSlotID: slotID, StudentID: id})
	}

	g := Build(domain.NewSnapshot(data), "pilates", monday)

	cell := findRow(t, g, "18:00").Cells[0]
	require.Len(t, cell.Turmas, 1)
	turma := cell.Turmas[0]
	assert.Len(t, turma.Slots, 3)
	assert.Equal(t, 5, turma.Capacity)
	assert.Equal(t, 5, turma.ActiveCount)
	assert.True(t, turma.IsFull)
}

func TestBuild_AvailabilityAndLinkedConflict(t *testing.T) {
	g := Build(domain.NewSnapshot(gridData()), "pilates", monday)

	tuesday7 := findRow(t, g, "07:00").Cells[1]
	assert.Equal(t, CellAvailable, tuesday7.Status)
	assert.Nil(t, tuesday7.Conflict)

	tuesday8 := findRow(t, g, "08:00").Cells[1]
	assert.Equal(t, CellLinkedOccupied, tuesday8.Status)
	require.NotNil(t, tuesday8.Conflict)
	assert.Equal(t, "yoga", tuesday8.Conflict.By.ID)
}

func TestBuild_HolidayIsNonOperating(t *testing.T) {
	data := gridData()
	data.Holidays = []domain.Holiday{{Date: monday, Scope: domain.HolidayNational, Name: "Feriado"}}

	g := Build(domain.NewSnapshot(data), "pilates", monday)

	assert.False(t, g.Days[0].Visible)
	assert.Equal(t, ReasonNonOperating, g.Days[0].Reason)
	require.NotNil(t, g.Days[0].Holiday)
	// Остаются только строки вторника
	assert.Equal(t, []types.TimeString{"07:00", "08:00"}, rowTimes(g))
	assert.Equal(t, CellNonOperating, findRow(t, g, "07:00").Cells[0].Status)
}

func TestBuild_BlockedSlotsHideDay(t *testing.T) {
	data := gridData()
	data.Blocks = []*domain.SlotBlock{{ID: "b", ClassTypeID: "pilates", DayOfWeek: 1, Time: "18:00", Manual: true}}

	g := Build(domain.NewSnapshot(data), "pilates", monday)

	assert.False(t, g.Days[0].Visible)
	assert.Equal(t, ReasonBlocked, g.Days[0].Reason)
	assert.Equal(t, []types.TimeString{"07:00", "08:00"}, rowTimes(g))
}

func TestBuild_BlockedAvailabilityCell(t *testing.T) {
	data := gridData()
	data.Blocks = []*domain.SlotBlock{{ID: "b", ClassTypeID: "pilates", DayOfWeek: 2, Time: "07:00", Manual: true}}

	g := Build(domain.NewSnapshot(data), "pilates", monday)

	// 07:00 больше ничем не покрыта
	assert.NotContains(t, rowTimes(g), types.TimeString("07:00"))
	assert.Contains(t, rowTimes(g), types.TimeString("08:00"))
}

func TestBuild_CoveredContinuation(t *testing.T) {
	data := gridData()
	data.FixedSlots = append(data.FixedSlots, &domain.FixedSlot{
		ID: "long", ClassTypeID: "pilates", InstructorID: "ana", DayOfWeek: 3, StartTime: "17:30", EndTime: "19:00",
	})

	g := Build(domain.NewSnapshot(data), "pilates", monday)

	row := findRow(t, g, "18:00")
	assert.Equal(t, CellCovered, row.Cells[2].Status)
	assert.Equal(t, CellScheduled, findRow(t, g, "17:30").Cells[2].Status)
}

func TestBuild_UnknownClassType(t *testing.T) {
	g := Build(domain.NewSnapshot(gridData()), "nope", monday)

	assert.Len(t, g.Days, 7)
	assert.Empty(t, g.Rows)
}
