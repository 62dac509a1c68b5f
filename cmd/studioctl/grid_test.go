package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/engine/grid"
	"github.com/m04kA/SMC-StudioSchedule/internal/testutil"
	buildWeekGrid "github.com/m04kA/SMC-StudioSchedule/internal/usecase/build_week_grid"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
)

func TestRenderGrid(t *testing.T) {
	store := testutil.Store()
	uc := buildWeekGrid.NewUseCase(testutil.Loader(store), store.TxManager(), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &buildWeekGrid.Request{
		ClassTypeID: testutil.Pilates,
		Week:        testutil.Wednesday,
	})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, renderGrid(&out, resp))

	text := out.String()
	assert.Contains(t, text, "Pilates, week of 2025-06-02")
	assert.Contains(t, text, "Mon 02/06")
	assert.Contains(t, text, "5/5!")
	assert.Contains(t, text, "1/5")
}

func TestCellText(t *testing.T) {
	full := grid.Cell{
		Status: grid.CellScheduled,
		Turmas: []grid.Turma{{ActiveCount: 5, Capacity: 5, IsFull: true}, {ActiveCount: 2, Capacity: 8}},
	}
	assert.Equal(t, "5/5! 2/8", cellText(full))

	assert.Equal(t, "+", cellText(grid.Cell{Status: grid.CellAvailable}))
	assert.Equal(t, "x", cellText(grid.Cell{Status: grid.CellLinkedOccupied}))
	assert.Equal(t, "#", cellText(grid.Cell{Status: grid.CellBlocked}))
	assert.Equal(t, "-", cellText(grid.Cell{Status: grid.CellNonOperating}))
	assert.Equal(t, ".", cellText(grid.Cell{Status: grid.CellEmpty}))
}
