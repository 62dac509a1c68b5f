package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/namematch"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/enrollments"
	"github.com/m04kA/SMC-StudioSchedule/internal/testutil"
	importStudents "github.com/m04kA/SMC-StudioSchedule/internal/usecase/import_students"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
	"github.com/m04kA/SMC-StudioSchedule/pkg/metrics"
)

const sampleImport = `
students:
  - name: ana sousa
    slot: slot-pilates-wed-18
  - name: Zeca Pagodinho
    waitlisted: true
    note: indicação da Carla
`

func TestParseImportFile(t *testing.T) {
	entries, err := parseImportFile(strings.NewReader(sampleImport))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "ana sousa", entries[0].Name)
	assert.Equal(t, testutil.PilatesWed18, entries[0].Slot)
	assert.True(t, entries[1].Waitlisted)

	rows := previewRows(entries)
	assert.Equal(t, 1, rows[0].Line)
	assert.Equal(t, 2, rows[1].Line)

	_, err = parseImportFile(strings.NewReader(""))
	assert.ErrorIs(t, err, errEmptyImport)

	_, err = parseImportFile(strings.NewReader("students: []"))
	assert.ErrorIs(t, err, errEmptyImport)

	_, err = parseImportFile(strings.NewReader("students: [oops"))
	assert.Error(t, err)
}

func TestCommitRow(t *testing.T) {
	row := commitRow(3, importEntry{Name: "Ana", Slot: "slot-1", Note: "manhã"}, namematch.DecisionCreate, nil)

	assert.Equal(t, 3, row.Line)
	require.NotNil(t, row.FixedSlotID)
	assert.Equal(t, "slot-1", *row.FixedSlotID)
	require.NotNil(t, row.Note)
	assert.Equal(t, "manhã", *row.Note)

	row = commitRow(1, importEntry{Name: "Ana"}, namematch.DecisionSkip, nil)
	assert.Nil(t, row.FixedSlotID)
	assert.Nil(t, row.Note)
}

func TestParseAnswer(t *testing.T) {
	item := importStudents.PreviewItem{
		Suggested: namematch.DecisionConfirm,
		Alternatives: []namematch.Match{
			{Candidate: namematch.Candidate{ID: "st-1", Name: "Ana Souza"}, Score: 0.9},
			{Candidate: namematch.Candidate{ID: "st-4", Name: "Diego Alves"}, Score: 0.3},
		},
	}

	tests := []struct {
		name     string
		answer   string
		decision namematch.Decision
		chosenID string
		wantErr  bool
	}{
		{name: "enter accepts suggestion", answer: "", decision: namematch.DecisionConfirm},
		{name: "new student", answer: " N ", decision: namematch.DecisionCreate},
		{name: "skip", answer: "s", decision: namematch.DecisionSkip},
		{name: "choose second", answer: "2", decision: namematch.DecisionChoose, chosenID: "st-4"},
		{name: "out of range", answer: "3", wantErr: true},
		{name: "garbage", answer: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, chosenID, err := parseAnswer(item, tt.answer)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.decision, decision)
			if tt.chosenID == "" {
				assert.Nil(t, chosenID)
			} else {
				require.NotNil(t, chosenID)
				assert.Equal(t, tt.chosenID, *chosenID)
			}
		})
	}
}

func previewSample(t *testing.T) ([]importEntry, *importStudents.PreviewResponse) {
	t.Helper()

	store := testutil.Store()
	svc := enrollments.NewService(
		store.FixedSlots(),
		store.ClassTypes(),
		store.Students(),
		store.TxManager(),
		(*metrics.Metrics)(nil),
		logger.NewNop(),
	)
	uc := importStudents.NewUseCase(store.Students(), svc, store.TxManager(), logger.NewNop())

	entries, err := parseImportFile(strings.NewReader(sampleImport))
	require.NoError(t, err)

	preview, err := uc.Preview(context.Background(), &importStudents.PreviewRequest{
		Rows: previewRows(entries),
		Role: domain.RoleAdmin,
	})
	require.NoError(t, err)
	return entries, preview
}

func TestAskDecisions(t *testing.T) {
	entries, preview := previewSample(t)
	require.True(t, preview.Items[0].NeedsDecision)

	t.Run("prompts only ambiguous rows", func(t *testing.T) {
		var out bytes.Buffer
		rows, err := askDecisions(&out, strings.NewReader("what\ns\n"), entries, preview, false)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, namematch.DecisionSkip, rows[0].Decision)
		assert.Equal(t, namematch.DecisionCreate, rows[1].Decision)
		assert.True(t, rows[1].Waitlisted)
		assert.Contains(t, out.String(), "Ana Souza")
		assert.Contains(t, out.String(), `unknown answer "what"`)
	})

	t.Run("assume yes", func(t *testing.T) {
		rows, err := askDecisions(io.Discard, strings.NewReader(""), entries, preview, true)
		require.NoError(t, err)
		assert.Equal(t, namematch.DecisionConfirm, rows[0].Decision)
		require.NotNil(t, rows[0].FixedSlotID)
		assert.Equal(t, testutil.PilatesWed18, *rows[0].FixedSlotID)
	})

	t.Run("input ends before answer", func(t *testing.T) {
		_, err := askDecisions(io.Discard, strings.NewReader(""), entries, preview, false)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestPrintCommitResult(t *testing.T) {
	var out bytes.Buffer
	printCommitResult(&out, &importStudents.CommitResponse{
		Results: []importStudents.RowResult{
			{Line: 1, Name: "Ana Souza", Outcome: importStudents.OutcomeMatched, StudentID: "st-1", AlreadyEnrolled: true},
			{Line: 2, Name: "Zeca", Outcome: importStudents.OutcomeFailed, Error: "slot is full"},
		},
		Matched: 1,
		Failed:  1,
	})

	assert.Contains(t, out.String(), "#1 Ana Souza: matched st-1 (already enrolled)")
	assert.Contains(t, out.String(), "#2 Zeca: failed: slot is full")
	assert.Contains(t, out.String(), "created=0 matched=1 skipped=0 failed=1")
}
