package resolve_occupancy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-StudioSchedule/internal/testutil"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
)

func newUseCase(store *memstore.Store, hs ...domain.Holiday) *UseCase {
	return NewUseCase(testutil.Loader(store, hs...), store.TxManager(), logger.NewNop())
}

func approvedMove(id, studentID string) domain.SnapshotData {
	enrollmentID := "en-" + studentID
	return domain.SnapshotData{Reschedules: []*domain.RescheduleRequest{{
		ID:                 id,
		StudentID:          studentID,
		OriginEnrollmentID: &enrollmentID,
		OriginSlotID:       testutil.PilatesMon18,
		OriginDate:         testutil.Monday,
		DestinationSlotID:  testutil.PilatesWed18,
		DestinationDate:    testutil.Wednesday,
		DestinationStart:   "18:00",
		DestinationEnd:     "19:00",
		Status:             domain.RescheduleApproved,
		RequestedBy:        testutil.Admin,
	}}}
}

func TestExecute_Baseline(t *testing.T) {
	uc := newUseCase(testutil.Store())

	resp, err := uc.Execute(context.Background(), &Request{FixedSlotID: testutil.PilatesMon18, Date: testutil.Monday})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.ActiveCount)
	assert.Equal(t, 5, resp.Capacity)
	assert.Equal(t, 0, resp.AvailableSpots)
	assert.True(t, resp.IsFull)
	assert.Equal(t, testutil.Pilates, resp.ClassTypeID)
	assert.Equal(t, testutil.InstructorAna, resp.InstructorID)
	assert.Len(t, resp.Attendees, 5)
	assert.False(t, resp.NonOperating)
}

func TestExecute_ApprovedRescheduleMovesSeat(t *testing.T) {
	uc := newUseCase(testutil.Store(approvedMove("rr-1", "st-1")))
	ctx := context.Background()

	origin, err := uc.Execute(ctx, &Request{FixedSlotID: testutil.PilatesMon18, Date: testutil.Monday})
	require.NoError(t, err)
	assert.Equal(t, 4, origin.ActiveCount)
	assert.False(t, origin.IsFull)

	dest, err := uc.Execute(ctx, &Request{FixedSlotID: testutil.PilatesWed18, Date: testutil.Wednesday})
	require.NoError(t, err)
	assert.Equal(t, 2, dest.ActiveCount)

	var incoming *roster.Attendee
	for i := range dest.Attendees {
		if dest.Attendees[i].StudentID == "st-1" {
			incoming = &dest.Attendees[i]
		}
	}
	require.NotNil(t, incoming)
	assert.Equal(t, roster.FromReschedule, incoming.Provenance)
	assert.Equal(t, "rr-1", incoming.RequestID)
}

func TestExecute_IsIdempotent(t *testing.T) {
	uc := newUseCase(testutil.Store(approvedMove("rr-1", "st-1")))
	req := &Request{FixedSlotID: testutil.PilatesMon18, Date: testutil.Monday}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_UnknownSlot(t *testing.T) {
	uc := newUseCase(testutil.Store())

	resp, err := uc.Execute(context.Background(), &Request{FixedSlotID: "missing", Date: testutil.Monday})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Capacity)
	assert.True(t, resp.IsFull)
	assert.Empty(t, resp.Attendees)
}

func TestExecute_Holiday(t *testing.T) {
	uc := newUseCase(testutil.Store(), domain.Holiday{Date: testutil.Monday, Scope: domain.HolidayNational, Name: "Feriado"})

	resp, err := uc.Execute(context.Background(), &Request{FixedSlotID: testutil.PilatesMon18, Date: testutil.Monday})
	require.NoError(t, err)

	assert.True(t, resp.NonOperating)
	assert.Equal(t, "Feriado", resp.HolidayName)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(testutil.Store())

	_, err := uc.Execute(context.Background(), &Request{Date: testutil.Monday})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
