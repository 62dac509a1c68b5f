package get_makeup_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/makeup"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-StudioSchedule/internal/testutil"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
)

var tuesday = testutil.Monday.AddDate(0, 0, 1)

func newUseCase(store *memstore.Store, now time.Time) *UseCase {
	return NewUseCase(testutil.Loader(store), store.TxManager(), logger.NewNop()).
		WithTimeProvider(testutil.Clock{T: now})
}

func mondaySession() domain.SnapshotData {
	return domain.SnapshotData{Sessions: []*domain.SessionRecord{{
		ID:          "sess-mon",
		FixedSlotID: testutil.PilatesMon18,
		Date:        testutil.Monday,
		Entries: []domain.AttendanceEntry{
			{StudentRef: "st-1", Present: false},
			{StudentRef: "st-2", Present: false},
			{StudentRef: "st-3", Present: true},
		},
	}}}
}

func makeupFrom(id, studentID string, status domain.RescheduleStatus) domain.SnapshotData {
	return domain.SnapshotData{Reschedules: []*domain.RescheduleRequest{{
		ID:                id,
		StudentID:         studentID,
		OriginSlotID:      testutil.PilatesMon18,
		OriginDate:        testutil.Monday,
		DestinationSlotID: testutil.PilatesWed18,
		DestinationDate:   testutil.Wednesday,
		Status:            status,
		IsMakeup:          true,
		RequestedBy:       testutil.Student,
	}}}
}

func TestExecute_OpenAbsenceWithSuggestions(t *testing.T) {
	store := testutil.Store(mondaySession())

	resp, err := newUseCase(store, tuesday).Execute(context.Background(), &Request{StudentID: "st-1", WithSuggestions: true})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	item := resp.Items[0]
	assert.Equal(t, makeup.StatusOpen, item.Status)
	assert.Equal(t, testutil.Monday.AddDate(0, 0, 7), item.Deadline)
	assert.False(t, item.IsExpired)
	assert.False(t, item.HasMakeupRequest)

	require.Len(t, item.Suggestions, 1)
	assert.Equal(t, testutil.PilatesWed18, item.Suggestions[0].FixedSlotID)
	assert.Equal(t, testutil.Wednesday, item.Suggestions[0].Date)
	assert.Equal(t, 4, item.Suggestions[0].AvailableSpots)
}

func TestExecute_Statuses(t *testing.T) {
	store := testutil.Store(
		mondaySession(),
		makeupFrom("rr-1", "st-1", domain.RescheduleApproved),
		makeupFrom("rr-2", "st-2", domain.ReschedulePending),
	)

	resp, err := newUseCase(store, tuesday).Execute(context.Background(), &Request{FixedSlotID: testutil.PilatesMon18})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	assert.Equal(t, "st-1", resp.Items[0].Absence.StudentID)
	assert.Equal(t, makeup.StatusScheduled, resp.Items[0].Status)
	require.NotNil(t, resp.Items[0].MakeupRequest)
	assert.Equal(t, "rr-1", resp.Items[0].MakeupRequest.ID)

	assert.Equal(t, "st-2", resp.Items[1].Absence.StudentID)
	assert.Equal(t, makeup.StatusPending, resp.Items[1].Status)
	assert.Empty(t, resp.Items[1].Suggestions)
}

func TestExecute_Expiry(t *testing.T) {
	store := testutil.Store(mondaySession())
	req := &Request{StudentID: "st-1", WithSuggestions: true}

	onDeadline, err := newUseCase(store, testutil.Monday.AddDate(0, 0, 7)).Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, onDeadline.Items, 1)
	assert.False(t, onDeadline.Items[0].IsExpired)

	after, err := newUseCase(store, testutil.Monday.AddDate(0, 0, 8)).Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, after.Items, 1)
	assert.True(t, after.Items[0].IsExpired)
	assert.Equal(t, makeup.StatusExpired, after.Items[0].Status)
	assert.Empty(t, after.Items[0].Suggestions)
}

func TestExecute_RangeAndValidation(t *testing.T) {
	store := testutil.Store(mondaySession())
	uc := newUseCase(store, tuesday)
	ctx := context.Background()

	from := testutil.Monday.AddDate(0, 0, 1)
	resp, err := uc.Execute(ctx, &Request{StudentID: "st-1", From: &from})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)

	_, err = uc.Execute(ctx, &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	to := testutil.Monday.AddDate(0, 0, -1)
	_, err = uc.Execute(ctx, &Request{StudentID: "st-1", To: &to, From: &testutil.Monday})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
