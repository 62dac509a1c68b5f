package cancel_reschedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/memstore"
	rescheduleRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/reschedule"
	"github.com/m04kA/SMC-StudioSchedule/internal/testutil"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
	"github.com/m04kA/SMC-StudioSchedule/pkg/metrics"
)

func newUseCase(store *memstore.Store, now time.Time) *UseCase {
	return NewUseCase(
		store.Reschedules(),
		store.Sessions(),
		testutil.Loader(store),
		store.Locker(),
		store.TxManager(),
		(*metrics.Metrics)(nil),
		logger.NewNop(),
	).WithTimeProvider(testutil.Clock{T: now})
}

func request(id string, status domain.RescheduleStatus) *domain.RescheduleRequest {
	return &domain.RescheduleRequest{
		ID:                id,
		StudentID:         "st-1",
		OriginSlotID:      testutil.PilatesMon18,
		OriginDate:        testutil.Monday,
		DestinationSlotID: testutil.PilatesWed18,
		DestinationDate:   testutil.Wednesday,
		Status:            status,
		RequestedBy:       testutil.Student,
	}
}

func byStudent(id string) *Request {
	return &Request{RequestID: id, ActorID: testutil.Student, Role: domain.RoleStudent}
}

func byAdmin(id string) *Request {
	return &Request{RequestID: id, ActorID: testutil.Admin, Role: domain.RoleAdmin}
}

func occupancy(t *testing.T, store *memstore.Store, slotID string, date time.Time) roster.Occupancy {
	t.Helper()
	occ := domain.NewOccurrence(slotID, date)
	snap, err := testutil.Loader(store).ForOccurrences(context.Background(), occ)
	require.NoError(t, err)
	return roster.Resolve(snap, slotID, date)
}

func TestExecute_PendingIsDeleted(t *testing.T) {
	store := testutil.Store(domain.SnapshotData{Reschedules: []*domain.RescheduleRequest{request("rr-1", domain.ReschedulePending)}})

	resp, err := newUseCase(store, testutil.Today).Execute(context.Background(), byStudent("rr-1"))
	require.NoError(t, err)
	assert.True(t, resp.Deleted)

	_, err = store.Reschedules().GetByID(context.Background(), "rr-1")
	assert.ErrorIs(t, err, rescheduleRepo.ErrRescheduleNotFound)
}

func TestExecute_ApprovedIsCancelled(t *testing.T) {
	store := testutil.Store(domain.SnapshotData{Reschedules: []*domain.RescheduleRequest{request("rr-1", domain.RescheduleApproved)}})
	ctx := context.Background()

	require.Equal(t, 4, occupancy(t, store, testutil.PilatesMon18, testutil.Monday).ActiveCount)

	resp, err := newUseCase(store, testutil.Today).Execute(ctx, byAdmin("rr-1"))
	require.NoError(t, err)
	assert.False(t, resp.Deleted)
	assert.Equal(t, domain.RescheduleCancelled, resp.Request.Status)

	stored, err := store.Reschedules().GetByID(ctx, "rr-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RescheduleCancelled, stored.Status)

	// Ученик вернулся в исходное занятие на освободившееся место
	origin := occupancy(t, store, testutil.PilatesMon18, testutil.Monday)
	assert.True(t, origin.Has("st-1"))
	assert.Equal(t, 5, origin.ActiveCount)

	// Повторная отмена уже невозможна
	_, err = newUseCase(store, testutil.Today).Execute(ctx, byStudent("rr-1"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecute_Rejections(t *testing.T) {
	settled := domain.SnapshotData{Sessions: []*domain.SessionRecord{{
		ID:          "sess-wed",
		FixedSlotID: testutil.PilatesWed18,
		Date:        testutil.Wednesday,
	}}}

	tests := []struct {
		name   string
		status domain.RescheduleStatus
		makeup bool
		extra  domain.SnapshotData
		req    *Request
		now    time.Time
		want   error
	}{
		{
			name:   "rejected is terminal",
			status: domain.RescheduleRejected,
			req:    byStudent("rr-1"),
			now:    testutil.Today,
			want:   ErrInvalidTransition,
		},
		{
			name:   "another student",
			status: domain.ReschedulePending,
			req:    &Request{RequestID: "rr-1", ActorID: "user-other", Role: domain.RoleStudent},
			now:    testutil.Today,
			want:   ErrAccessDenied,
		},
		{
			name:   "destination passed",
			status: domain.RescheduleApproved,
			req:    byStudent("rr-1"),
			now:    testutil.Wednesday.AddDate(0, 0, 1),
			want:   ErrDatePassed,
		},
		{
			name:   "origin passed",
			status: domain.RescheduleApproved,
			req:    byStudent("rr-1"),
			now:    testutil.Monday.AddDate(0, 0, 1),
			want:   ErrDatePassed,
		},
		{
			name:   "destination settled",
			status: domain.RescheduleApproved,
			makeup: true,
			extra:  settled,
			req:    byStudent("rr-1"),
			now:    testutil.Wednesday.Add(20 * time.Hour),
			want:   ErrAlreadySettled,
		},
		{
			name:   "unknown request",
			status: domain.ReschedulePending,
			req:    byStudent("missing"),
			now:    testutil.Today,
			want:   ErrRequestNotFound,
		},
		{
			name:   "missing actor",
			status: domain.ReschedulePending,
			req:    &Request{RequestID: "rr-1", Role: domain.RoleStudent},
			now:    testutil.Today,
			want:   ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := request("rr-1", tt.status)
			rr.IsMakeup = tt.makeup
			store := testutil.Store(domain.SnapshotData{Reschedules: []*domain.RescheduleRequest{rr}}, tt.extra)

			_, err := newUseCase(store, tt.now).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)

			stored, err := store.Reschedules().GetByID(context.Background(), "rr-1")
			require.NoError(t, err)
			assert.Equal(t, tt.status, stored.Status)
		})
	}
}

func TestExecute_ApprovedCancelKeepsOriginCapacity(t *testing.T) {
	ctx := context.Background()
	guest := domain.SnapshotData{Trials: []*domain.TrialBooking{{
		ID:           "tr-1",
		FixedSlotID:  testutil.PilatesMon18,
		Date:         testutil.Monday,
		ContactName:  "Helena Prado",
		ContactPhone: "11 99999-0000",
		Status:       domain.TrialScheduled,
	}}}

	t.Run("origin taken by a trial", func(t *testing.T) {
		store := testutil.Store(domain.SnapshotData{Reschedules: []*domain.RescheduleRequest{request("rr-1", domain.RescheduleApproved)}}, guest)
		before := occupancy(t, store, testutil.PilatesMon18, testutil.Monday)
		require.Equal(t, 5, before.ActiveCount)
		require.True(t, before.IsFull)

		_, err := newUseCase(store, testutil.Today).Execute(ctx, byAdmin("rr-1"))
		assert.ErrorIs(t, err, ErrOriginFull)
		assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

		stored, err := store.Reschedules().GetByID(ctx, "rr-1")
		require.NoError(t, err)
		assert.Equal(t, domain.RescheduleApproved, stored.Status)

		after := occupancy(t, store, testutil.PilatesMon18, testutil.Monday)
		assert.Equal(t, 5, after.ActiveCount)
		assert.False(t, after.Has("st-1"))
	})

	t.Run("makeup does not return to origin", func(t *testing.T) {
		rr := request("rr-1", domain.RescheduleApproved)
		rr.IsMakeup = true
		store := testutil.Store(domain.SnapshotData{Reschedules: []*domain.RescheduleRequest{rr}}, guest)

		resp, err := newUseCase(store, testutil.Monday.AddDate(0, 0, 1)).Execute(ctx, byAdmin("rr-1"))
		require.NoError(t, err)
		assert.Equal(t, domain.RescheduleCancelled, resp.Request.Status)
	})
}
