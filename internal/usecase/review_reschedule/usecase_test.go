package review_reschedule

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-StudioSchedule/internal/testutil"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
	"github.com/m04kA/SMC-StudioSchedule/pkg/metrics"
	"github.com/m04kA/SMC-StudioSchedule/pkg/ptr"
)

// smallWed слот по средам 20:00-21:00 на два места, одно занято st-7
const smallWed = "slot-pilates-wed-20"

func newUseCase(store *memstore.Store, now time.Time) *UseCase {
	return NewUseCase(
		store.Reschedules(),
		testutil.Loader(store),
		store.Locker(),
		store.TxManager(),
		(*metrics.Metrics)(nil),
		logger.NewNop(),
	).WithTimeProvider(testutil.Clock{T: now})
}

func pending(id, studentID string) *domain.RescheduleRequest {
	return &domain.RescheduleRequest{
		ID:                 id,
		StudentID:          studentID,
		OriginEnrollmentID: ptr.Ptr("en-" + studentID),
		OriginSlotID:       testutil.PilatesMon18,
		OriginDate:         testutil.Monday,
		DestinationSlotID:  smallWed,
		DestinationDate:    testutil.Wednesday,
		DestinationStart:   "20:00",
		DestinationEnd:     "21:00",
		Status:             domain.ReschedulePending,
		RequestedBy:        testutil.Student,
	}
}

func fixture(requests ...*domain.RescheduleRequest) *memstore.Store {
	return testutil.Store(domain.SnapshotData{
		FixedSlots: []*domain.FixedSlot{{
			ID:               smallWed,
			ClassTypeID:      testutil.Pilates,
			InstructorID:     testutil.InstructorAna,
			DayOfWeek:        3,
			StartTime:        "20:00",
			EndTime:          "21:00",
			CapacityOverride: ptr.Ptr(2),
		}},
		Enrollments: []*domain.Enrollment{{ID: "en-st-7-wed", FixedSlotID: smallWed, StudentID: "st-7"}},
		Reschedules: requests,
	})
}

func approve(id string) *Request {
	return &Request{RequestID: id, Action: ActionApprove, ReviewerID: testutil.Admin, Role: domain.RoleAdmin}
}

func TestExecute_Approve(t *testing.T) {
	store := fixture(pending("rr-1", "st-1"))
	uc := newUseCase(store, testutil.Today)

	resp, err := uc.Execute(context.Background(), approve("rr-1"))
	require.NoError(t, err)

	assert.Equal(t, domain.RescheduleApproved, resp.Request.Status)
	assert.Equal(t, 2, resp.Destination.ActiveCount)
	assert.True(t, resp.Destination.IsFull)

	stored, err := store.Reschedules().GetByID(context.Background(), "rr-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RescheduleApproved, stored.Status)
	require.NotNil(t, stored.ReviewedBy)
	assert.Equal(t, testutil.Admin, *stored.ReviewedBy)
}

func TestExecute_RejectIsTerminal(t *testing.T) {
	store := fixture(pending("rr-1", "st-1"))
	uc := newUseCase(store, testutil.Today)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, &Request{RequestID: "rr-1", Action: ActionReject, ReviewerID: testutil.Admin, Role: domain.RoleReceptionist})
	require.NoError(t, err)
	assert.Equal(t, domain.RescheduleRejected, resp.Request.Status)
	assert.Equal(t, 1, resp.Destination.ActiveCount)

	_, err = uc.Execute(ctx, approve("rr-1"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
		now  time.Time
		want error
	}{
		{
			name: "student role",
			req:  &Request{RequestID: "rr-1", Action: ActionApprove, ReviewerID: testutil.Student, Role: domain.RoleStudent},
			now:  testutil.Today,
			want: ErrAccessDenied,
		},
		{
			name: "unknown action",
			req:  &Request{RequestID: "rr-1", Action: "maybe", ReviewerID: testutil.Admin, Role: domain.RoleAdmin},
			now:  testutil.Today,
			want: ErrInvalidInput,
		},
		{
			name: "unknown request",
			req:  approve("missing"),
			now:  testutil.Today,
			want: ErrRequestNotFound,
		},
		{
			name: "destination passed",
			req:  approve("rr-1"),
			now:  testutil.Wednesday.AddDate(0, 0, 1),
			want: ErrDestinationPassed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := fixture(pending("rr-1", "st-1"))
			_, err := newUseCase(store, tt.now).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)

			stored, err := store.Reschedules().GetByID(context.Background(), "rr-1")
			require.NoError(t, err)
			assert.Equal(t, domain.ReschedulePending, stored.Status)
		})
	}
}

func TestExecute_SecondApprovalExceedsCapacity(t *testing.T) {
	store := fixture(pending("rr-1", "st-1"), pending("rr-2", "st-2"))
	uc := newUseCase(store, testutil.Today)
	ctx := context.Background()

	_, err := uc.Execute(ctx, approve("rr-1"))
	require.NoError(t, err)

	_, err = uc.Execute(ctx, approve("rr-2"))
	assert.ErrorIs(t, err, ErrDestinationFull)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	stored, err := store.Reschedules().GetByID(ctx, "rr-2")
	require.NoError(t, err)
	assert.Equal(t, domain.ReschedulePending, stored.Status)
}

func TestExecute_ConcurrentApprovalsIntoLastSeat(t *testing.T) {
	store := fixture(pending("rr-1", "st-1"), pending("rr-2", "st-2"))
	uc := newUseCase(store, testutil.Today)

	ids := []string{"rr-1", "rr-2"}
	errs := make([]error, len(ids))
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			<-start
			_, errs[i] = uc.Execute(context.Background(), approve(id))
		}(i, id)
	}
	close(start)
	wg.Wait()

	succeeded, full := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrDestinationFull):
			full++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, full)

	list, err := store.Reschedules().List(context.Background(), nil)
	require.NoError(t, err)
	approved := 0
	for _, r := range list {
		if r.IsApproved() {
			approved++
		}
	}
	assert.Equal(t, 1, approved)
}
