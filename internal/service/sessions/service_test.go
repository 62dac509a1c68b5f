package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-StudioSchedule/internal/testutil"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
)

var afterMonday = testutil.Clock{T: testutil.Monday.Add(20 * time.Hour)}

func newService(store *memstore.Store) *Service {
	return NewService(
		store.Sessions(),
		testutil.Loader(store),
		store.Locker(),
		store.TxManager(),
		logger.NewNop(),
	).WithTimeProvider(afterMonday)
}

func TestFinalize_CreateThenCorrect(t *testing.T) {
	store := testutil.Store()
	svc := newService(store)
	ctx := context.Background()

	resp, err := svc.Finalize(ctx, &FinalizeRequest{
		FixedSlotID: testutil.PilatesMon18,
		Date:        testutil.Monday,
		Entries: []Entry{
			{StudentRef: "st-1", Present: true},
			{StudentRef: "st-2", Present: false},
			{StudentRef: "st-3", Present: true},
		},
		Role: domain.RoleInstructor,
	})
	require.NoError(t, err)
	assert.False(t, resp.Corrected)
	assert.Equal(t, 2, resp.Record.PresentCount)
	assert.Equal(t, 1, resp.Record.AbsentCount)
	id := resp.Record.ID

	resp, err = svc.Finalize(ctx, &FinalizeRequest{
		FixedSlotID: testutil.PilatesMon18,
		Date:        testutil.Monday,
		Entries: []Entry{
			{StudentRef: "st-1", Present: true},
			{StudentRef: "st-2", Present: true},
		},
		Role: domain.RoleInstructor,
	})
	require.NoError(t, err)
	assert.True(t, resp.Corrected)
	assert.Equal(t, id, resp.Record.ID)
	assert.Equal(t, 2, resp.Record.PresentCount)
	assert.Equal(t, 0, resp.Record.AbsentCount)

	stored, err := store.Sessions().Get(ctx, testutil.PilatesMon18, testutil.Monday)
	require.NoError(t, err)
	assert.Len(t, stored.Entries, 2)
}

func TestFinalize_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     FinalizeRequest
		wantErr error
	}{
		{
			name: "ref not in roster",
			req: FinalizeRequest{FixedSlotID: testutil.PilatesMon18, Date: testutil.Monday,
				Entries: []Entry{{StudentRef: "st-6", Present: true}}, Role: domain.RoleAdmin},
			wantErr: ErrUnknownAttendee,
		},
		{
			name: "duplicate ref",
			req: FinalizeRequest{FixedSlotID: testutil.PilatesMon18, Date: testutil.Monday,
				Entries: []Entry{{StudentRef: "st-1"}, {StudentRef: "st-1"}}, Role: domain.RoleAdmin},
			wantErr: ErrDuplicateEntry,
		},
		{
			name:    "future date",
			req:     FinalizeRequest{FixedSlotID: testutil.PilatesMon18, Date: testutil.Monday.AddDate(0, 0, 1), Role: domain.RoleAdmin},
			wantErr: ErrFutureSession,
		},
		{
			name:    "not an occurrence",
			req:     FinalizeRequest{FixedSlotID: testutil.PilatesWed18, Date: testutil.Monday, Role: domain.RoleAdmin},
			wantErr: ErrNotAnOccurrence,
		},
		{
			name:    "unknown slot",
			req:     FinalizeRequest{FixedSlotID: "nope", Date: testutil.Monday, Role: domain.RoleAdmin},
			wantErr: ErrSlotNotFound,
		},
		{
			name:    "student role",
			req:     FinalizeRequest{FixedSlotID: testutil.PilatesMon18, Date: testutil.Monday, Role: domain.RoleStudent},
			wantErr: domain.ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(testutil.Store())
			req := tt.req
			_, err := svc.Finalize(context.Background(), &req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFinalize_RescheduledAttendeeUsesRequestRef(t *testing.T) {
	store := testutil.Store(domain.SnapshotData{Reschedules: []*domain.RescheduleRequest{{
		ID:                "rq-1",
		StudentID:         "st-6",
		OriginSlotID:      testutil.PilatesWed18,
		OriginDate:        testutil.Wednesday.AddDate(0, 0, -7),
		DestinationSlotID: testutil.FuncionalMon19,
		DestinationDate:   testutil.Monday,
		DestinationStart:  "19:00",
		DestinationEnd:    "20:00",
		Status:            domain.RescheduleApproved,
		RequestedBy:       testutil.Admin,
	}}})
	svc := newService(store)

	resp, err := svc.Finalize(context.Background(), &FinalizeRequest{
		FixedSlotID: testutil.FuncionalMon19,
		Date:        testutil.Monday,
		Entries:     []Entry{{StudentRef: "rq-1", Present: false}},
		Role:        domain.RoleInstructor,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Record.AbsentCount)
}
