package use_credit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-StudioSchedule/internal/testutil"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
	"github.com/m04kA/SMC-StudioSchedule/pkg/metrics"
)

func newUseCase(store *memstore.Store, now time.Time) *UseCase {
	return NewUseCase(
		store.Bookings(),
		testutil.Loader(store),
		store.Locker(),
		store.TxManager(),
		(*metrics.Metrics)(nil),
		logger.NewNop(),
	).WithTimeProvider(testutil.Clock{T: now})
}

func credit(studentID, slotID string, date time.Time) *Request {
	return &Request{
		StudentID:   studentID,
		FixedSlotID: slotID,
		Date:        date,
		CreditRef:   "pack-10/3",
		Role:        domain.RoleReceptionist,
	}
}

func TestExecute_AddsCreditAttendee(t *testing.T) {
	store := testutil.Store()

	resp, err := newUseCase(store, testutil.Today).Execute(context.Background(), credit("st-7", testutil.PilatesWed18, testutil.Wednesday))
	require.NoError(t, err)

	assert.Equal(t, "st-7", resp.Credit.StudentID)
	assert.Equal(t, 2, resp.Occupancy.ActiveCount)
	require.True(t, resp.Occupancy.Has("st-7"))
	for _, a := range resp.Occupancy.Attendees {
		if a.StudentID == "st-7" {
			assert.Equal(t, roster.FromCredit, a.Provenance)
		}
	}
}

func TestExecute_Rejections(t *testing.T) {
	waitlisted := domain.SnapshotData{Students: []*domain.Student{{ID: "st-wait", Name: "Igor", Waitlisted: true}}}

	tests := []struct {
		name string
		req  *Request
		want error
	}{
		{"full occurrence", credit("st-7", testutil.PilatesMon18, testutil.Monday), ErrSlotFull},
		{"already enrolled", credit("st-6", testutil.PilatesWed18, testutil.Wednesday), ErrAlreadyAttending},
		{"unknown student", credit("missing", testutil.PilatesWed18, testutil.Wednesday), ErrStudentNotFound},
		{"waitlisted student", credit("st-wait", testutil.PilatesWed18, testutil.Wednesday), ErrStudentNotEligible},
		{"wrong weekday", credit("st-7", testutil.PilatesWed18, testutil.Monday), ErrNotAnOccurrence},
		{"unknown slot", credit("st-7", "missing", testutil.Monday), ErrSlotNotFound},
		{"missing credit", &Request{StudentID: "st-7", FixedSlotID: testutil.PilatesWed18, Date: testutil.Wednesday, Role: domain.RoleAdmin}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.Store(waitlisted)
			_, err := newUseCase(store, testutil.Today).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExecute_SecondCreditForSameOccurrence(t *testing.T) {
	store := testutil.Store()
	uc := newUseCase(store, testutil.Today)
	ctx := context.Background()

	_, err := uc.Execute(ctx, credit("st-7", testutil.PilatesWed18, testutil.Wednesday))
	require.NoError(t, err)

	_, err = uc.Execute(ctx, credit("st-7", testutil.PilatesWed18, testutil.Wednesday))
	assert.ErrorIs(t, err, ErrAlreadyAttending)

	list, err := store.Bookings().ListCreditUsages(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
