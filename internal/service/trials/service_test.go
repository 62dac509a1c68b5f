package trials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/testutil"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
	"github.com/m04kA/SMC-StudioSchedule/pkg/ptr"
)

func seedTrial(status domain.TrialStatus) domain.SnapshotData {
	return domain.SnapshotData{Trials: []*domain.TrialBooking{{
		ID:           "tr-1",
		FixedSlotID:  testutil.PilatesWed18,
		Date:         testutil.Wednesday,
		ContactName:  "Visitante",
		ContactPhone: "+55 11 90000-0000",
		Status:       status,
	}}}
}

func TestSetStatus(t *testing.T) {
	tests := []struct {
		name     string
		from     domain.TrialStatus
		to       domain.TrialStatus
		attended *bool
		role     domain.Role
		wantErr  error
	}{
		{name: "approve", from: domain.TrialScheduled, to: domain.TrialApproved, role: domain.RoleReceptionist},
		{name: "cancel scheduled", from: domain.TrialScheduled, to: domain.TrialCancelled, role: domain.RoleAdmin},
		{name: "cancel approved", from: domain.TrialApproved, to: domain.TrialCancelled, role: domain.RoleAdmin},
		{name: "mark attendance", from: domain.TrialApproved, to: domain.TrialApproved, attended: ptr.Ptr(true), role: domain.RoleInstructor},
		{name: "revive cancelled", from: domain.TrialCancelled, to: domain.TrialScheduled, role: domain.RoleAdmin, wantErr: domain.ErrInvalidStateTransition},
		{name: "same status without attendance", from: domain.TrialApproved, to: domain.TrialApproved, role: domain.RoleAdmin, wantErr: domain.ErrInvalidStateTransition},
		{name: "unknown status", from: domain.TrialScheduled, to: "done", role: domain.RoleAdmin, wantErr: domain.ErrValidation},
		{name: "student", from: domain.TrialScheduled, to: domain.TrialApproved, role: domain.RoleStudent, wantErr: domain.ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.Store(seedTrial(tt.from))
			svc := NewService(store.Bookings(), store.TxManager(), logger.NewNop()).
				WithTimeProvider(testutil.Clock{T: testutil.Today})

			got, err := svc.SetStatus(context.Background(), &SetStatusRequest{
				TrialID:  "tr-1",
				Status:   tt.to,
				Attended: tt.attended,
				Role:     tt.role,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Status)

			stored, err := store.Bookings().GetTrialBooking(context.Background(), "tr-1")
			require.NoError(t, err)
			assert.Equal(t, tt.to, stored.Status)
			assert.Equal(t, tt.attended, stored.Attended)
		})
	}
}

func TestSetStatus_NotFound(t *testing.T) {
	store := testutil.Store()
	svc := NewService(store.Bookings(), store.TxManager(), logger.NewNop())

	_, err := svc.SetStatus(context.Background(), &SetStatusRequest{TrialID: "nope", Status: domain.TrialApproved, Role: domain.RoleAdmin})
	assert.ErrorIs(t, err, ErrTrialNotFound)
}
