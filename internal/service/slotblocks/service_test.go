package slotblocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/testutil"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
)

func TestToggle(t *testing.T) {
	store := testutil.Store()
	svc := NewService(store.ClassTypes(), logger.NewNop())
	ctx := context.Background()
	req := &ToggleRequest{ClassTypeID: testutil.Pilates, DayOfWeek: 1, Time: "18:00", Role: domain.RoleInstructor}

	got, err := svc.Toggle(ctx, req)
	require.NoError(t, err)
	assert.True(t, got.Blocked)
	require.NotNil(t, got.Block)
	assert.True(t, got.Block.Manual)

	got, err = svc.Toggle(ctx, req)
	require.NoError(t, err)
	assert.False(t, got.Blocked)

	blocks, err := store.ClassTypes().ListSlotBlocks(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestToggle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     ToggleRequest
		wantErr error
	}{
		{"bad day", ToggleRequest{ClassTypeID: testutil.Pilates, DayOfWeek: 7, Time: "18:00", Role: domain.RoleAdmin}, domain.ErrValidation},
		{"bad time", ToggleRequest{ClassTypeID: testutil.Pilates, DayOfWeek: 1, Time: "25:00", Role: domain.RoleAdmin}, domain.ErrValidation},
		{"student", ToggleRequest{ClassTypeID: testutil.Pilates, DayOfWeek: 1, Time: "18:00", Role: domain.RoleStudent}, domain.ErrAccessDenied},
		{"unknown class type", ToggleRequest{ClassTypeID: "nope", DayOfWeek: 1, Time: "18:00", Role: domain.RoleAdmin}, ErrClassTypeNotFound},
	}

	svc := NewService(testutil.Store().ClassTypes(), logger.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := svc.Toggle(context.Background(), &req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
