package create_fixed_slot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-StudioSchedule/internal/testutil"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
	"github.com/m04kA/SMC-StudioSchedule/pkg/ptr"
	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

func newUseCase(store *memstore.Store) *UseCase {
	return NewUseCase(store.FixedSlots(), testutil.Loader(store), store.TxManager(), logger.NewNop())
}

func slot(ct string, day int, start, end types.TimeString) *Request {
	return &Request{
		ClassTypeID:  ct,
		InstructorID: testutil.InstructorAna,
		DayOfWeek:    day,
		StartTime:    start,
		EndTime:      end,
		Role:         domain.RoleAdmin,
	}
}

func TestExecute_CreatesSlot(t *testing.T) {
	store := testutil.Store()

	req := slot(testutil.Pilates, 1, "20:00", "")
	req.CapacityOverride = ptr.Ptr(3)
	resp, err := newUseCase(store).Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("21:00"), resp.Slot.EndTime)
	assert.Equal(t, 1, resp.Turma)
	require.NotNil(t, resp.Slot.CapacityOverride)
	assert.Equal(t, 3, *resp.Slot.CapacityOverride)

	stored, err := store.FixedSlots().GetByID(context.Background(), resp.Slot.ID)
	require.NoError(t, err)
	assert.Equal(t, testutil.Pilates, stored.ClassTypeID)
}

func TestExecute_SameTurmaIsNotMerged(t *testing.T) {
	store := testutil.Store()

	resp, err := newUseCase(store).Execute(context.Background(), slot(testutil.Pilates, 1, "18:00", "19:00"))
	require.NoError(t, err)
	assert.NotEqual(t, testutil.PilatesMon18, resp.Slot.ID)
	assert.Equal(t, 2, resp.Turma)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
		want error
		kind error
	}{
		{"overlaps linked slot", slot(testutil.Pilates, 1, "19:30", "20:30"), ErrConflictOccupied, domain.ErrConflictOccupied},
		{"link is symmetric", slot(testutil.Funcional, 1, "18:30", "19:00"), ErrConflictOccupied, domain.ErrConflictOccupied},
		{"end before start", slot(testutil.Pilates, 1, "10:00", "09:00"), ErrInvalidTime, domain.ErrValidation},
		{"malformed time", slot(testutil.Pilates, 1, "9h", "10:00"), ErrInvalidTime, domain.ErrValidation},
		{"outside availability", slot(testutil.Pilates, 2, "10:00", "11:00"), ErrOutsideAvailability, domain.ErrValidation},
		{"unknown class type", slot("ct-missing", 1, "10:00", "11:00"), ErrClassTypeNotFound, domain.ErrNotFound},
		{"bad weekday", slot(testutil.Pilates, 7, "10:00", "11:00"), ErrInvalidInput, domain.ErrValidation},
		{"student role", &Request{ClassTypeID: testutil.Pilates, InstructorID: "x", DayOfWeek: 1, StartTime: "10:00", Role: domain.RoleStudent}, ErrAccessDenied, domain.ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.Store()
			_, err := newUseCase(store).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.kind)

			list, err := store.FixedSlots().List(context.Background(), nil)
			require.NoError(t, err)
			assert.Len(t, list, 3)
		})
	}
}

func TestExecute_AdjacentToLinkedSlot(t *testing.T) {
	store := testutil.Store()

	_, err := newUseCase(store).Execute(context.Background(), slot(testutil.Pilates, 1, "17:00", "18:00"))
	assert.NoError(t, err)
	_, err = newUseCase(store).Execute(context.Background(), slot(testutil.Funcional, 1, "20:00", "21:00"))
	assert.NoError(t, err)
}
