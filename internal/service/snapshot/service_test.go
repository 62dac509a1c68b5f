package snapshot_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/snapshot"
	"github.com/m04kA/SMC-StudioSchedule/internal/testutil"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
)

type holidayStub struct {
	holidays []domain.Holiday
	err      error
}

func (h holidayStub) GetHolidays(_ context.Context, _ domain.DateRange) ([]domain.Holiday, error) {
	return h.holidays, h.err
}

func repos(s *memstore.Store) snapshot.Repositories {
	return snapshot.Repositories{
		ClassTypes:  s.ClassTypes(),
		FixedSlots:  s.FixedSlots(),
		Students:    s.Students(),
		Reschedules: s.Reschedules(),
		Bookings:    s.Bookings(),
		Sessions:    s.Sessions(),
	}
}

func TestLoader_ForWeek(t *testing.T) {
	store := testutil.Store(domain.SnapshotData{Trials: []*domain.TrialBooking{
		{ID: "tr-in", FixedSlotID: testutil.PilatesWed18, Date: testutil.Wednesday, ContactName: "A", ContactPhone: "1", Status: domain.TrialScheduled},
		{ID: "tr-out", FixedSlotID: testutil.PilatesWed18, Date: testutil.Wednesday.AddDate(0, 0, 7), ContactName: "B", ContactPhone: "2", Status: domain.TrialScheduled},
	}})
	thursday := testutil.Monday.AddDate(0, 0, 3)
	friday := testutil.Monday.AddDate(0, 0, 4)
	policy := domain.HolidayPolicy{IgnoredScopes: []domain.HolidayScope{domain.HolidayMunicipal}}
	loader := snapshot.NewLoader(repos(store), holidayStub{holidays: []domain.Holiday{
		{Date: thursday, Scope: domain.HolidayNational, Name: "Corpus Christi"},
		{Date: friday, Scope: domain.HolidayMunicipal, Name: "Aniversário"},
	}}, policy, logger.NewNop())

	snap, err := loader.ForWeek(context.Background(), testutil.Wednesday)
	require.NoError(t, err)

	assert.Len(t, snap.ClassTypes(), 2)
	assert.Len(t, snap.FixedSlots(), 3)
	assert.Len(t, snap.TrialsFor(domain.NewOccurrence(testutil.PilatesWed18, testutil.Wednesday)), 1)
	assert.Empty(t, snap.TrialsFor(domain.NewOccurrence(testutil.PilatesWed18, testutil.Wednesday.AddDate(0, 0, 7))))

	_, ok := snap.HolidayOn(thursday)
	assert.True(t, ok)
	_, ok = snap.HolidayOn(friday)
	assert.False(t, ok, "ignored scope must not close the studio")
}

func TestLoader_HolidaysUnavailable(t *testing.T) {
	loader := snapshot.NewLoader(repos(testutil.Store()), holidayStub{err: errors.New("timeout")}, domain.HolidayPolicy{}, logger.NewNop())

	snap, err := loader.ForOccurrences(context.Background(),
		domain.NewOccurrence(testutil.PilatesMon18, testutil.Monday),
		domain.NewOccurrence(testutil.PilatesWed18, testutil.Wednesday),
	)
	require.NoError(t, err)
	_, ok := snap.HolidayOn(testutil.Monday.Add(time.Hour))
	assert.False(t, ok)
	assert.Len(t, snap.EnrollmentsOf(testutil.PilatesMon18), 5)
}
