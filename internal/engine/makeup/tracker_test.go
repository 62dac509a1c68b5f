package makeup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

var absenceDay = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func trackerData() domain.SnapshotData {
	return domain.SnapshotData{
		ClassTypes: []*domain.ClassType{{ID: "pilates", DefaultCapacity: 5}},
		FixedSlots: []*domain.FixedSlot{
			{ID: "X", ClassTypeID: "pilates", DayOfWeek: 1, StartTime: "18:00", EndTime: "19:00"},
			{ID: "Y", ClassTypeID: "pilates", DayOfWeek: 3, StartTime: "18:00", EndTime: "19:00"},
		},
		Students: []*domain.Student{{ID: "s1"}, {ID: "s2"}},
		Sessions: []*domain.SessionRecord{{
			ID: "sess", FixedSlotID: "X", Date: absenceDay,
			Entries: []domain.AttendanceEntry{
				{StudentRef: "s1", Present: false},
				{StudentRef: "s2", Present: true},
				{StudentRef: "trial-1", Present: false},
			},
		}},
	}
}

func TestDeadline(t *testing.T) {
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), Deadline(absenceDay))
	assert.False(t, IsExpired(absenceDay, time.Date(2025, 6, 9, 23, 0, 0, 0, time.UTC)))
	assert.True(t, IsExpired(absenceDay, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)))
}

func TestAbsences(t *testing.T) {
	snap := domain.NewSnapshot(trackerData())

	absences := Absences(snap, Filter{})

	require.Len(t, absences, 1)
	assert.Equal(t, "s1", absences[0].StudentID)
	assert.Equal(t, "X", absences[0].FixedSlotID)
	assert.Empty(t, Absences(snap, Filter{StudentID: "s2"}))
	assert.True(t, IsAbsent(snap, domain.NewOccurrence("X", absenceDay), "s1"))
	assert.False(t, IsAbsent(snap, domain.NewOccurrence("X", absenceDay), "s2"))
}

func TestTrack_OpenThenExpired(t *testing.T) {
	snap := domain.NewSnapshot(trackerData())
	absence := Absences(snap, Filter{})[0]

	open := Track(snap, absence, absenceDay.AddDate(0, 0, 3))
	assert.Equal(t, StatusOpen, open.Status)
	assert.False(t, open.HasMakeupRequest)

	expired := Track(snap, absence, absenceDay.AddDate(0, 0, 8))
	assert.Equal(t, StatusExpired, expired.Status)
	assert.True(t, expired.IsExpired)
}

func TestTrack_ScheduledWithApprovedMakeup(t *testing.T) {
	data := trackerData()
	data.Reschedules = []*domain.RescheduleRequest{
		{
			ID: "r-pending", StudentID: "s1", OriginSlotID: "X", OriginDate: absenceDay,
			DestinationSlotID: "Y", DestinationDate: absenceDay.AddDate(0, 0, 2),
			Status: domain.ReschedulePending, IsMakeup: true,
		},
		{
			ID: "r-approved", StudentID: "s1", OriginSlotID: "X", OriginDate: absenceDay,
			DestinationSlotID: "Y", DestinationDate: absenceDay.AddDate(0, 0, 2),
			Status: domain.RescheduleApproved, IsMakeup: true,
		},
		{
			ID: "r-other", StudentID: "s2", OriginSlotID: "X", OriginDate: absenceDay,
			DestinationSlotID: "Y", DestinationDate: absenceDay.AddDate(0, 0, 2),
			Status: domain.RescheduleApproved, IsMakeup: true,
		},
	}
	snap := domain.NewSnapshot(data)
	absence := Absences(snap, Filter{StudentID: "s1"})[0]

	tr := Track(snap, absence, absenceDay.AddDate(0, 0, 10))

	assert.True(t, tr.HasMakeupRequest)
	require.NotNil(t, tr.MakeupRequest)
	assert.Equal(t, "r-approved", tr.MakeupRequest.ID)
	assert.Equal(t, StatusScheduled, tr.Status)
	assert.True(t, tr.IsExpired, "expiry is reported independently of the request")
}

func TestTrack_Pending(t *testing.T) {
	data := trackerData()
	data.Reschedules = []*domain.RescheduleRequest{{
		ID: "r1", StudentID: "s1", OriginSlotID: "X", OriginDate: absenceDay,
		DestinationSlotID: "Y", DestinationDate: absenceDay.AddDate(0, 0, 2),
		Status: domain.ReschedulePending, IsMakeup: true,
	}}
	snap := domain.NewSnapshot(data)

	tr := Track(snap, Absences(snap, Filter{})[0], absenceDay.AddDate(0, 0, 1))

	assert.Equal(t, StatusPending, tr.Status)
	assert.False(t, tr.HasMakeupRequest)
}
