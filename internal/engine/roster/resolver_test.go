package roster

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/pkg/ptr"
)

var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

// baseData пилатес, слот X в понедельник 18:00-19:00 на 5 мест с 5 учениками
// и слот Y в среду 18:00-19:00
func baseData() domain.SnapshotData {
	data := domain.SnapshotData{
		ClassTypes: []*domain.ClassType{{ID: "pilates", DefaultCapacity: 5, SessionDurationMinutes: 60}},
		FixedSlots: []*domain.FixedSlot{
			{ID: "X", ClassTypeID: "pilates", InstructorID: "ana", DayOfWeek: 1, StartTime: "18:00", EndTime: "19:00"},
			{ID: "Y", ClassTypeID: "pilates", InstructorID: "ana", DayOfWeek: 3, StartTime: "18:00", EndTime: "19:00"},
		},
	}
	for i := 1; i <= 5; i++ {
		id := fmt.Sprintf("s%d", i)
		data.Students = append(data.Students, &domain.Student{ID: id, Name: "Student " + id})
		data.Enrollments = append(data.Enrollments, &domain.Enrollment{ID: "e" + id, FixedSlotID: "X", StudentID: id})
	}
	return data
}

func TestResolve_Baseline(t *testing.T) {
	snap := domain.NewSnapshot(baseData())

	occ := Resolve(snap, "X", monday)

	assert.Equal(t, 5, occ.ActiveCount)
	assert.Equal(t, 5, occ.Capacity)
	assert.True(t, occ.IsFull)
	assert.Equal(t, 0, occ.AvailableSpots())
	for _, a := range occ.Attendees {
		assert.Equal(t, FromEnrollment, a.Provenance)
		assert.Equal(t, PresenceUnknown, a.Presence)
	}
}

func TestResolve_ExcludesFrozenInactiveAndWaitlisted(t *testing.T) {
	data := baseData()
	data.Students[0].Frozen = true
	data.Students[1].Inactive = true
	data.Students[2].Waitlisted = true
	snap := domain.NewSnapshot(data)

	occ := Resolve(snap, "X", monday)

	assert.Equal(t, 2, occ.ActiveCount)
	assert.False(t, occ.IsFull)
}

func TestResolve_ApprovedRescheduleMovesOneSeat(t *testing.T) {
	data := baseData()
	wednesday := monday.AddDate(0, 0, 2)
	data.Reschedules = []*domain.RescheduleRequest{{
		ID:                 "r1",
		StudentID:          "s1",
		OriginEnrollmentID: ptr.Ptr("es1"),
		OriginSlotID:       "X",
		OriginDate:         monday,
		DestinationSlotID:  "Y",
		DestinationDate:    wednesday,
		Status:             domain.RescheduleApproved,
	}}
	snap := domain.NewSnapshot(data)

	origin := Resolve(snap, "X", monday)
	destination := Resolve(snap, "Y", wednesday)

	assert.Equal(t, 4, origin.ActiveCount)
	assert.False(t, origin.Has("s1"))
	require.Len(t, origin.Annotations, 1)
	assert.Equal(t, ApprovedOutgoing, origin.Annotations[0].Kind)

	assert.Equal(t, 1, destination.ActiveCount)
	require.Len(t, destination.Attendees, 1)
	assert.Equal(t, FromReschedule, destination.Attendees[0].Provenance)
	assert.Equal(t, "r1", destination.Attendees[0].Ref)

	// Следующая неделя не затронута
	assert.Equal(t, 5, Resolve(snap, "X", monday.AddDate(0, 0, 7)).ActiveCount)
}

func TestResolve_PendingRequestsOnlyAnnotate(t *testing.T) {
	data := baseData()
	wednesday := monday.AddDate(0, 0, 2)
	data.Reschedules = []*domain.RescheduleRequest{{
		ID: "r1", StudentID: "s1", OriginSlotID: "X", OriginDate: monday,
		DestinationSlotID: "Y", DestinationDate: wednesday, Status: domain.ReschedulePending,
	}}
	snap := domain.NewSnapshot(data)

	origin := Resolve(snap, "X", monday)
	destination := Resolve(snap, "Y", wednesday)

	assert.Equal(t, 5, origin.ActiveCount)
	require.Len(t, origin.Annotations, 1)
	assert.Equal(t, PendingOutgoing, origin.Annotations[0].Kind)

	assert.Equal(t, 0, destination.ActiveCount)
	require.Len(t, destination.Annotations, 1)
	assert.Equal(t, PendingIncoming, destination.Annotations[0].Kind)
}

func TestResolve_RejectedAndCancelledAreIgnored(t *testing.T) {
	data := baseData()
	wednesday := monday.AddDate(0, 0, 2)
	for i, status := range []domain.RescheduleStatus{domain.RescheduleRejected, domain.RescheduleCancelled} {
		data.Reschedules = append(data.Reschedules, &domain.RescheduleRequest{
			ID: fmt.Sprintf("r%d", i), StudentID: "s1", OriginSlotID: "X", OriginDate: monday,
			DestinationSlotID: "Y", DestinationDate: wednesday, Status: status,
		})
	}
	snap := domain.NewSnapshot(data)

	assert.Equal(t, 5, Resolve(snap, "X", monday).ActiveCount)
	assert.Equal(t, 0, Resolve(snap, "Y", wednesday).ActiveCount)
	assert.Empty(t, Resolve(snap, "X", monday).Annotations)
}

func TestResolve_TrialsAndCredits(t *testing.T) {
	data := baseData()
	data.Students = append(data.Students, &domain.Student{ID: "s6", Name: "Extra"})
	wednesday := monday.AddDate(0, 0, 2)
	data.Trials = []*domain.TrialBooking{
		{ID: "t1", FixedSlotID: "Y", Date: wednesday, ContactName: "Guest", Status: domain.TrialScheduled},
		{ID: "t2", FixedSlotID: "Y", Date: wednesday, ContactName: "Guest 2", Status: domain.TrialApproved},
		{ID: "t3", FixedSlotID: "Y", Date: wednesday, ContactName: "Gone", Status: domain.TrialCancelled},
	}
	data.Credits = []*domain.CreditUsage{
		{ID: "c1", StudentID: "s6", FixedSlotID: "Y", Date: wednesday, CreditRef: "pack-1"},
		{ID: "c2", StudentID: "s6", FixedSlotID: "Y", Date: wednesday, CreditRef: "pack-2"},
	}
	snap := domain.NewSnapshot(data)

	occ := Resolve(snap, "Y", wednesday)

	assert.Equal(t, 3, occ.ActiveCount, "two active trials and one de-duplicated credit")
}

func TestResolve_IncomingStudentAlreadyEnrolledIsCountedOnce(t *testing.T) {
	data := baseData()
	data.Reschedules = []*domain.RescheduleRequest{{
		ID: "r1", StudentID: "s2", OriginSlotID: "Y", OriginDate: monday.AddDate(0, 0, 2),
		DestinationSlotID: "X", DestinationDate: monday, Status: domain.RescheduleApproved,
	}}
	data.Credits = []*domain.CreditUsage{{ID: "c1", StudentID: "s3", FixedSlotID: "X", Date: monday}}
	snap := domain.NewSnapshot(data)

	assert.Equal(t, 5, Resolve(snap, "X", monday).ActiveCount)
}

func TestResolve_CapacityOverrideAndMissingSlot(t *testing.T) {
	data := baseData()
	data.FixedSlots[0].CapacityOverride = ptr.Ptr(8)
	snap := domain.NewSnapshot(data)

	occ := Resolve(snap, "X", monday)
	assert.Equal(t, 8, occ.Capacity)
	assert.False(t, occ.IsFull)
	assert.Equal(t, 3, occ.AvailableSpots())

	missing := Resolve(snap, "nope", monday)
	assert.Equal(t, 0, missing.ActiveCount)
	assert.Equal(t, 0, missing.Capacity)
}

func TestResolve_WithoutRequest(t *testing.T) {
	data := baseData()
	data.Reschedules = []*domain.RescheduleRequest{{
		ID: "r1", StudentID: "s1", OriginSlotID: "X", OriginDate: monday,
		DestinationSlotID: "Y", DestinationDate: monday.AddDate(0, 0, 2), Status: domain.RescheduleApproved,
	}}
	snap := domain.NewSnapshot(data)

	assert.Equal(t, 4, Resolve(snap, "X", monday).ActiveCount)
	assert.Equal(t, 5, Resolve(snap, "X", monday, WithoutRequest("r1")).ActiveCount)
}

func TestResolve_PresenceFromSessionRecord(t *testing.T) {
	data := baseData()
	data.Sessions = []*domain.SessionRecord{{
		ID: "sess1", FixedSlotID: "X", Date: monday,
		Entries: []domain.AttendanceEntry{{StudentRef: "s1", Present: true}, {StudentRef: "s2", Present: false}},
	}}
	snap := domain.NewSnapshot(data)

	occ := Resolve(snap, "X", monday)

	assert.True(t, occ.Settled)
	presence := map[string]Presence{}
	for _, a := range occ.Attendees {
		presence[a.StudentID] = a.Presence
	}
	assert.Equal(t, PresencePresent, presence["s1"])
	assert.Equal(t, PresenceAbsent, presence["s2"])
	assert.Equal(t, PresenceUnknown, presence["s3"])
}

func TestResolve_MakeupKeepsAbsentStudentInSettledOrigin(t *testing.T) {
	data := baseData()
	wednesday := monday.AddDate(0, 0, 2)
	data.Sessions = []*domain.SessionRecord{{
		ID: "sess1", FixedSlotID: "X", Date: monday,
		Entries: []domain.AttendanceEntry{{StudentRef: "s2", Present: false}},
	}}
	data.Reschedules = []*domain.RescheduleRequest{{
		ID: "r1", StudentID: "s2", OriginSlotID: "X", OriginDate: monday,
		DestinationSlotID: "Y", DestinationDate: wednesday,
		Status: domain.RescheduleApproved, IsMakeup: true,
	}}
	snap := domain.NewSnapshot(data)

	origin := Resolve(snap, "X", monday)

	assert.Equal(t, 5, origin.ActiveCount)
	require.True(t, origin.Has("s2"))
	for _, a := range origin.Attendees {
		if a.StudentID == "s2" {
			assert.Equal(t, PresenceAbsent, a.Presence)
		}
	}
	require.Len(t, origin.Annotations, 1)
	assert.Equal(t, ApprovedOutgoing, origin.Annotations[0].Kind)
	assert.True(t, origin.Annotations[0].IsMakeup)

	assert.True(t, Resolve(snap, "Y", wednesday).Has("s2"))

	// Без итога отработка снимает ученика, как обычный перенос
	data.Sessions = nil
	assert.False(t, Resolve(domain.NewSnapshot(data), "X", monday).Has("s2"))
}

func TestResolve_IsIdempotentAndConcurrent(t *testing.T) {
	snap := domain.NewSnapshot(baseData())
	first := Resolve(snap, "X", monday)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, first, Resolve(snap, "X", monday))
		}()
	}
	wg.Wait()
}

func TestResolve_IsFullIffActiveReachesCapacity(t *testing.T) {
	for capacity := 0; capacity <= 7; capacity++ {
		data := baseData()
		data.FixedSlots[0].CapacityOverride = ptr.Ptr(capacity)
		occ := Resolve(domain.NewSnapshot(data), "X", monday)
		assert.Equal(t, occ.ActiveCount >= occ.Capacity, occ.IsFull, "capacity=%d", capacity)
	}
}
