package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/pkg/ptr"
)

func date(s string) time.Time {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to RescheduleStatus
		want     bool
	}{
		{ReschedulePending, RescheduleApproved, true},
		{ReschedulePending, RescheduleRejected, true},
		{ReschedulePending, RescheduleCancelled, false},
		{RescheduleApproved, RescheduleCancelled, true},
		{RescheduleApproved, RescheduleRejected, false},
		{RescheduleApproved, ReschedulePending, false},
		{RescheduleRejected, RescheduleApproved, false},
		{RescheduleCancelled, RescheduleApproved, false},
		{RescheduleCancelled, ReschedulePending, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestStudent_SetStatusIsMutuallyExclusive(t *testing.T) {
	s := &Student{ID: "s1", Waitlisted: true}

	s.SetStatus(StudentFrozen)
	assert.True(t, s.Frozen)
	assert.False(t, s.Inactive)

	s.SetStatus(StudentInactive)
	assert.False(t, s.Frozen)
	assert.True(t, s.Inactive)
	assert.True(t, s.Waitlisted, "waitlisted is independent")

	s.SetStatus(StudentActive)
	assert.Equal(t, StudentActive, s.Status())
	assert.False(t, s.IsCountable(), "waitlisted student does not take a seat")

	s.Waitlisted = false
	assert.True(t, s.IsCountable())
}

func TestWeekStart(t *testing.T) {
	assert.Equal(t, date("2025-06-02"), WeekStart(date("2025-06-02")))
	assert.Equal(t, date("2025-06-02"), WeekStart(date("2025-06-05")))
	assert.Equal(t, date("2025-06-02"), WeekStart(date("2025-06-08")))
	assert.Equal(t, 1, Weekday(date("2025-06-02")))
	assert.Equal(t, 0, Weekday(date("2025-06-08")))
}

func TestDateRange(t *testing.T) {
	r := NewDateRange(date("2025-06-08"), date("2025-06-02"))
	assert.Equal(t, date("2025-06-02"), r.From)
	assert.True(t, r.Contains(date("2025-06-05").Add(15*time.Hour)))
	assert.False(t, r.Contains(date("2025-06-09")))
	assert.Len(t, r.Days(), 7)
}

func TestFixedSlot_CoversIsHalfOpen(t *testing.T) {
	slot := &FixedSlot{ID: "a", DayOfWeek: 1, StartTime: "18:00", EndTime: "19:00"}

	assert.True(t, slot.Covers(1, "18:00"))
	assert.True(t, slot.Covers(1, "18:59"))
	assert.False(t, slot.Covers(1, "19:00"))
	assert.False(t, slot.Covers(2, "18:30"))

	assert.True(t, slot.Overlaps(1, "18:30", "19:30"))
	assert.False(t, slot.Overlaps(1, "19:00", "20:00"))
	assert.False(t, slot.Overlaps(1, "17:00", "18:00"))
}

func TestFixedSlot_EffectiveCapacity(t *testing.T) {
	ct := &ClassType{ID: "pilates", DefaultCapacity: 5}
	slot := &FixedSlot{ID: "a"}
	assert.Equal(t, 5, slot.EffectiveCapacity(ct))

	slot.CapacityOverride = ptr.Ptr(3)
	assert.Equal(t, 3, slot.EffectiveCapacity(ct))
	assert.Equal(t, 3, slot.EffectiveCapacity(nil))
}

func TestNewSnapshot_SkipsCorruptRecords(t *testing.T) {
	snap := NewSnapshot(SnapshotData{
		ClassTypes: []*ClassType{nil, {ID: "pilates"}, {ID: ""}},
		FixedSlots: []*FixedSlot{
			{ID: "b", ClassTypeID: "pilates", DayOfWeek: 1, StartTime: "19:00", EndTime: "20:00"},
			{ID: "a", ClassTypeID: "pilates", DayOfWeek: 1, StartTime: "18:00", EndTime: "19:00"},
			{ID: "bad", ClassTypeID: "pilates", DayOfWeek: 1, StartTime: "xx", EndTime: "19:00"},
		},
		Enrollments: []*Enrollment{{ID: "e1", FixedSlotID: "a", StudentID: "s1"}, {ID: "e2", FixedSlotID: "a"}},
		Reschedules: []*RescheduleRequest{{ID: "r1", Status: "unknown"}},
	})

	assert.Len(t, snap.ClassTypes(), 1)
	_, ok := snap.FixedSlot("bad")
	assert.False(t, ok)
	require.Len(t, snap.FixedSlots(), 2)
	assert.Equal(t, "a", snap.FixedSlots()[0].ID)
	assert.Len(t, snap.EnrollmentsOf("a"), 1)
	assert.Empty(t, snap.Reschedules())
}

func TestSnapshot_LinkedClassTypesIsSymmetric(t *testing.T) {
	snap := NewSnapshot(SnapshotData{
		ClassTypes: []*ClassType{
			{ID: "A", LinkedClassTypeIDs: []string{"B", "missing"}},
			{ID: "B"},
			{ID: "C"},
		},
	})

	linkedToA := snap.LinkedClassTypes("A")
	require.Len(t, linkedToA, 1)
	assert.Equal(t, "B", linkedToA[0].ID)

	linkedToB := snap.LinkedClassTypes("B")
	require.Len(t, linkedToB, 1)
	assert.Equal(t, "A", linkedToB[0].ID)

	assert.Empty(t, snap.LinkedClassTypes("C"))
}

func TestHolidayPolicy(t *testing.T) {
	policy := HolidayPolicy{IgnoredScopes: []HolidayScope{HolidayMunicipal}}
	holidays := []Holiday{
		{Date: date("2025-06-19"), Scope: HolidayNational, Name: "Corpus Christi"},
		{Date: date("2025-06-13"), Scope: HolidayMunicipal, Name: "Santo Antonio"},
	}

	filtered := policy.Filter(holidays)
	require.Len(t, filtered, 1)
	assert.Equal(t, HolidayNational, filtered[0].Scope)
}
