package conflict

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

// Window занятый интервал [Start, End)
type Window struct {
	Start types.TimeString
	End   types.TimeString
}

// Result результат проверки общего помещения
type Result struct {
	Occupied bool
	By       *domain.ClassType
	Slot     *domain.FixedSlot
	Window   *Window
}

// Check проверяет, занят ли момент (day, t) слотом связанной модальности
// Связь считается симметричной. Заблокированные слоты не учитываются
func Check(snap *domain.Snapshot, classTypeID string, day int, t types.TimeString) Result {
	return find(snap, classTypeID, func(slot *domain.FixedSlot) bool {
		return slot.Covers(day, t)
	})
}

// CheckOn то же, что Check, но для конкретной даты: в нерабочий день ничего не занято
func CheckOn(snap *domain.Snapshot, classTypeID string, date time.Time, t types.TimeString) Result {
	if _, holiday := snap.HolidayOn(date); holiday {
		return Result{}
	}
	return Check(snap, classTypeID, domain.Weekday(date), t)
}

// CheckWindow проверяет пересечение интервала [start, end) со слотами связанных модальностей
// Используется как жесткое ограничение при создании слота
func CheckWindow(snap *domain.Snapshot, classTypeID string, day int, start, end types.TimeString) Result {
	return find(snap, classTypeID, func(slot *domain.FixedSlot) bool {
		return slot.Overlaps(day, start, end)
	})
}

func find(snap *domain.Snapshot, classTypeID string, match func(*domain.FixedSlot) bool) Result {
	for _, linked := range snap.LinkedClassTypes(classTypeID) {
		for _, slot := range snap.FixedSlotsOf(linked.ID) {
			if snap.IsSlotBlocked(slot) || !match(slot) {
				continue
			}
			return Result{
				Occupied: true,
				By:       linked,
				Slot:     slot,
				Window:   &Window{Start: slot.StartTime, End: slot.EndTime},
			}
		}
	}
	return Result{}
}
