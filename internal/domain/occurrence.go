package domain

import "time"

// Occurrence конкретное занятие: слот в конкретную дату
type Occurrence struct {
	SlotID string
	Date   time.Time
}

// NewOccurrence создает занятие, нормализуя дату
func NewOccurrence(slotID string, date time.Time) Occurrence {
	return Occurrence{SlotID: slotID, Date: DateOnly(date)}
}

// Equal сравнивает слот и календарную дату
func (o Occurrence) Equal(other Occurrence) bool {
	return o.SlotID == other.SlotID && SameDate(o.Date, other.Date)
}

// Key строковый ключ для индексов и блокировок
func (o Occurrence) Key() string {
	return o.SlotID + "@" + DateOnly(o.Date).Format(DateFormat)
}

// String для логов
func (o Occurrence) String() string {
	return o.Key()
}
