package domain

import "time"

// DateOnly отбрасывает время и приводит дату к UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

// SameDate сравнивает только календарные даты
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// IsDateInPast true, если дата строго раньше сегодняшней
func IsDateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}

// Weekday номер дня недели: 0 = воскресенье ... 6 = суббота
func Weekday(date time.Time) int {
	return int(date.Weekday())
}

// WeekStart понедельник недели, в которую попадает дата
func WeekStart(date time.Time) time.Time {
	d := DateOnly(date)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// DateRange диапазон дат, обе границы включительно
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange создает диапазон, упорядочивая границы
func NewDateRange(a, b time.Time) DateRange {
	a, b = DateOnly(a), DateOnly(b)
	if b.Before(a) {
		a, b = b, a
	}
	return DateRange{From: a, To: b}
}

// WeekRange диапазон понедельник-воскресенье
func WeekRange(weekStart time.Time) DateRange {
	start := WeekStart(weekStart)
	return DateRange{From: start, To: start.AddDate(0, 0, 6)}
}

// Contains true, если дата попадает в диапазон
func (r DateRange) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(r.From) && !d.After(r.To)
}

// Days перечисляет все даты диапазона
func (r DateRange) Days() []time.Time {
	var days []time.Time
	for d := r.From; !d.After(r.To); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
