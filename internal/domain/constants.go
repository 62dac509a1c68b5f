package domain

// Значения по умолчанию
const (
	DefaultClassCapacity          = 10
	DefaultSessionDurationMinutes = 60
)

// Правила отработок и сопоставления имен
const (
	// MakeupWindowDays сколько дней после пропуска можно записаться на отработку
	MakeupWindowDays = 7

	// NameMatchThreshold порог схожести имен, начиная с которого нужен выбор оператора
	NameMatchThreshold = 0.8
)

// Ограничения валидации
const (
	MinCapacity         = 1
	MaxCapacity         = 200
	MaxNoteLength       = 500
	MaxNameLength       = 200
	MinDurationMinutes  = 5
	MaxDurationMinutes  = 480
	DefaultMakeupLookup = 30 // дней назад для списка пропусков по умолчанию
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
