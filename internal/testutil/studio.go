// Package testutil общий набор данных студии для тестов пакетов usecase, service и api
package testutil

import (
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-StudioSchedule/internal/integrations/holidays"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/snapshot"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

const (
	Pilates   = "ct-pilates"
	Funcional = "ct-funcional"

	// PilatesMon18 Пилатес по понедельникам 18:00-19:00, вместимость 5, занято 5
	PilatesMon18 = "slot-pilates-mon-18"
	// PilatesWed18 Пилатес по средам 18:00-19:00, вместимость 5, занят 1
	PilatesWed18 = "slot-pilates-wed-18"
	// FuncionalMon19 Функциональный по понедельникам 19:00-20:00
	FuncionalMon19 = "slot-funcional-mon-19"

	InstructorAna = "inst-ana"
	InstructorBia = "inst-bia"

	Admin   = "user-admin"
	Student = "user-student"
)

var (
	// Monday занятие PilatesMon18
	Monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	// Wednesday занятие PilatesWed18
	Wednesday = time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	// Today "сегодня" в тестах: пятница перед неделей занятий
	Today = time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC)
)

// StudentIDs ученики st-1..st-7. st-1..st-5 записаны на PilatesMon18, st-6 на PilatesWed18, st-7 без записи
var StudentIDs = []string{"st-1", "st-2", "st-3", "st-4", "st-5", "st-6", "st-7"}

var studentNames = []string{
	"Ana Souza",
	"Bruno Lima",
	"Carla Dias",
	"Diego Alves",
	"Elisa Rocha",
	"Fábio Melo",
	"Gabriela Nunes",
}

// Studio базовые данные студии
func Studio() domain.SnapshotData {
	data := domain.SnapshotData{
		ClassTypes: []*domain.ClassType{
			{
				ID:                     Pilates,
				Name:                   "Pilates",
				DefaultCapacity:        5,
				SessionDurationMinutes: 60,
				Availability: []domain.AvailabilityWindow{
					{DayOfWeek: 1, Start: "07:00", End: "21:00"},
					{DayOfWeek: 3, Start: "07:00", End: "21:00"},
				},
				LinkedClassTypeIDs: []string{Funcional},
			},
			{
				ID:                     Funcional,
				Name:                   "Funcional",
				DefaultCapacity:        8,
				SessionDurationMinutes: 60,
				Availability: []domain.AvailabilityWindow{
					{DayOfWeek: 1, Start: "06:00", End: "21:00"},
					{DayOfWeek: 2, Start: "06:00", End: "21:00"},
				},
			},
		},
		FixedSlots: []*domain.FixedSlot{
			slot(PilatesMon18, Pilates, InstructorAna, 1, "18:00", "19:00"),
			slot(PilatesWed18, Pilates, InstructorAna, 3, "18:00", "19:00"),
			slot(FuncionalMon19, Funcional, InstructorBia, 1, "19:00", "20:00"),
		},
	}

	for i, id := range StudentIDs {
		data.Students = append(data.Students, &domain.Student{ID: id, Name: studentNames[i]})
	}
	for _, id := range StudentIDs[:5] {
		data.Enrollments = append(data.Enrollments, &domain.Enrollment{
			ID:          "en-" + id,
			FixedSlotID: PilatesMon18,
			StudentID:   id,
		})
	}
	data.Enrollments = append(data.Enrollments, &domain.Enrollment{
		ID:          "en-st-6",
		FixedSlotID: PilatesWed18,
		StudentID:   "st-6",
	})
	return data
}

// Store хранилище в памяти, заполненное Studio и дополнительными данными
func Store(extra ...domain.SnapshotData) *memstore.Store {
	s := memstore.New()
	s.Seed(Studio())
	for _, e := range extra {
		s.Seed(e)
	}
	return s
}

// Loader загрузчик снимков поверх хранилища со статическим списком праздников
func Loader(s *memstore.Store, hs ...domain.Holiday) *snapshot.Loader {
	return snapshot.NewLoader(snapshot.Repositories{
		ClassTypes:  s.ClassTypes(),
		FixedSlots:  s.FixedSlots(),
		Students:    s.Students(),
		Reschedules: s.Reschedules(),
		Bookings:    s.Bookings(),
		Sessions:    s.Sessions(),
	}, holidays.NewStatic(hs), domain.HolidayPolicy{}, logger.NewNop())
}

// Clock фиксированное время
type Clock struct {
	T time.Time
}

// Now возвращает зафиксированное время
func (c Clock) Now() time.Time {
	return c.T
}

func slot(id, classTypeID, instructorID string, day int, start, end string) *domain.FixedSlot {
	return &domain.FixedSlot{
		ID:           id,
		ClassTypeID:  classTypeID,
		InstructorID: instructorID,
		DayOfWeek:    day,
		StartTime:    types.TimeString(start),
		EndTime:      types.TimeString(end),
	}
}
