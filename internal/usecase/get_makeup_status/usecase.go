package get_makeup_status

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/makeup"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/recurrence"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
)

// UseCase use case списка пропусков и отработок
type UseCase struct {
	loader       SnapshotLoader
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(loader SnapshotLoader, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		loader:       loader,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute возвращает пропуски за период с дедлайном, статусом и заявкой на отработку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	rng, err := validateRequest(req, now)
	if err != nil {
		uc.logger.Warn("GetMakeupStatus: validation failed: %v", err)
		return nil, err
	}
	uc.logger.Info("GetMakeupStatus: student=%s, slot=%s, range=%s..%s",
		req.StudentID, req.FixedSlotID, rng.From.Format(domain.DateFormat), rng.To.Format(domain.DateFormat))

	// 2. Снимок покрывает период и окна отработки пропусков в конце периода
	loadTo := rng.To
	if today := domain.DateOnly(now); today.After(loadTo) {
		loadTo = today
	}
	loadTo = loadTo.AddDate(0, 0, domain.MakeupWindowDays)

	var snap *domain.Snapshot
	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		snap, err = uc.loader.ForRange(txCtx, domain.DateRange{From: rng.From, To: loadTo})
		return err
	})
	if err != nil {
		uc.logger.Error("GetMakeupStatus: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	// 3. Пропуски и их отработки
	absences := makeup.Absences(snap, makeup.Filter{
		StudentID:   req.StudentID,
		FixedSlotID: req.FixedSlotID,
		Range:       &rng,
	})
	resp := &Response{From: rng.From, To: rng.To, Items: make([]Item, 0, len(absences))}
	for _, a := range absences {
		item := Item{Tracking: makeup.Track(snap, a, now)}
		if req.WithSuggestions && item.Status == makeup.StatusOpen {
			item.Suggestions = suggest(snap, a, now)
		}
		resp.Items = append(resp.Items, item)
	}

	uc.logger.Info("GetMakeupStatus: found %d absences", len(resp.Items))
	return resp, nil
}

// suggest свободные занятия той же модальности от завтрашнего дня после пропуска до дедлайна
func suggest(snap *domain.Snapshot, a makeup.Absence, now time.Time) []Suggestion {
	origin, ok := snap.FixedSlot(a.FixedSlotID)
	if !ok {
		return nil
	}
	from := a.Date.AddDate(0, 0, 1)
	if today := domain.DateOnly(now); today.After(from) {
		from = today
	}
	window := domain.DateRange{From: from, To: makeup.Deadline(a.Date)}
	if window.From.After(window.To) {
		return nil
	}

	var result []Suggestion
	for _, slot := range snap.FixedSlotsOf(origin.ClassTypeID) {
		if snap.IsSlotBlocked(slot) {
			continue
		}
		for _, date := range recurrence.Dates(slot, window) {
			if _, holiday := snap.HolidayOn(date); holiday {
				continue
			}
			occ := roster.Resolve(snap, slot.ID, date)
			if occ.IsFull || occ.Has(a.StudentID) {
				continue
			}
			result = append(result, Suggestion{
				FixedSlotID:    slot.ID,
				Date:           date,
				StartTime:      slot.StartTime,
				EndTime:        slot.EndTime,
				AvailableSpots: occ.AvailableSpots(),
			})
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})
	return result
}
