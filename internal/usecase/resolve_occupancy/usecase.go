package resolve_occupancy

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
)

// UseCase use case расчета состава занятия
type UseCase struct {
	loader    SnapshotLoader
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(loader SnapshotLoader, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		loader:    loader,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute возвращает состав и заполненность слота на дату
// Неизвестный слот доменной ошибкой не считается: у него нулевая вместимость и нет мест
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveOccupancy: validation failed: %v", err)
		return nil, err
	}
	occ := domain.NewOccurrence(req.FixedSlotID, req.Date)

	// 2. Загружаем свежий снимок
	var snap *domain.Snapshot
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		snap, err = uc.loader.ForOccurrences(txCtx, occ)
		return err
	})
	if err != nil {
		uc.logger.Error("ResolveOccupancy: failed to load snapshot for %s: %v", occ, err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	// 3. Считаем состав
	occupancy := roster.Resolve(snap, occ.SlotID, occ.Date)

	resp := &Response{
		FixedSlotID:    occ.SlotID,
		Date:           occ.Date,
		ActiveCount:    occupancy.ActiveCount,
		Capacity:       occupancy.Capacity,
		AvailableSpots: occupancy.AvailableSpots(),
		IsFull:         occupancy.IsFull,
		Settled:        occupancy.Settled,
		Attendees:      occupancy.Attendees,
		Annotations:    occupancy.Annotations,
	}
	if slot, ok := snap.FixedSlot(occ.SlotID); ok {
		resp.ClassTypeID = slot.ClassTypeID
		resp.InstructorID = slot.InstructorID
		resp.StartTime = slot.StartTime
		resp.EndTime = slot.EndTime
		resp.Blocked = snap.IsSlotBlocked(slot)
	} else {
		uc.logger.Warn("ResolveOccupancy: slot=%s not found, reporting zero capacity", occ.SlotID)
	}
	if h, ok := snap.HolidayOn(occ.Date); ok {
		resp.NonOperating = true
		resp.HolidayName = h.Name
	}

	uc.logger.Info("ResolveOccupancy: %s active=%d/%d full=%t", occ, resp.ActiveCount, resp.Capacity, resp.IsFull)
	return resp, nil
}
