package check_linked_conflict

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/conflict"
)

// UseCase use case проверки занятости общего помещения
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

// Execute проверяет, занят ли момент слотом связанной модальности
// Результат носит справочный характер и ошибкой не считается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckLinkedConflict: validation failed: %v", err)
		return nil, err
	}

	// 2. Снимок нужен только для справочных данных и праздников даты
	rng := domain.NewDateRange(uc.timeProvider.Now(), uc.timeProvider.Now())
	if req.Date != nil {
		rng = domain.NewDateRange(*req.Date, *req.Date)
	}
	var snap *domain.Snapshot
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		snap, err = uc.loader.ForRange(txCtx, rng)
		return err
	})
	if err != nil {
		uc.logger.Error("CheckLinkedConflict: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	// 3. Проверяем
	var res conflict.Result
	if req.Date != nil {
		res = conflict.CheckOn(snap, req.ClassTypeID, *req.Date, req.Time)
	} else {
		res = conflict.Check(snap, req.ClassTypeID, *req.DayOfWeek, req.Time)
	}

	resp := &Response{Occupied: res.Occupied}
	if res.Occupied {
		resp.ByClassTypeID = res.By.ID
		resp.ByClassTypeName = res.By.Name
		resp.FixedSlotID = res.Slot.ID
		resp.WindowStart = res.Window.Start
		resp.WindowEnd = res.Window.End
	}

	uc.logger.Info("CheckLinkedConflict: class_type=%s, time=%s, occupied=%t, by=%s",
		req.ClassTypeID, req.Time, resp.Occupied, resp.ByClassTypeID)
	return resp, nil
}
