package build_week_grid

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/grid"
)

// UseCase use case построения недельной сетки
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

// Execute строит сетку недели по свежему снимку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BuildWeekGrid: validation failed: %v", err)
		return nil, err
	}
	week := req.Week
	if week.IsZero() {
		week = uc.timeProvider.Now()
	}
	weekStart := domain.WeekStart(week)
	uc.logger.Info("BuildWeekGrid: class_type=%s, week=%s", req.ClassTypeID, weekStart.Format(domain.DateFormat))

	// 2. Полностью перечитываем данные недели
	var snap *domain.Snapshot
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		snap, err = uc.loader.ForWeek(txCtx, weekStart)
		return err
	})
	if err != nil {
		uc.logger.Error("BuildWeekGrid: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	// 3. Строим сетку
	resp := &Response{Grid: grid.Build(snap, req.ClassTypeID, weekStart)}
	if ct, ok := snap.ClassType(req.ClassTypeID); ok {
		resp.Known = true
		resp.ClassTypeName = ct.Name
	} else {
		uc.logger.Warn("BuildWeekGrid: class_type=%s not found", req.ClassTypeID)
	}

	uc.logger.Info("BuildWeekGrid: class_type=%s rows=%d", req.ClassTypeID, len(resp.Rows))
	return resp, nil
}
