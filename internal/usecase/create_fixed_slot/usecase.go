package create_fixed_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/conflict"
)

// UseCase use case создания повторяющегося слота
type UseCase struct {
	slotRepo  FixedSlotRepository
	loader    SnapshotLoader
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo FixedSlotRepository, loader SnapshotLoader, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		loader:    loader,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute создает слот
// Пересечение со слотом связанной модальности здесь является жестким ограничением
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateFixedSlot: class_type=%s, instructor=%s, day=%d, start=%s, end=%s, role=%s",
		req.ClassTypeID, req.InstructorID, req.DayOfWeek, req.StartTime, req.EndTime, req.Role)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateFixedSlot: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{}
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Справочные данные
		today := time.Now()
		snap, err := uc.loader.ForRange(txCtx, domain.NewDateRange(today, today))
		if err != nil {
			return fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
		}
		ct, ok := snap.ClassType(req.ClassTypeID)
		if !ok {
			return ErrClassTypeNotFound
		}

		// 3. Время
		end, err := resolveEnd(req, ct)
		if err != nil {
			return err
		}
		if err := validateTimeRange(req.StartTime, end); err != nil {
			return err
		}
		if !fitsAvailability(ct, req.DayOfWeek, req.StartTime, end) {
			return fmt.Errorf("%w: day=%d %s-%s", ErrOutsideAvailability, req.DayOfWeek, req.StartTime, end)
		}

		// 4. Общее помещение
		if res := conflict.CheckWindow(snap, ct.ID, req.DayOfWeek, req.StartTime, end); res.Occupied {
			return fmt.Errorf("%w: by %s slot=%s %s-%s",
				ErrConflictOccupied, res.By.ID, res.Slot.ID, res.Window.Start, res.Window.End)
		}

		// 5. Создаем слот
		created, err := uc.slotRepo.Create(txCtx, &domain.FixedSlot{
			ID:               uuid.NewString(),
			ClassTypeID:      ct.ID,
			InstructorID:     req.InstructorID,
			DayOfWeek:        req.DayOfWeek,
			StartTime:        req.StartTime,
			EndTime:          end,
			CapacityOverride: req.CapacityOverride,
			Note:             req.Note,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
		}
		resp.Slot = created

		resp.Turma = 1
		for _, other := range snap.FixedSlotsOf(ct.ID) {
			if other.DayOfWeek == created.DayOfWeek && other.Key() == created.Key() {
				resp.Turma++
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateFixedSlot: %v", err)
		} else {
			uc.logger.Warn("CreateFixedSlot: rejected: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateFixedSlot: created id=%s, turma size=%d", resp.Slot.ID, resp.Turma)
	return resp, nil
}
