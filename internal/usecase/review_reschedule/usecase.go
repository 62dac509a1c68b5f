package review_reschedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
	rescheduleRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/reschedule"
)

const operation = "approve_reschedule"

// UseCase use case рассмотрения заявки на перенос
type UseCase struct {
	rescheduleRepo RescheduleRepository
	loader         SnapshotLoader
	locker         OccurrenceLocker
	txManager      TransactionManager
	metrics        Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rescheduleRepo RescheduleRepository,
	loader SnapshotLoader,
	locker OccurrenceLocker,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		rescheduleRepo: rescheduleRepo,
		loader:         loader,
		locker:         locker,
		txManager:      txManager,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute одобряет или отклоняет заявку в статусе pending
// При одобрении вместимость назначения проверяется заново под блокировкой занятия,
// поэтому из двух одновременных одобрений на последнее место проходит только одно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReviewReschedule: id=%s, action=%s, reviewer=%s, role=%s", req.RequestID, req.Action, req.ReviewerID, req.Role)

	// 1. Валидация и проверка роли
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReviewReschedule: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	target := req.Action.target()
	var result *domain.RescheduleRequest

	// 2. Переход статуса в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		request, err := uc.rescheduleRepo.GetByID(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, rescheduleRepo.ErrRescheduleNotFound) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}
		if !domain.CanTransition(request.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, request.Status, target)
		}

		// 2.1. Повторная проверка вместимости при одобрении
		if target == domain.RescheduleApproved {
			if err := uc.checkDestination(txCtx, request, now); err != nil {
				return err
			}
		}

		if err := uc.rescheduleRepo.PatchStatus(txCtx, request.ID, target, &req.ReviewerID, now); err != nil {
			if errors.Is(err, rescheduleRepo.ErrRescheduleNotFound) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("%w: failed to patch status: %v", ErrInternal, err)
		}
		request.Status = target
		request.ReviewedBy = &req.ReviewerID
		request.ReviewedAt = &now
		result = request
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("ReviewReschedule: %v", err)
		} else {
			uc.logger.Warn("ReviewReschedule: id=%s rejected: %v", req.RequestID, err)
		}
		return nil, err
	}

	uc.metrics.ObserveRescheduleTransition(string(target))
	uc.logger.Info("ReviewReschedule: id=%s is %s", result.ID, result.Status)

	// 3. Актуальный состав занятия назначения
	resp := &Response{Request: result}
	dest := result.Destination()
	if snap, err := uc.loader.ForOccurrences(ctx, dest); err == nil {
		resp.Destination = roster.Resolve(snap, dest.SlotID, dest.Date)
	} else {
		uc.logger.Warn("ReviewReschedule: id=%s saved, occupancy unavailable: %v", result.ID, err)
	}
	return resp, nil
}

// checkDestination проверяет занятие назначения без учета самой заявки
func (uc *UseCase) checkDestination(ctx context.Context, request *domain.RescheduleRequest, now time.Time) error {
	origin, dest := request.Origin(), request.Destination()
	if domain.IsDateInPast(dest.Date, now) {
		return fmt.Errorf("%w: %s", ErrDestinationPassed, dest)
	}

	first, second := origin, dest
	if second.Key() < first.Key() {
		first, second = second, first
	}
	if err := uc.locker.LockOccurrence(ctx, first); err != nil {
		return fmt.Errorf("%w: failed to lock %s: %v", ErrInternal, first, err)
	}
	if err := uc.locker.LockOccurrence(ctx, second); err != nil {
		return fmt.Errorf("%w: failed to lock %s: %v", ErrInternal, second, err)
	}

	snap, err := uc.loader.ForOccurrences(ctx, origin, dest)
	if err != nil {
		return fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}
	student, ok := snap.Student(request.StudentID)
	if !ok || !student.IsCountable() {
		return ErrStudentNotEligible
	}

	occupancy := roster.Resolve(snap, dest.SlotID, dest.Date, roster.WithoutRequest(request.ID))
	if occupancy.Has(student.ID) {
		return ErrAlreadyAttending
	}
	if occupancy.IsFull {
		uc.metrics.ObserveCapacityRejection(operation)
		uc.logger.Warn("ReviewReschedule: destination %s is full, %d/%d", dest, occupancy.ActiveCount, occupancy.Capacity)
		return fmt.Errorf("%w: %d/%d", ErrDestinationFull, occupancy.ActiveCount, occupancy.Capacity)
	}
	return nil
}
