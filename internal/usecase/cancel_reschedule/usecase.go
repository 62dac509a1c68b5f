package cancel_reschedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
	rescheduleRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/reschedule"
	sessionRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/session"
)

const operation = "cancel_reschedule"

// UseCase use case отмены заявки на перенос
type UseCase struct {
	rescheduleRepo RescheduleRepository
	sessionRepo    SessionRepository
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
	sessionRepo SessionRepository,
	loader SnapshotLoader,
	locker OccurrenceLocker,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		rescheduleRepo: rescheduleRepo,
		sessionRepo:    sessionRepo,
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

// Execute отменяет заявку
// pending удаляется, approved переводится в cancelled, пока занятие назначения не прошло и не закрыто итогом
// Отмена переноса возвращает ученика в исходное занятие, если там есть место
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelReschedule: id=%s, actor=%s, role=%s", req.RequestID, req.ActorID, req.Role)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelReschedule: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	resp := &Response{}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Заявка и права
		request, err := uc.rescheduleRepo.GetByID(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, rescheduleRepo.ErrRescheduleNotFound) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}
		if !canCancel(req, request) {
			return ErrAccessDenied
		}

		switch request.Status {
		// 3. Заявка в ожидании удаляется
		case domain.ReschedulePending:
			if err := uc.rescheduleRepo.Delete(txCtx, request.ID); err != nil {
				return fmt.Errorf("%w: failed to delete request: %v", ErrInternal, err)
			}
			resp.Request = request
			resp.Deleted = true
			return nil

		// 4. Одобренная заявка отменяется с сохранением истории
		case domain.RescheduleApproved:
			if err := validateApprovedCancel(request, now); err != nil {
				return err
			}
			_, err := uc.sessionRepo.Get(txCtx, request.DestinationSlotID, request.DestinationDate)
			switch {
			case err == nil:
				return ErrAlreadySettled
			case !errors.Is(err, sessionRepo.ErrSessionNotFound):
				return fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
			}
			if !request.IsMakeup {
				if err := uc.checkOrigin(txCtx, request); err != nil {
					return err
				}
			}
			if err := uc.rescheduleRepo.PatchStatus(txCtx, request.ID, domain.RescheduleCancelled, nil, now); err != nil {
				return fmt.Errorf("%w: failed to patch status: %v", ErrInternal, err)
			}
			request.Status = domain.RescheduleCancelled
			request.UpdatedAt = now
			resp.Request = request
			return nil

		default:
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, request.Status, domain.RescheduleCancelled)
		}
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CancelReschedule: %v", err)
		} else {
			uc.logger.Warn("CancelReschedule: id=%s rejected: %v", req.RequestID, err)
		}
		return nil, err
	}

	uc.metrics.ObserveRescheduleTransition(string(domain.RescheduleCancelled))
	uc.logger.Info("CancelReschedule: id=%s cancelled, deleted=%t", req.RequestID, resp.Deleted)
	return resp, nil
}

// checkOrigin проверяет, что ученику есть куда вернуться
// Состав считается так, будто заявки нет: ученик уже учтен в исходном занятии
func (uc *UseCase) checkOrigin(ctx context.Context, request *domain.RescheduleRequest) error {
	origin := request.Origin()
	if err := uc.locker.LockOccurrence(ctx, origin); err != nil {
		return fmt.Errorf("%w: failed to lock %s: %v", ErrInternal, origin, err)
	}

	snap, err := uc.loader.ForOccurrences(ctx, origin)
	if err != nil {
		return fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	occupancy := roster.Resolve(snap, origin.SlotID, origin.Date, roster.WithoutRequest(request.ID))
	if occupancy.ActiveCount > occupancy.Capacity {
		uc.metrics.ObserveCapacityRejection(operation)
		uc.logger.Warn("CancelReschedule: origin %s is full, %d/%d", origin, occupancy.ActiveCount, occupancy.Capacity)
		return fmt.Errorf("%w: %d/%d", ErrOriginFull, occupancy.ActiveCount, occupancy.Capacity)
	}
	return nil
}
