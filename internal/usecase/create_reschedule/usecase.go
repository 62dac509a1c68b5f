package create_reschedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
	rescheduleRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/reschedule"
	"github.com/m04kA/SMC-StudioSchedule/pkg/ptr"
)

const operation = "create_reschedule"

// UseCase use case создания заявки на перенос или отработку
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

// Execute создает заявку
// Привилегированные роли создают сразу одобренную заявку, остальные ждут рассмотрения.
// Вместимость назначения проверяется в обоих случаях
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReschedule: student=%s, origin=%s@%s, destination=%s@%s, makeup=%t, role=%s",
		req.StudentID, req.OriginSlotID, req.OriginDate.Format(domain.DateFormat),
		req.DestinationSlotID, req.DestinationDate.Format(domain.DateFormat), req.IsMakeup, req.Role)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReschedule: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	origin := domain.NewOccurrence(req.OriginSlotID, req.OriginDate)
	destination := domain.NewOccurrence(req.DestinationSlotID, req.DestinationDate)

	var result *domain.RescheduleRequest

	// 2. Все проверки и запись в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Блокируем оба занятия в постоянном порядке
		if err := lockOrdered(txCtx, uc.locker, origin, destination); err != nil {
			return fmt.Errorf("%w: failed to lock occurrences: %v", ErrInternal, err)
		}

		snap, err := uc.loader.ForOccurrences(txCtx, origin, destination)
		if err != nil {
			return fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
		}

		// 2.2. Слоты и даты
		originSlot, ok := snap.FixedSlot(origin.SlotID)
		if !ok {
			return fmt.Errorf("%w: origin %s", ErrSlotNotFound, origin.SlotID)
		}
		destSlot, ok := snap.FixedSlot(destination.SlotID)
		if !ok {
			return fmt.Errorf("%w: destination %s", ErrSlotNotFound, destination.SlotID)
		}
		if !originSlot.OccursOn(origin.Date) {
			return fmt.Errorf("%w: origin %s", ErrNotAnOccurrence, origin)
		}
		if !destSlot.OccursOn(destination.Date) {
			return fmt.Errorf("%w: destination %s", ErrNotAnOccurrence, destination)
		}
		if domain.IsDateInPast(destination.Date, now) {
			return fmt.Errorf("%w: destination %s", ErrDateInPast, destination)
		}
		if _, holiday := snap.HolidayOn(destination.Date); holiday {
			return ErrNonOperating
		}
		if snap.IsSlotBlocked(destSlot) {
			return ErrSlotBlocked
		}

		// 2.3. Ученик
		student, enrollment, err := resolveStudent(snap, req)
		if err != nil {
			return err
		}
		if !student.IsCountable() {
			return fmt.Errorf("%w: status=%s, waitlisted=%t", ErrStudentNotEligible, student.Status(), student.Waitlisted)
		}
		if err := validateOrigin(snap, req, student, now); err != nil {
			return err
		}
		if hasOpenRequest(snap, origin, student.ID) {
			return ErrDuplicateRequest
		}

		// 2.4. Вместимость назначения
		occupancy := roster.Resolve(snap, destination.SlotID, destination.Date)
		if occupancy.Has(student.ID) {
			return ErrAlreadyAttending
		}
		if occupancy.IsFull {
			uc.metrics.ObserveCapacityRejection(operation)
			return fmt.Errorf("%w: %d/%d", ErrDestinationFull, occupancy.ActiveCount, occupancy.Capacity)
		}

		// 2.5. Создаем заявку
		request := &domain.RescheduleRequest{
			ID:                uuid.NewString(),
			StudentID:         student.ID,
			OriginSlotID:      origin.SlotID,
			OriginDate:        origin.Date,
			DestinationSlotID: destination.SlotID,
			DestinationDate:   destination.Date,
			DestinationStart:  destSlot.StartTime,
			DestinationEnd:    destSlot.EndTime,
			Status:            domain.ReschedulePending,
			IsMakeup:          req.IsMakeup,
			Reason:            req.Reason,
			RequestedBy:       req.RequestedBy,
		}
		if enrollment != nil {
			request.OriginEnrollmentID = ptr.Ptr(enrollment.ID)
		}
		if req.Role.IsPrivileged() {
			request.Status = domain.RescheduleApproved
			request.ReviewedBy = ptr.Ptr(req.RequestedBy)
			request.ReviewedAt = ptr.Ptr(now)
		}

		created, err := uc.rescheduleRepo.Create(txCtx, request)
		if err != nil {
			if errors.Is(err, rescheduleRepo.ErrDuplicateOpenRequest) {
				return ErrDuplicateRequest
			}
			return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
		}
		result = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateReschedule: %v", err)
		} else {
			uc.logger.Warn("CreateReschedule: rejected: %v", err)
		}
		return nil, err
	}

	uc.metrics.ObserveRescheduleTransition(string(result.Status))
	uc.logger.Info("CreateReschedule: created id=%s, status=%s", result.ID, result.Status)

	// 3. Возвращаем актуальный состав обоих занятий
	resp := &Response{Request: result}
	snap, err := uc.loader.ForOccurrences(ctx, origin, destination)
	if err != nil {
		uc.logger.Warn("CreateReschedule: request id=%s saved, occupancy unavailable: %v", result.ID, err)
		return resp, nil
	}
	resp.Origin = roster.Resolve(snap, origin.SlotID, origin.Date)
	resp.Destination = roster.Resolve(snap, destination.SlotID, destination.Date)
	return resp, nil
}

// lockOrdered берет блокировки по возрастанию ключа занятия
func lockOrdered(ctx context.Context, locker OccurrenceLocker, a, b domain.Occurrence) error {
	if b.Key() < a.Key() {
		a, b = b, a
	}
	if err := locker.LockOccurrence(ctx, a); err != nil {
		return err
	}
	return locker.LockOccurrence(ctx, b)
}
