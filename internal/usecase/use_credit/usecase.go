package use_credit

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
	bookingRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/booking"
)

const operation = "use_credit"

// UseCase use case разового посещения за кредит
type UseCase struct {
	bookingRepo  BookingRepository
	loader       SnapshotLoader
	locker       OccurrenceLocker
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	loader SnapshotLoader,
	locker OccurrenceLocker,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		loader:       loader,
		locker:       locker,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute записывает ученика на занятие за кредит
// Повтор по (слот, дата, ученик) отклоняется, как и запись ученика, который уже в составе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	occ := domain.NewOccurrence(req.FixedSlotID, req.Date)
	uc.logger.Info("UseCredit: student=%s, occurrence=%s, credit=%s", req.StudentID, occ, req.CreditRef)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UseCredit: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	resp := &Response{}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.locker.LockOccurrence(txCtx, occ); err != nil {
			return fmt.Errorf("%w: failed to lock occurrence: %v", ErrInternal, err)
		}
		snap, err := uc.loader.ForOccurrences(txCtx, occ)
		if err != nil {
			return fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
		}

		// 2. Слот и дата
		slot, ok := snap.FixedSlot(occ.SlotID)
		if !ok {
			return ErrSlotNotFound
		}
		if !slot.OccursOn(occ.Date) {
			return ErrNotAnOccurrence
		}
		if domain.IsDateInPast(occ.Date, now) {
			return ErrDateInPast
		}
		if _, holiday := snap.HolidayOn(occ.Date); holiday {
			return ErrNonOperating
		}
		if snap.IsSlotBlocked(slot) {
			return ErrSlotBlocked
		}

		// 3. Ученик
		student, ok := snap.Student(req.StudentID)
		if !ok {
			return ErrStudentNotFound
		}
		if !student.IsCountable() {
			return ErrStudentNotEligible
		}

		// 4. Состав и вместимость
		occupancy := roster.Resolve(snap, occ.SlotID, occ.Date)
		if occupancy.Has(student.ID) {
			return ErrAlreadyAttending
		}
		if occupancy.IsFull {
			uc.metrics.ObserveCapacityRejection(operation)
			return fmt.Errorf("%w: %d/%d", ErrSlotFull, occupancy.ActiveCount, occupancy.Capacity)
		}

		// 5. Создаем посещение
		created, err := uc.bookingRepo.CreateCreditUsage(txCtx, &domain.CreditUsage{
			ID:          uuid.NewString(),
			StudentID:   student.ID,
			FixedSlotID: occ.SlotID,
			Date:        occ.Date,
			CreditRef:   req.CreditRef,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrCreditAlreadyUsed) {
				return ErrAlreadyAttending
			}
			return fmt.Errorf("%w: failed to create credit usage: %v", ErrInternal, err)
		}
		resp.Credit = created

		snap, err = uc.loader.ForOccurrences(txCtx, occ)
		if err != nil {
			return fmt.Errorf("%w: failed to reload snapshot: %v", ErrInternal, err)
		}
		resp.Occupancy = roster.Resolve(snap, occ.SlotID, occ.Date)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("UseCredit: %v", err)
		} else {
			uc.logger.Warn("UseCredit: rejected occurrence=%s: %v", occ, err)
		}
		return nil, err
	}

	uc.logger.Info("UseCredit: created id=%s, occupancy=%d/%d",
		resp.Credit.ID, resp.Occupancy.ActiveCount, resp.Occupancy.Capacity)
	return resp, nil
}
