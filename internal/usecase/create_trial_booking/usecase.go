package create_trial_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
)

const operation = "create_trial_booking"

// UseCase use case записи на пробное занятие
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

// Execute записывает контакт на пробное занятие, если в занятии есть место
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	occ := domain.NewOccurrence(req.FixedSlotID, req.Date)
	uc.logger.Info("CreateTrialBooking: occurrence=%s, contact=%s", occ, req.ContactName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTrialBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	phone := normalizePhone(req.ContactPhone)
	resp := &Response{}

	// 2. Проверка мест и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.locker.LockOccurrence(txCtx, occ); err != nil {
			return fmt.Errorf("%w: failed to lock occurrence: %v", ErrInternal, err)
		}
		snap, err := uc.loader.ForOccurrences(txCtx, occ)
		if err != nil {
			return fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
		}

		// 2.1. Слот и дата
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

		// 2.2. Повторная запись и вместимость
		if isDuplicate(snap, occ, phone) {
			return ErrDuplicateTrial
		}
		occupancy := roster.Resolve(snap, occ.SlotID, occ.Date)
		if occupancy.IsFull {
			uc.metrics.ObserveCapacityRejection(operation)
			return fmt.Errorf("%w: %d/%d", ErrSlotFull, occupancy.ActiveCount, occupancy.Capacity)
		}

		// 2.3. Создаем запись
		created, err := uc.bookingRepo.CreateTrialBooking(txCtx, &domain.TrialBooking{
			ID:           uuid.NewString(),
			FixedSlotID:  occ.SlotID,
			Date:         occ.Date,
			ContactName:  req.ContactName,
			ContactPhone: req.ContactPhone,
			ContactEmail: req.ContactEmail,
			Status:       domain.TrialScheduled,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create trial booking: %v", ErrInternal, err)
		}
		resp.Trial = created

		snap, err = uc.loader.ForOccurrences(txCtx, occ)
		if err != nil {
			return fmt.Errorf("%w: failed to reload snapshot: %v", ErrInternal, err)
		}
		resp.Occupancy = roster.Resolve(snap, occ.SlotID, occ.Date)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateTrialBooking: %v", err)
		} else {
			uc.logger.Warn("CreateTrialBooking: rejected occurrence=%s: %v", occ, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateTrialBooking: created id=%s, occupancy=%d/%d",
		resp.Trial.ID, resp.Occupancy.ActiveCount, resp.Occupancy.Capacity)
	return resp, nil
}
