package trials

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/booking"
)

// Допустимые переходы статусов пробного занятия
// Отмененное занятие не восстанавливается: место могло быть уже занято
var transitions = map[domain.TrialStatus][]domain.TrialStatus{
	domain.TrialScheduled: {domain.TrialApproved, domain.TrialCancelled},
	domain.TrialApproved:  {domain.TrialCancelled},
}

// SetStatusRequest запрос на смену статуса пробного занятия
// Повтор текущего статуса допустим, если передана отметка о посещении
type SetStatusRequest struct {
	TrialID  string
	Status   domain.TrialStatus
	Attended *bool
	Role     domain.Role
}

// Service сервис пробных занятий
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса пробных занятий
func NewService(bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// SetStatus меняет статус пробного занятия
func (s *Service) SetStatus(ctx context.Context, req *SetStatusRequest) (*domain.TrialBooking, error) {
	s.logger.Info("SetTrialStatus: id=%s, status=%s, role=%s", req.TrialID, req.Status, req.Role)

	if req.TrialID == "" {
		return nil, fmt.Errorf("%w: trial id is required", ErrInvalidInput)
	}
	if !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}
	if !req.Role.IsPrivileged() {
		return nil, ErrAccessDenied
	}

	var result *domain.TrialBooking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		trial, err := s.bookingRepo.GetTrialBooking(txCtx, req.TrialID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrTrialNotFound) {
				return ErrTrialNotFound
			}
			return fmt.Errorf("%w: SetStatus - get trial: %v", ErrInternal, err)
		}

		sameStatus := trial.Status == req.Status
		if !(sameStatus && req.Attended != nil) && !canTransition(trial.Status, req.Status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, trial.Status, req.Status)
		}

		attended := trial.Attended
		if req.Attended != nil {
			attended = req.Attended
		}
		now := s.timeProvider.Now()
		if err := s.bookingRepo.PatchTrialStatus(txCtx, trial.ID, req.Status, attended, now); err != nil {
			return fmt.Errorf("%w: SetStatus - patch: %v", ErrInternal, err)
		}

		trial.Status = req.Status
		trial.Attended = attended
		trial.UpdatedAt = now
		result = trial
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("SetTrialStatus: %v", err)
		} else {
			s.logger.Warn("SetTrialStatus: rejected id=%s: %v", req.TrialID, err)
		}
		return nil, err
	}

	s.logger.Info("SetTrialStatus: id=%s is now %s", result.ID, result.Status)
	return result, nil
}

func canTransition(from, to domain.TrialStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
