package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/roster"
	sessionRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/session"
)

var validate = validator.New()

// Service сервис журналов посещаемости
type Service struct {
	sessionRepo  SessionRepository
	loader       SnapshotLoader
	locker       OccurrenceLocker
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса журналов
func NewService(
	sessionRepo SessionRepository,
	loader SnapshotLoader,
	locker OccurrenceLocker,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		loader:       loader,
		locker:       locker,
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

// Finalize создает итог занятия или исправляет уже сохраненный
// Отметки могут ссылаться только на участников, которых показывает расчет состава
func (s *Service) Finalize(ctx context.Context, req *FinalizeRequest) (*FinalizeResponse, error) {
	occ := domain.NewOccurrence(req.FixedSlotID, req.Date)
	s.logger.Info("FinalizeSession: occurrence=%s, entries=%d, role=%s", occ, len(req.Entries), req.Role)

	// 1. Валидация
	if err := validate.Struct(req); err != nil {
		s.logger.Warn("FinalizeSession: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !req.Role.IsPrivileged() {
		return nil, ErrAccessDenied
	}
	if occ.Date.After(domain.DateOnly(s.timeProvider.Now())) {
		return nil, ErrFutureSession
	}

	var resp *FinalizeResponse
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Блокируем занятие
		if err := s.locker.LockOccurrence(txCtx, occ); err != nil {
			return fmt.Errorf("%w: Finalize - lock: %v", ErrInternal, err)
		}

		// 3. Проверяем слот и дату
		snap, err := s.loader.ForOccurrences(txCtx, occ)
		if err != nil {
			return fmt.Errorf("%w: Finalize - load snapshot: %v", ErrInternal, err)
		}
		slot, ok := snap.FixedSlot(occ.SlotID)
		if !ok {
			return ErrSlotNotFound
		}
		if !slot.OccursOn(occ.Date) {
			return ErrNotAnOccurrence
		}

		// 4. Сверяем отметки с составом
		occupancy := roster.Resolve(snap, occ.SlotID, occ.Date)
		refs := make(map[string]struct{}, len(occupancy.Attendees))
		for _, a := range occupancy.Attendees {
			refs[a.Ref] = struct{}{}
		}
		entries := make([]domain.AttendanceEntry, 0, len(req.Entries))
		seen := make(map[string]struct{}, len(req.Entries))
		for _, e := range req.Entries {
			if _, ok := refs[e.StudentRef]; !ok {
				return fmt.Errorf("%w: ref=%s", ErrUnknownAttendee, e.StudentRef)
			}
			if _, dup := seen[e.StudentRef]; dup {
				return fmt.Errorf("%w: ref=%s", ErrDuplicateEntry, e.StudentRef)
			}
			seen[e.StudentRef] = struct{}{}
			entries = append(entries, domain.AttendanceEntry{StudentRef: e.StudentRef, Present: e.Present})
		}

		// 5. Создаем или исправляем итог
		existing, err := s.sessionRepo.Get(txCtx, occ.SlotID, occ.Date)
		switch {
		case err == nil:
			existing.Entries = entries
			existing.Recount()
			existing.UpdatedAt = s.timeProvider.Now()
			if err := s.sessionRepo.UpdateEntries(txCtx, existing); err != nil {
				return fmt.Errorf("%w: Finalize - update entries: %v", ErrInternal, err)
			}
			resp = &FinalizeResponse{Record: existing, Corrected: true}
			return nil
		case errors.Is(err, sessionRepo.ErrSessionNotFound):
		default:
			return fmt.Errorf("%w: Finalize - get session: %v", ErrInternal, err)
		}

		rec := &domain.SessionRecord{
			ID:          uuid.NewString(),
			FixedSlotID: occ.SlotID,
			Date:        occ.Date,
			Entries:     entries,
		}
		rec.Recount()
		created, err := s.sessionRepo.Create(txCtx, rec)
		if err != nil {
			return fmt.Errorf("%w: Finalize - create session: %v", ErrInternal, err)
		}
		resp = &FinalizeResponse{Record: created}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("FinalizeSession: %v", err)
		} else {
			s.logger.Warn("FinalizeSession: rejected occurrence=%s: %v", occ, err)
		}
		return nil, err
	}

	s.logger.Info("FinalizeSession: occurrence=%s saved id=%s, present=%d, absent=%d, corrected=%t",
		occ, resp.Record.ID, resp.Record.PresentCount, resp.Record.AbsentCount, resp.Corrected)
	return resp, nil
}
