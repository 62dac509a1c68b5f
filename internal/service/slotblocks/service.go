package slotblocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	classTypeRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/classtype"
	"github.com/m04kA/SMC-StudioSchedule/pkg/types"
)

// ToggleRequest запрос на переключение ручной блокировки ячейки сетки
type ToggleRequest struct {
	ClassTypeID string
	DayOfWeek   int
	Time        types.TimeString
	Role        domain.Role
}

// ToggleResult состояние ячейки после переключения
type ToggleResult struct {
	Blocked bool
	Block   *domain.SlotBlock
}

// Service сервис ручных блокировок ячеек
type Service struct {
	classTypeRepo ClassTypeRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(classTypeRepo ClassTypeRepository, logger Logger) *Service {
	return &Service{classTypeRepo: classTypeRepo, logger: logger}
}

// Toggle ставит блокировку, если ее нет, иначе снимает
func (s *Service) Toggle(ctx context.Context, req *ToggleRequest) (*ToggleResult, error) {
	s.logger.Info("ToggleSlotBlock: classType=%s, day=%d, time=%s, role=%s",
		req.ClassTypeID, req.DayOfWeek, req.Time, req.Role)

	// 1. Валидация
	if req.ClassTypeID == "" {
		return nil, fmt.Errorf("%w: classTypeId is required", ErrInvalidInput)
	}
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}
	if !req.Role.IsPrivileged() {
		s.logger.Warn("ToggleSlotBlock: role=%s is not allowed", req.Role)
		return nil, ErrAccessDenied
	}

	// 2. Модальность должна существовать
	if _, err := s.classTypeRepo.GetByID(ctx, req.ClassTypeID); err != nil {
		if errors.Is(err, classTypeRepo.ErrClassTypeNotFound) {
			return nil, ErrClassTypeNotFound
		}
		s.logger.Error("ToggleSlotBlock: failed to get class type=%s: %v", req.ClassTypeID, err)
		return nil, fmt.Errorf("%w: Toggle - get class type: %v", ErrInternal, err)
	}

	// 3. Переключаем
	block := &domain.SlotBlock{
		ID:          uuid.NewString(),
		ClassTypeID: req.ClassTypeID,
		DayOfWeek:   req.DayOfWeek,
		Time:        req.Time,
		Manual:      true,
	}
	created, err := s.classTypeRepo.ToggleSlotBlock(ctx, block)
	if err != nil {
		s.logger.Error("ToggleSlotBlock: repository error: %v", err)
		return nil, fmt.Errorf("%w: Toggle - repository error: %v", ErrInternal, err)
	}

	if !created {
		s.logger.Info("ToggleSlotBlock: block removed")
		return &ToggleResult{Blocked: false}, nil
	}
	s.logger.Info("ToggleSlotBlock: block created id=%s", block.ID)
	return &ToggleResult{Blocked: true, Block: block}, nil
}
