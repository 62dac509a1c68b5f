package enrollments

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	fixedSlotRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/fixedslot"
	studentRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/student"
)

var validate = validator.New()

// Service сервис постоянных записей на слоты
type Service struct {
	slotRepo      FixedSlotRepository
	classTypeRepo ClassTypeRepository
	studentRepo   StudentRepository
	txManager     TransactionManager
	metrics       Metrics
	logger        Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	slotRepo FixedSlotRepository,
	classTypeRepo ClassTypeRepository,
	studentRepo StudentRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:      slotRepo,
		classTypeRepo: classTypeRepo,
		studentRepo:   studentRepo,
		txManager:     txManager,
		metrics:       metrics,
		logger:        logger,
	}
}

// Add записывает ученика на слот
// Вместимость проверяется по постоянному составу: учитываются только активные ученики
func (s *Service) Add(ctx context.Context, req *AddRequest) (*domain.Enrollment, error) {
	s.logger.Info("AddEnrollment: slot=%s, student=%s, role=%s", req.FixedSlotID, req.StudentID, req.Role)

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("AddEnrollment: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !req.Role.IsPrivileged() {
		s.logger.Warn("AddEnrollment: role=%s is not allowed", req.Role)
		return nil, ErrAccessDenied
	}

	var result *domain.Enrollment
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := s.slotRepo.GetByID(txCtx, req.FixedSlotID)
		if err != nil {
			if errors.Is(err, fixedSlotRepo.ErrFixedSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: Add - get slot: %v", ErrInternal, err)
		}

		classType, err := s.classTypeRepo.GetByID(txCtx, slot.ClassTypeID)
		if err != nil {
			return fmt.Errorf("%w: Add - get class type: %v", ErrInternal, err)
		}

		student, err := s.studentRepo.GetByID(txCtx, req.StudentID)
		if err != nil {
			if errors.Is(err, studentRepo.ErrStudentNotFound) {
				return ErrStudentNotFound
			}
			return fmt.Errorf("%w: Add - get student: %v", ErrInternal, err)
		}

		enrolled, err := s.studentRepo.ListEnrollments(txCtx, &slot.ID)
		if err != nil {
			return fmt.Errorf("%w: Add - list enrollments: %v", ErrInternal, err)
		}

		active := 0
		for _, e := range enrolled {
			if e.StudentID == student.ID {
				return ErrAlreadyEnrolled
			}
			other, err := s.studentRepo.GetByID(txCtx, e.StudentID)
			if err != nil {
				if errors.Is(err, studentRepo.ErrStudentNotFound) {
					continue
				}
				return fmt.Errorf("%w: Add - get enrolled student: %v", ErrInternal, err)
			}
			if other.IsCountable() {
				active++
			}
		}

		capacity := slot.EffectiveCapacity(classType)
		if student.IsCountable() && active >= capacity {
			s.metrics.ObserveCapacityRejection("add_enrollment")
			s.logger.Warn("AddEnrollment: slot=%s is full, %d/%d", slot.ID, active, capacity)
			return ErrSlotFull
		}

		created, err := s.studentRepo.CreateEnrollment(txCtx, &domain.Enrollment{
			ID:          uuid.NewString(),
			FixedSlotID: slot.ID,
			StudentID:   student.ID,
			Note:        req.Note,
		})
		if err != nil {
			if errors.Is(err, studentRepo.ErrAlreadyEnrolled) {
				return ErrAlreadyEnrolled
			}
			return fmt.Errorf("%w: Add - create enrollment: %v", ErrInternal, err)
		}
		result = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("AddEnrollment: %v", err)
		}
		return nil, err
	}

	s.logger.Info("AddEnrollment: created enrollment id=%s", result.ID)
	return result, nil
}

// Remove удаляет постоянную запись
func (s *Service) Remove(ctx context.Context, enrollmentID string, role domain.Role) error {
	s.logger.Info("RemoveEnrollment: id=%s, role=%s", enrollmentID, role)

	if enrollmentID == "" {
		return fmt.Errorf("%w: enrollment id is required", ErrInvalidInput)
	}
	if !role.IsPrivileged() {
		s.logger.Warn("RemoveEnrollment: role=%s is not allowed", role)
		return ErrAccessDenied
	}

	if err := s.studentRepo.DeleteEnrollment(ctx, enrollmentID); err != nil {
		if errors.Is(err, studentRepo.ErrEnrollmentNotFound) {
			s.logger.Warn("RemoveEnrollment: id=%s not found", enrollmentID)
			return ErrEnrollmentNotFound
		}
		s.logger.Error("RemoveEnrollment: repository error for id=%s: %v", enrollmentID, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveEnrollment: removed id=%s", enrollmentID)
	return nil
}
