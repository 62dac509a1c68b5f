package students

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/namematch"
	studentRepo "github.com/m04kA/SMC-StudioSchedule/internal/infra/storage/student"
)

const defaultMatchLimit = 5

var validate = validator.New()

// Service сервис учеников
type Service struct {
	studentRepo StudentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса учеников
func NewService(studentRepo StudentRepository, logger Logger) *Service {
	return &Service{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Create создает ученика
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.Student, error) {
	req.Name = strings.TrimSpace(req.Name)
	s.logger.Info("CreateStudent: name=%q, role=%s", req.Name, req.Role)

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("CreateStudent: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !req.Role.IsPrivileged() {
		return nil, ErrAccessDenied
	}

	created, err := s.studentRepo.Create(ctx, &domain.Student{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Waitlisted:     req.Waitlisted,
		PartnershipTag: req.PartnershipTag,
		Note:           req.Note,
	})
	if err != nil {
		s.logger.Error("CreateStudent: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateStudent: created id=%s", created.ID)
	return created, nil
}

// SetStatus меняет статус ученика (active, frozen, inactive взаимоисключающие)
// и признак листа ожидания независимо от статуса
func (s *Service) SetStatus(ctx context.Context, req *SetStatusRequest) (*domain.Student, error) {
	s.logger.Info("SetStudentStatus: id=%s, status=%q, role=%s", req.StudentID, req.Status, req.Role)

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("SetStudentStatus: validation failed: %v", err)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && verrs[0].Field() == "Status" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Status == "" && req.Waitlisted == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if !req.Role.IsPrivileged() {
		return nil, ErrAccessDenied
	}

	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			s.logger.Warn("SetStudentStatus: id=%s not found", req.StudentID)
			return nil, ErrStudentNotFound
		}
		s.logger.Error("SetStudentStatus: repository error for id=%s: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: SetStatus - get student: %v", ErrInternal, err)
	}

	if req.Status != "" {
		student.SetStatus(domain.StudentStatus(req.Status))
	}
	if req.Waitlisted != nil {
		student.Waitlisted = *req.Waitlisted
	}

	if err := s.studentRepo.UpdateStatus(ctx, student); err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("SetStudentStatus: repository error for id=%s: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: SetStatus - update: %v", ErrInternal, err)
	}

	s.logger.Info("SetStudentStatus: id=%s is now %s, waitlisted=%t", student.ID, student.Status(), student.Waitlisted)
	return student, nil
}

// Match ищет существующих учеников, похожих на имя
func (s *Service) Match(ctx context.Context, req *MatchRequest) (*MatchResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	limit := req.Limit
	if limit == 0 {
		limit = defaultMatchLimit
	}

	list, err := s.studentRepo.List(ctx)
	if err != nil {
		s.logger.Error("MatchStudent: repository error: %v", err)
		return nil, fmt.Errorf("%w: Match - list students: %v", ErrInternal, err)
	}

	candidates := Candidates(list)
	found := namematch.Find(req.Name, candidates)

	resp := &MatchResponse{
		Best:          found.Best,
		NeedsDecision: found.NeedsDecision,
	}
	for _, m := range namematch.Rank(req.Name, candidates, limit) {
		if m.Score > 0 {
			resp.Alternatives = append(resp.Alternatives, m)
		}
	}

	s.logger.Info("MatchStudent: name=%q, candidates=%d, needsDecision=%t", req.Name, len(resp.Alternatives), resp.NeedsDecision)
	return resp, nil
}

// Candidates кандидаты для сопоставления имен
func Candidates(list []*domain.Student) []namematch.Candidate {
	result := make([]namematch.Candidate, 0, len(list))
	for _, st := range list {
		result = append(result, namematch.Candidate{ID: st.ID, Name: st.Name})
	}
	return result
}
