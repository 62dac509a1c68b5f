package import_students

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/internal/engine/namematch"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/enrollments"
	"github.com/m04kA/SMC-StudioSchedule/internal/service/students"
)

// UseCase use case массового импорта учеников
type UseCase struct {
	studentRepo StudentRepository
	enrollments EnrollmentService
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	studentRepo StudentRepository,
	enrollments EnrollmentService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		studentRepo: studentRepo,
		enrollments: enrollments,
		txManager:   txManager,
		logger:      logger,
	}
}

// Preview сопоставляет имена из файла с существующими учениками
func (uc *UseCase) Preview(ctx context.Context, req *PreviewRequest) (*PreviewResponse, error) {
	// 1. Валидация входных данных
	if err := validatePreview(req); err != nil {
		uc.logger.Warn("PreviewImport: validation failed: %v", err)
		return nil, err
	}
	uc.logger.Info("PreviewImport: rows=%d, role=%s", len(req.Rows), req.Role)

	// 2. Текущий список учеников
	var candidates []namematch.Candidate
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		list, err := uc.studentRepo.List(txCtx)
		if err != nil {
			return err
		}
		candidates = students.Candidates(list)
		return nil
	})
	if err != nil {
		uc.logger.Error("PreviewImport: failed to list students: %v", err)
		return nil, fmt.Errorf("%w: failed to list students: %v", ErrInternal, err)
	}

	// 3. Кандидаты по каждой строке
	resp := &PreviewResponse{Items: make([]PreviewItem, 0, len(req.Rows))}
	for _, row := range req.Rows {
		found := namematch.Find(row.Name, candidates)
		item := PreviewItem{
			Line:          row.Line,
			Name:          row.Name,
			Best:          found.Best,
			NeedsDecision: found.NeedsDecision,
			Suggested:     namematch.DecisionCreate,
		}
		if found.NeedsDecision {
			item.Suggested = namematch.DecisionConfirm
			resp.NeedDecisions++
		}
		for _, m := range namematch.Rank(row.Name, candidates, alternativeLimit) {
			if m.Score > 0 {
				item.Alternatives = append(item.Alternatives, m)
			}
		}
		resp.Items = append(resp.Items, item)
	}

	uc.logger.Info("PreviewImport: %d of %d rows need a decision", resp.NeedDecisions, len(resp.Items))
	return resp, nil
}

// Commit применяет решения оператора построчно
// Каждая строка выполняется в своей транзакции: ошибка строки откатывает только ее
func (uc *UseCase) Commit(ctx context.Context, req *CommitRequest) (*CommitResponse, error) {
	// 1. Валидация входных данных
	if err := validateCommit(req); err != nil {
		uc.logger.Warn("CommitImport: validation failed: %v", err)
		return nil, err
	}
	uc.logger.Info("CommitImport: rows=%d, role=%s", len(req.Rows), req.Role)

	// 2. Текущий список учеников, созданные по ходу импорта добавляются в него
	var known []*domain.Student
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		known, err = uc.studentRepo.List(txCtx)
		return err
	})
	if err != nil {
		uc.logger.Error("CommitImport: failed to list students: %v", err)
		return nil, fmt.Errorf("%w: failed to list students: %v", ErrInternal, err)
	}

	// 3. Построчная обработка
	resp := &CommitResponse{Results: make([]RowResult, 0, len(req.Rows))}
	for _, row := range req.Rows {
		result, created, err := uc.commitRow(ctx, row, known, req.Role)
		if err != nil {
			uc.logger.Error("CommitImport: line %d: %v", row.Line, err)
			return nil, err
		}
		if created != nil {
			known = append(known, created)
		}

		switch result.Outcome {
		case OutcomeCreated:
			resp.Created++
		case OutcomeMatched:
			resp.Matched++
		case OutcomeSkipped:
			resp.Skipped++
		case OutcomeFailed:
			resp.Failed++
			uc.logger.Warn("CommitImport: line %d failed: %s", row.Line, result.Error)
		}
		resp.Results = append(resp.Results, result)
	}

	uc.logger.Info("CommitImport: created=%d, matched=%d, skipped=%d, failed=%d",
		resp.Created, resp.Matched, resp.Skipped, resp.Failed)
	return resp, nil
}

// commitRow обрабатывает одну строку
// Доменные ошибки строки попадают в RowResult, внутренние прерывают импорт
func (uc *UseCase) commitRow(ctx context.Context, row CommitRow, known []*domain.Student, role domain.Role) (RowResult, *domain.Student, error) {
	result := RowResult{Line: row.Line, Name: row.Name}
	if row.Decision == namematch.DecisionSkip {
		result.Outcome = OutcomeSkipped
		return result, nil, nil
	}

	var created *domain.Student
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created = nil

		// 1. Ученик строки
		studentID, err := resolveStudent(row, known)
		if err != nil {
			return err
		}
		result.Outcome = OutcomeMatched
		if row.Decision == namematch.DecisionCreate {
			created, err = uc.studentRepo.Create(txCtx, &domain.Student{
				ID:         uuid.NewString(),
				Name:       row.Name,
				Waitlisted: row.Waitlisted,
				Note:       row.Note,
			})
			if err != nil {
				return fmt.Errorf("%w: failed to create student: %v", ErrInternal, err)
			}
			studentID = created.ID
			result.Outcome = OutcomeCreated
		}
		result.StudentID = studentID

		// 2. Постоянная запись на слот
		if row.FixedSlotID == nil {
			return nil
		}
		enrollment, err := uc.enrollments.Add(txCtx, &enrollments.AddRequest{
			FixedSlotID: *row.FixedSlotID,
			StudentID:   studentID,
			Role:        role,
		})
		switch {
		case errors.Is(err, enrollments.ErrAlreadyEnrolled):
			result.AlreadyEnrolled = true
			return nil
		case errors.Is(err, enrollments.ErrInternal):
			return fmt.Errorf("%w: failed to enroll student: %v", ErrInternal, err)
		case err != nil:
			return err
		}
		result.EnrollmentID = enrollment.ID
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			return RowResult{}, nil, err
		}
		return RowResult{Line: row.Line, Name: row.Name, Outcome: OutcomeFailed, Error: err.Error()}, nil, nil
	}
	return result, created, nil
}

// resolveStudent ученик для решений confirm и choose, для create пустая строка
func resolveStudent(row CommitRow, known []*domain.Student) (string, error) {
	switch row.Decision {
	case namematch.DecisionChoose:
		if row.ChosenID == nil || *row.ChosenID == "" {
			return "", ErrChosenIDRequired
		}
		return lookup(*row.ChosenID, known)
	case namematch.DecisionConfirm:
		if row.ChosenID != nil && *row.ChosenID != "" {
			return lookup(*row.ChosenID, known)
		}
		found := namematch.Find(row.Name, students.Candidates(known))
		if !found.NeedsDecision {
			return "", ErrNothingToConfirm
		}
		return found.Best.Candidate.ID, nil
	default:
		return "", nil
	}
}

func lookup(id string, known []*domain.Student) (string, error) {
	for _, st := range known {
		if st.ID == id {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrCandidateNotFound, id)
}
