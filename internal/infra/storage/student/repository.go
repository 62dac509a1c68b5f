package student

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioSchedule/pkg/psqlbuilder"
)

var studentColumns = []string{
	"id",
	"name",
	"frozen",
	"inactive",
	"waitlisted",
	"partnership_tag",
	"note",
	"created_at",
	"updated_at",
}

var enrollmentColumns = []string{"id", "fixed_slot_id", "student_id", "note", "created_at"}

// Repository репозиторий учеников и их постоянных записей на слоты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория учеников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает ученика по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanStudent(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan student: %v", ErrScanRow, err)
	}
	return s, nil
}

// List возвращает всех учеников
func (r *Repository) List(ctx context.Context) ([]*domain.Student, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(studentColumns...).
		From("students").
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan student: %v", ErrScanRow, err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}
	return result, nil
}

// Create создает ученика
func (r *Repository) Create(ctx context.Context, s *domain.Student) (*domain.Student, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("students").
		Columns("id", "name", "frozen", "inactive", "waitlisted", "partnership_tag", "note").
		Values(s.ID, s.Name, s.Frozen, s.Inactive, s.Waitlisted, s.PartnershipTag, s.Note).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return s, nil
}

// UpdateStatus сохраняет флаги статуса ученика
func (r *Repository) UpdateStatus(ctx context.Context, s *domain.Student) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("students").
		Set("frozen", s.Frozen).
		Set("inactive", s.Inactive).
		Set("waitlisted", s.Waitlisted).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// ListEnrollments возвращает записи на слот или все записи, если fixedSlotID == nil
func (r *Repository) ListEnrollments(ctx context.Context, fixedSlotID *string) ([]*domain.Enrollment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(enrollmentColumns...).
		From("enrollments").
		OrderBy("fixed_slot_id", "created_at", "id")
	if fixedSlotID != nil {
		builder = builder.Where(squirrel.Eq{"fixed_slot_id": *fixedSlotID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEnrollments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEnrollments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.Enrollment
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListEnrollments - scan enrollment: %v", ErrScanRow, err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEnrollments - rows iteration: %v", ErrScanRow, err)
	}
	return result, nil
}

// GetEnrollment получает запись на слот по ID
func (r *Repository) GetEnrollment(ctx context.Context, id string) (*domain.Enrollment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(enrollmentColumns...).
		From("enrollments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetEnrollment - build select query: %v", ErrBuildQuery, err)
	}

	e, err := scanEnrollment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEnrollmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetEnrollment - scan enrollment: %v", ErrScanRow, err)
	}
	return e, nil
}

// CreateEnrollment записывает ученика на слот
func (r *Repository) CreateEnrollment(ctx context.Context, e *domain.Enrollment) (*domain.Enrollment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("enrollments").
		Columns("id", "fixed_slot_id", "student_id", "note").
		Values(e.ID, e.FixedSlotID, e.StudentID, e.Note).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateEnrollment - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&e.CreatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("%w: CreateEnrollment - execute insert: %v", ErrExecQuery, err)
	}
	return e, nil
}

// DeleteEnrollment удаляет запись на слот
func (r *Repository) DeleteEnrollment(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("enrollments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteEnrollment - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteEnrollment - execute delete: %v", ErrExecQuery, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrEnrollmentNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStudent(row rowScanner) (*domain.Student, error) {
	var s domain.Student
	var tag, note sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Frozen,
		&s.Inactive,
		&s.Waitlisted,
		&tag,
		&note,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if tag.Valid {
		s.PartnershipTag = &tag.String
	}
	if note.Valid {
		s.Note = &note.String
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return &s, nil
}

func scanEnrollment(row rowScanner) (*domain.Enrollment, error) {
	var e domain.Enrollment
	var note sql.NullString

	if err := row.Scan(&e.ID, &e.FixedSlotID, &e.StudentID, &note, &e.CreatedAt); err != nil {
		return nil, err
	}
	if note.Valid {
		e.Note = &note.String
	}
	return &e, nil
}
