package fixedslot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioSchedule/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"class_type_id",
	"instructor_id",
	"day_of_week",
	"start_time",
	"end_time",
	"capacity_override",
	"note",
	"created_at",
	"updated_at",
}

// Repository репозиторий еженедельных слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.FixedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("fixed_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFixedSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}
	return slot, nil
}

// List возвращает слоты модальности или все слоты, если classTypeID == nil
func (r *Repository) List(ctx context.Context, classTypeID *string) ([]*domain.FixedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From("fixed_slots").
		OrderBy("day_of_week", "start_time", "id")
	if classTypeID != nil {
		builder = builder.Where(squirrel.Eq{"class_type_id": *classTypeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.FixedSlot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan slot: %v", ErrScanRow, err)
		}
		result = append(result, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}
	return result, nil
}

// Create создает слот
func (r *Repository) Create(ctx context.Context, slot *domain.FixedSlot) (*domain.FixedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("fixed_slots").
		Columns(
			"id",
			"class_type_id",
			"instructor_id",
			"day_of_week",
			"start_time",
			"end_time",
			"capacity_override",
			"note",
		).
		Values(
			slot.ID,
			slot.ClassTypeID,
			slot.InstructorID,
			slot.DayOfWeek,
			slot.StartTime,
			slot.EndTime,
			slot.CapacityOverride,
			slot.Note,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&slot.CreatedAt, &slot.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return slot, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.FixedSlot, error) {
	var slot domain.FixedSlot
	var capacity sql.NullInt64
	var note sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.ClassTypeID,
		&slot.InstructorID,
		&slot.DayOfWeek,
		&slot.StartTime,
		&slot.EndTime,
		&capacity,
		&note,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if capacity.Valid {
		v := int(capacity.Int64)
		slot.CapacityOverride = &v
	}
	if note.Valid {
		slot.Note = &note.String
	}
	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time
	return &slot, nil
}
