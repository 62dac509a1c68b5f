package classtype

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

var classTypeColumns = []string{
	"id",
	"name",
	"color",
	"default_capacity",
	"session_duration_minutes",
	"linked_class_type_ids",
	"created_at",
	"updated_at",
}

var blockColumns = []string{"id", "class_type_id", "day_of_week", "time", "manual", "created_at"}

// Repository репозиторий модальностей, окон доступности и блокировок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает модальность вместе с окнами доступности
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ClassType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(classTypeColumns...).
		From("class_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	ct, err := scanClassType(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClassTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan class type: %v", ErrScanRow, err)
	}

	if err := r.attachAvailability(ctx, []*domain.ClassType{ct}); err != nil {
		return nil, err
	}
	return ct, nil
}

// List возвращает все модальности
func (r *Repository) List(ctx context.Context) ([]*domain.ClassType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(classTypeColumns...).
		From("class_types").
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

	var result []*domain.ClassType
	for rows.Next() {
		ct, err := scanClassType(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan class type: %v", ErrScanRow, err)
		}
		result = append(result, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	if err := r.attachAvailability(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repository) attachAvailability(ctx context.Context, classTypes []*domain.ClassType) error {
	if len(classTypes) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	byID := make(map[string]*domain.ClassType, len(classTypes))
	ids := make([]string, 0, len(classTypes))
	for _, ct := range classTypes {
		byID[ct.ID] = ct
		ids = append(ids, ct.ID)
	}

	query, args, err := psqlbuilder.Select("class_type_id", "day_of_week", "start_time", "end_time").
		From("class_type_availability").
		Where(squirrel.Eq{"class_type_id": ids}).
		OrderBy("class_type_id", "day_of_week", "start_time").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachAvailability - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachAvailability - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var classTypeID string
		var w domain.AvailabilityWindow
		if err := rows.Scan(&classTypeID, &w.DayOfWeek, &w.Start, &w.End); err != nil {
			return fmt.Errorf("%w: attachAvailability - scan window: %v", ErrScanRow, err)
		}
		if ct, ok := byID[classTypeID]; ok {
			ct.Availability = append(ct.Availability, w)
		}
	}
	return rows.Err()
}

// ListSlotBlocks возвращает блокировки модальности (или все, если classTypeID == nil)
func (r *Repository) ListSlotBlocks(ctx context.Context, classTypeID *string) ([]*domain.SlotBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(blockColumns...).
		From("slot_blocks").
		OrderBy("class_type_id", "day_of_week", "time")
	if classTypeID != nil {
		builder = builder.Where(squirrel.Eq{"class_type_id": *classTypeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListSlotBlocks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSlotBlocks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.SlotBlock
	for rows.Next() {
		var b domain.SlotBlock
		if err := rows.Scan(&b.ID, &b.ClassTypeID, &b.DayOfWeek, &b.Time, &b.Manual, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListSlotBlocks - scan block: %v", ErrScanRow, err)
		}
		result = append(result, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSlotBlocks - rows iteration: %v", ErrScanRow, err)
	}
	return result, nil
}

// ToggleSlotBlock снимает блокировку ячейки, если она есть, иначе ставит новую
// Возвращает true, если блокировка создана
func (r *Repository) ToggleSlotBlock(ctx context.Context, block *domain.SlotBlock) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slot_blocks").
		Where(squirrel.Eq{
			"class_type_id": block.ClassTypeID,
			"day_of_week":   block.DayOfWeek,
			"time":          block.Time,
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ToggleSlotBlock - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: ToggleSlotBlock - execute delete: %v", ErrExecQuery, err)
	}
	if affected, _ := res.RowsAffected(); affected > 0 {
		return false, nil
	}

	query, args, err = psqlbuilder.Insert("slot_blocks").
		Columns("id", "class_type_id", "day_of_week", "time", "manual").
		Values(block.ID, block.ClassTypeID, block.DayOfWeek, block.Time, block.Manual).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ToggleSlotBlock - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&block.CreatedAt); err != nil {
		return false, fmt.Errorf("%w: ToggleSlotBlock - execute insert: %v", ErrExecQuery, err)
	}
	return true, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClassType(row rowScanner) (*domain.ClassType, error) {
	var ct domain.ClassType
	var linked pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&ct.ID,
		&ct.Name,
		&ct.Color,
		&ct.DefaultCapacity,
		&ct.SessionDurationMinutes,
		&linked,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	ct.LinkedClassTypeIDs = []string(linked)
	ct.CreatedAt = createdAt.Time
	ct.UpdatedAt = updatedAt.Time
	return &ct, nil
}
