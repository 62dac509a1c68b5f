package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioSchedule/pkg/psqlbuilder"
)

var recordColumns = []string{
	"id",
	"fixed_slot_id",
	"date",
	"present_count",
	"absent_count",
	"created_at",
	"updated_at",
}

// Repository репозиторий журналов посещаемости
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журналов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает журнал конкретного занятия вместе с отметками
func (r *Repository) Get(ctx context.Context, fixedSlotID string, date time.Time) (*domain.SessionRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(recordColumns...).
		From("session_records").
		Where(squirrel.Eq{"fixed_slot_id": fixedSlotID, "date": domain.DateOnly(date)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	rec, err := scanRecord(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan record: %v", ErrScanRow, err)
	}

	if err := r.attachEntries(ctx, []*domain.SessionRecord{rec}); err != nil {
		return nil, err
	}
	return rec, nil
}

// ListInRange возвращает журналы занятий в диапазоне дат (все при rng == nil)
func (r *Repository) ListInRange(ctx context.Context, rng *domain.DateRange) ([]*domain.SessionRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(recordColumns...).
		From("session_records").
		OrderBy("date", "fixed_slot_id")
	if rng != nil {
		builder = builder.Where(squirrel.And{
			squirrel.GtOrEq{"date": rng.From},
			squirrel.LtOrEq{"date": rng.To},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.SessionRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListInRange - scan record: %v", ErrScanRow, err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListInRange - rows iteration: %v", ErrScanRow, err)
	}

	if err := r.attachEntries(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Create сохраняет журнал занятия и его отметки
// Вызывать внутри транзакции
func (r *Repository) Create(ctx context.Context, rec *domain.SessionRecord) (*domain.SessionRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("session_records").
		Columns("id", "fixed_slot_id", "date", "present_count", "absent_count").
		Values(rec.ID, rec.FixedSlotID, rec.Date, rec.PresentCount, rec.AbsentCount).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rec.CreatedAt, &rec.UpdatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrSessionExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	if err := r.insertEntries(ctx, rec.ID, rec.Entries); err != nil {
		return nil, err
	}
	return rec, nil
}

// UpdateEntries заменяет отметки журнала и пересохраняет счетчики
// Вызывать внутри транзакции
func (r *Repository) UpdateEntries(ctx context.Context, rec *domain.SessionRecord) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("session_records").
		Set("present_count", rec.PresentCount).
		Set("absent_count", rec.AbsentCount).
		Set("updated_at", rec.UpdatedAt).
		Where(squirrel.Eq{"id": rec.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateEntries - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateEntries - execute update: %v", ErrExecQuery, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrSessionNotFound
	}

	query, args, err = psqlbuilder.Delete("session_entries").
		Where(squirrel.Eq{"session_id": rec.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateEntries - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpdateEntries - delete entries: %v", ErrExecQuery, err)
	}

	return r.insertEntries(ctx, rec.ID, rec.Entries)
}

func (r *Repository) insertEntries(ctx context.Context, sessionID string, entries []domain.AttendanceEntry) error {
	if len(entries) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("session_entries").
		Columns("session_id", "student_ref", "present", "position")
	for i, e := range entries {
		builder = builder.Values(sessionID, e.StudentRef, e.Present, i)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertEntries - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertEntries - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// attachEntries загружает отметки одним запросом для всех журналов
func (r *Repository) attachEntries(ctx context.Context, records []*domain.SessionRecord) error {
	if len(records) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	byID := make(map[string]*domain.SessionRecord, len(records))
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
		ids = append(ids, rec.ID)
	}

	query, args, err := psqlbuilder.Select("session_id", "student_ref", "present").
		From("session_entries").
		Where(squirrel.Eq{"session_id": ids}).
		OrderBy("session_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachEntries - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachEntries - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var sessionID string
		var e domain.AttendanceEntry
		if err := rows.Scan(&sessionID, &e.StudentRef, &e.Present); err != nil {
			return fmt.Errorf("%w: attachEntries - scan entry: %v", ErrScanRow, err)
		}
		if rec, ok := byID[sessionID]; ok {
			rec.Entries = append(rec.Entries, e)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachEntries - rows iteration: %v", ErrScanRow, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*domain.SessionRecord, error) {
	var rec domain.SessionRecord
	err := row.Scan(
		&rec.ID,
		&rec.FixedSlotID,
		&rec.Date,
		&rec.PresentCount,
		&rec.AbsentCount,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Date = domain.DateOnly(rec.Date)
	return &rec, nil
}
