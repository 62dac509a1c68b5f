package booking

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

var trialColumns = []string{
	"id",
	"fixed_slot_id",
	"date",
	"contact_name",
	"contact_phone",
	"contact_email",
	"status",
	"attended",
	"created_at",
	"updated_at",
}

var creditColumns = []string{"id", "student_id", "fixed_slot_id", "date", "credit_ref", "created_at"}

// Repository репозиторий пробных занятий и использованных кредитов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetTrialBooking получает пробное занятие по ID
func (r *Repository) GetTrialBooking(ctx context.Context, id string) (*domain.TrialBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(trialColumns...).
		From("trial_bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTrialBooking - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTrial(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTrialNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTrialBooking - scan trial: %v", ErrScanRow, err)
	}
	return t, nil
}

// ListTrialBookings возвращает пробные занятия в диапазоне дат (все при rng == nil)
func (r *Repository) ListTrialBookings(ctx context.Context, rng *domain.DateRange) ([]*domain.TrialBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(trialColumns...).
		From("trial_bookings").
		OrderBy("date", "created_at", "id")
	if rng != nil {
		builder = builder.Where(squirrel.And{
			squirrel.GtOrEq{"date": rng.From},
			squirrel.LtOrEq{"date": rng.To},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListTrialBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTrialBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.TrialBooking
	for rows.Next() {
		t, err := scanTrial(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListTrialBookings - scan trial: %v", ErrScanRow, err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTrialBookings - rows iteration: %v", ErrScanRow, err)
	}
	return result, nil
}

// CreateTrialBooking сохраняет пробное занятие
func (r *Repository) CreateTrialBooking(ctx context.Context, t *domain.TrialBooking) (*domain.TrialBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trial_bookings").
		Columns("id", "fixed_slot_id", "date", "contact_name", "contact_phone", "contact_email", "status", "attended").
		Values(t.ID, t.FixedSlotID, t.Date, t.ContactName, t.ContactPhone, t.ContactEmail, string(t.Status), t.Attended).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateTrialBooking - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateTrialBooking - execute insert: %v", ErrExecQuery, err)
	}
	return t, nil
}

// PatchTrialStatus меняет статус пробного занятия и отметку о посещении
func (r *Repository) PatchTrialStatus(ctx context.Context, id string, status domain.TrialStatus, attended *bool, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("trial_bookings").
		Set("status", string(status)).
		Set("attended", attended).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: PatchTrialStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: PatchTrialStatus - execute update: %v", ErrExecQuery, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrTrialNotFound
	}
	return nil
}

// ListCreditUsages возвращает кредиты в диапазоне дат (все при rng == nil)
func (r *Repository) ListCreditUsages(ctx context.Context, rng *domain.DateRange) ([]*domain.CreditUsage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(creditColumns...).
		From("credit_usages").
		OrderBy("date", "created_at", "id")
	if rng != nil {
		builder = builder.Where(squirrel.And{
			squirrel.GtOrEq{"date": rng.From},
			squirrel.LtOrEq{"date": rng.To},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCreditUsages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCreditUsages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.CreditUsage
	for rows.Next() {
		var c domain.CreditUsage
		if err := rows.Scan(&c.ID, &c.StudentID, &c.FixedSlotID, &c.Date, &c.CreditRef, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListCreditUsages - scan credit: %v", ErrScanRow, err)
		}
		c.Date = domain.DateOnly(c.Date)
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCreditUsages - rows iteration: %v", ErrScanRow, err)
	}
	return result, nil
}

// CreateCreditUsage сохраняет использование кредита
func (r *Repository) CreateCreditUsage(ctx context.Context, c *domain.CreditUsage) (*domain.CreditUsage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("credit_usages").
		Columns("id", "student_id", "fixed_slot_id", "date", "credit_ref").
		Values(c.ID, c.StudentID, c.FixedSlotID, c.Date, c.CreditRef).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCreditUsage - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.CreatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrCreditAlreadyUsed
		}
		return nil, fmt.Errorf("%w: CreateCreditUsage - execute insert: %v", ErrExecQuery, err)
	}
	return c, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrial(row rowScanner) (*domain.TrialBooking, error) {
	var t domain.TrialBooking
	var status string
	var email sql.NullString
	var attended sql.NullBool

	err := row.Scan(
		&t.ID,
		&t.FixedSlotID,
		&t.Date,
		&t.ContactName,
		&t.ContactPhone,
		&email,
		&status,
		&attended,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Date = domain.DateOnly(t.Date)
	t.Status = domain.TrialStatus(status)
	if email.Valid {
		t.ContactEmail = &email.String
	}
	if attended.Valid {
		t.Attended = &attended.Bool
	}
	return &t, nil
}
