package reschedule

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

var columns = []string{
	"id",
	"student_id",
	"origin_enrollment_id",
	"origin_slot_id",
	"origin_date",
	"destination_slot_id",
	"destination_date",
	"destination_start",
	"destination_end",
	"status",
	"is_makeup",
	"reason",
	"requested_by",
	"reviewed_by",
	"reviewed_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий заявок на перенос и отработку
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.RescheduleRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From("reschedule_requests").
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRescheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}
	return req, nil
}

// List возвращает заявки, у которых исходное или целевое занятие попадает в диапазон
// При rng == nil возвращаются все заявки
func (r *Repository) List(ctx context.Context, rng *domain.DateRange) ([]*domain.RescheduleRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From("reschedule_requests").
		OrderBy("created_at", "id")
	if rng != nil {
		builder = builder.Where(squirrel.Or{
			squirrel.And{
				squirrel.GtOrEq{"origin_date": rng.From},
				squirrel.LtOrEq{"origin_date": rng.To},
			},
			squirrel.And{
				squirrel.GtOrEq{"destination_date": rng.From},
				squirrel.LtOrEq{"destination_date": rng.To},
			},
		})
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

	var result []*domain.RescheduleRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan request: %v", ErrScanRow, err)
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}
	return result, nil
}

// Create сохраняет новую заявку
func (r *Repository) Create(ctx context.Context, req *domain.RescheduleRequest) (*domain.RescheduleRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reschedule_requests").
		Columns(
			"id",
			"student_id",
			"origin_enrollment_id",
			"origin_slot_id",
			"origin_date",
			"destination_slot_id",
			"destination_date",
			"destination_start",
			"destination_end",
			"status",
			"is_makeup",
			"reason",
			"requested_by",
			"reviewed_by",
			"reviewed_at",
		).
		Values(
			req.ID,
			req.StudentID,
			req.OriginEnrollmentID,
			req.OriginSlotID,
			req.OriginDate,
			req.DestinationSlotID,
			req.DestinationDate,
			req.DestinationStart,
			req.DestinationEnd,
			string(req.Status),
			req.IsMakeup,
			req.Reason,
			req.RequestedBy,
			req.ReviewedBy,
			req.ReviewedAt,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.CreatedAt, &req.UpdatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateOpenRequest
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return req, nil
}

// PatchStatus меняет статус заявки и фиксирует, кто её рассмотрел
func (r *Repository) PatchStatus(ctx context.Context, id string, status domain.RescheduleStatus, reviewedBy *string, reviewedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("reschedule_requests").
		Set("status", string(status)).
		Set("updated_at", reviewedAt).
		Where(squirrel.Eq{"id": id})
	if reviewedBy != nil {
		builder = builder.Set("reviewed_by", *reviewedBy).Set("reviewed_at", reviewedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: PatchStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: PatchStatus - execute update: %v", ErrExecQuery, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrRescheduleNotFound
	}
	return nil
}

// Delete удаляет заявку
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reschedule_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrRescheduleNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*domain.RescheduleRequest, error) {
	var req domain.RescheduleRequest
	var status string
	var enrollmentID, reason, reviewedBy sql.NullString
	var reviewedAt sql.NullTime

	err := row.Scan(
		&req.ID,
		&req.StudentID,
		&enrollmentID,
		&req.OriginSlotID,
		&req.OriginDate,
		&req.DestinationSlotID,
		&req.DestinationDate,
		&req.DestinationStart,
		&req.DestinationEnd,
		&status,
		&req.IsMakeup,
		&reason,
		&req.RequestedBy,
		&reviewedBy,
		&reviewedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	req.Status = domain.RescheduleStatus(status)
	req.OriginDate = domain.DateOnly(req.OriginDate)
	req.DestinationDate = domain.DateOnly(req.DestinationDate)
	if enrollmentID.Valid {
		req.OriginEnrollmentID = &enrollmentID.String
	}
	if reason.Valid {
		req.Reason = &reason.String
	}
	if reviewedBy.Valid {
		req.ReviewedBy = &reviewedBy.String
	}
	if reviewedAt.Valid {
		req.ReviewedAt = &reviewedAt.Time
	}
	return &req, nil
}
