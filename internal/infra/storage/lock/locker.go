package lock

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/pkg/dbmetrics"
)

var (
	// ErrNotInTransaction возвращается при попытке взять блокировку вне транзакции
	ErrNotInTransaction = errors.New("lock: advisory lock requires transaction")

	// ErrAcquire возвращается, когда блокировку не удалось получить
	ErrAcquire = errors.New("lock: failed to acquire advisory lock")
)

// Locker берет транзакционные advisory-блокировки PostgreSQL на занятия.
// Блокировка снимается при завершении транзакции.
type Locker struct {
	db dbmetrics.DBExecutor
}

// NewLocker создает новый экземпляр Locker
func NewLocker(db dbmetrics.DBExecutor) *Locker {
	return &Locker{db: db}
}

// LockOccurrence блокирует занятие до конца текущей транзакции
func (l *Locker) LockOccurrence(ctx context.Context, occ domain.Occurrence) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrNotInTransaction
	}
	executor := dbmetrics.GetExecutor(ctx, l.db)

	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", occ.Key()); err != nil {
		return fmt.Errorf("%w: LockOccurrence - %s: %v", ErrAcquire, occ.Key(), err)
	}
	return nil
}
