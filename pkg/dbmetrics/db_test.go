package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	*sql.Tx
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	db := Wrap(nil, nil, "studio")
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db).(*DB))

	tx := fakeTx{}
	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, db))
}

func TestOperation(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{query: "SELECT id FROM students", want: "select"},
		{query: "  insert into students (id) VALUES ($1)", want: "insert"},
		{query: "UPDATE reschedule_requests SET status=$1", want: "update"},
		{query: "DELETE FROM enrollments WHERE id = $1", want: "delete"},
		{query: "SELECT pg_advisory_xact_lock(hashtext($1))", want: "select"},
		{query: "CREATE TABLE x()", want: "other"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, operation(tt.query), tt.query)
	}
}
