package migrations

import (
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles(t *testing.T) {
	names, err := Files()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "0001_init.sql", names[0])

	body, err := files.ReadFile(names[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS reschedule_requests")
}

func TestIsIgnorable(t *testing.T) {
	assert.True(t, isIgnorable(fmt.Errorf("wrap: %w", &pq.Error{Code: "42P07"})))
	assert.False(t, isIgnorable(&pq.Error{Code: "23505"}))
	assert.False(t, isIgnorable(fmt.Errorf("plain")))
}
