package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsApplyOnNew(t *testing.T) {
	store := initSqlite(t)

	s, ok := store.(*SQLite)
	require.True(t, ok)

	version, dirty, err := s.GetMigrationVersion()
	assert.Nil(t, err)
	assert.False(t, dirty)
	assert.Equal(t, uint(1), version)
}
