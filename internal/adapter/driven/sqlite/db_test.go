package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB(t *testing.T) {
	db, err := NewDB(filepath.Join(t.TempDir(), "content.db"))
	require.NoError(t, err)

	require.NoError(t, RunMigrations(db.Writer))

	var journalMode string
	require.NoError(t, db.Writer.QueryRow("PRAGMA journal_mode").Scan(&journalMode))
	assert.Equal(t, "wal", journalMode)

	var foreignKeys int
	require.NoError(t, db.Reader.QueryRow("PRAGMA foreign_keys").Scan(&foreignKeys))
	assert.Equal(t, 1, foreignKeys)

	assert.NoError(t, db.Close())
}

func TestFileDSN(t *testing.T) {
	dsn := fileDSN("content.db")

	assert.Contains(t, dsn, "file:content.db?")
	for _, pragma := range connPragmas {
		assert.Contains(t, dsn, "_pragma="+pragma)
	}
}
