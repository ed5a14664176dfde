package sqlite

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestDB opens a named in-memory database shared between a writer
// and a reader handle, applies all migrations, and tears the pair down
// with the test. The name is derived from t.Name() so tests cannot see
// each other's data; WAL does not apply to in-memory databases, so only
// the remaining pragmas are set.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Percent-encode the test name: subtest names contain '/' and could
	// otherwise be read as path segments or query syntax in the URI.
	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)",
		url.PathEscape(t.Name()),
	)

	writer, err := open(dsn, 1)
	require.NoError(t, err, "open test writer")

	reader, err := open(dsn, 4)
	if err != nil {
		_ = writer.Close()
		t.Fatalf("open test reader: %v", err)
	}

	db := &DB{Writer: writer, Reader: reader}
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(db.Writer), "apply migrations")

	return db
}

// strPtr returns a pointer to s, for building partial update structs in tests.
func strPtr(s string) *string {
	return &s
}
