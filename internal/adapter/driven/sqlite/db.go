// Package sqlite implements the content and credential stores on a
// single SQLite database file.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// connPragmas are applied to every connection through the DSN. WAL lets
// reads proceed while a write is in flight; the busy timeout absorbs the
// brief writer lock during checkpoints instead of failing the query.
var connPragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"synchronous(NORMAL)",
	"foreign_keys(ON)",
	"cache_size(-64000)",
}

// DB bundles a write handle and a read pool over one database file.
// SQLite permits a single writer at a time, so Writer is capped at one
// open connection and concurrent mutations queue in Go rather than
// surfacing SQLITE_BUSY. Reader allows a few parallel list queries.
type DB struct {
	Writer *sql.DB
	Reader *sql.DB
}

// NewDB opens the database file at dbPath, creating it if absent.
func NewDB(dbPath string) (*DB, error) {
	dsn := fileDSN(dbPath)

	writer, err := open(dsn, 1)
	if err != nil {
		return nil, fmt.Errorf("open writer: %w", err)
	}

	reader, err := open(dsn, 4)
	if err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("open reader: %w", err)
	}

	return &DB{Writer: writer, Reader: reader}, nil
}

// Close releases both handles, returning the first error.
func (db *DB) Close() error {
	readerErr := db.Reader.Close()
	writerErr := db.Writer.Close()

	if readerErr != nil {
		return fmt.Errorf("close reader: %w", readerErr)
	}
	if writerErr != nil {
		return fmt.Errorf("close writer: %w", writerErr)
	}
	return nil
}

// fileDSN builds the driver DSN for an on-disk database with connPragmas.
func fileDSN(dbPath string) string {
	return "file:" + dbPath + "?_pragma=" + strings.Join(connPragmas, "&_pragma=")
}

// open returns a pinged handle with the given connection cap.
func open(dsn string, maxConns int) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(maxConns)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
