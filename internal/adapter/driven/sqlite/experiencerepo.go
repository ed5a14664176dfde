package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ericfisherdev/foliopanel/internal/domain/model"
	"github.com/ericfisherdev/foliopanel/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ExperienceStore = (*ExperienceRepo)(nil)

// ExperienceRepo is the SQLite implementation of the ExperienceStore port
// interface. The description bullet list is stored as a JSON array in a
// TEXT column; the encoding never leaves this package.
type ExperienceRepo struct {
	db *DB
}

// NewExperienceRepo creates a new ExperienceRepo backed by the given DB.
func NewExperienceRepo(db *DB) *ExperienceRepo {
	return &ExperienceRepo{db: db}
}

// ListAll returns every experience entry, newest first.
func (r *ExperienceRepo) ListAll(ctx context.Context) ([]model.Experience, error) {
	const query = `
		SELECT id, logo, title, company, location, start_date, end_date, description, created_at
		FROM experience
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list experience: %w", err)
	}
	defer rows.Close()

	var entries []model.Experience
	for rows.Next() {
		var exp model.Experience
		var logo, location, startDate, endDate, description sql.NullString
		var createdAt string

		if err := rows.Scan(&exp.ID, &logo, &exp.Title, &exp.Company, &location, &startDate, &endDate, &description, &createdAt); err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}

		exp.Logo = logo.String
		exp.Location = location.String
		exp.StartDate = startDate.String
		exp.EndDate = endDate.String

		exp.Description, err = decodeDescription(description)
		if err != nil {
			return nil, fmt.Errorf("decode description for experience %d: %w", exp.ID, err)
		}

		exp.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}

		entries = append(entries, exp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate experience: %w", err)
	}

	return entries, nil
}

// Create inserts a new experience entry and returns its assigned id.
func (r *ExperienceRepo) Create(ctx context.Context, exp model.Experience) (int64, error) {
	const query = `
		INSERT INTO experience (logo, title, company, location, start_date, end_date, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	description, err := encodeDescription(exp.Description)
	if err != nil {
		return 0, fmt.Errorf("encode description: %w", err)
	}

	result, err := r.db.Writer.ExecContext(ctx, query,
		nullString(exp.Logo), exp.Title, exp.Company,
		nullString(exp.Location), nullString(exp.StartDate), nullString(exp.EndDate),
		description,
	)
	if err != nil {
		return 0, fmt.Errorf("create experience: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("experience insert id: %w", err)
	}

	return id, nil
}

// Update overwrites the non-nil fields of upd on the entry with the given id.
func (r *ExperienceRepo) Update(ctx context.Context, id int64, upd model.ExperienceUpdate) error {
	var sets []string
	var args []any
	set := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if upd.Title != nil {
		set("title", *upd.Title)
	}
	if upd.Company != nil {
		set("company", *upd.Company)
	}
	if upd.Location != nil {
		set("location", nullString(*upd.Location))
	}
	if upd.StartDate != nil {
		set("start_date", nullString(*upd.StartDate))
	}
	if upd.EndDate != nil {
		set("end_date", nullString(*upd.EndDate))
	}
	if upd.Description != nil {
		encoded, err := encodeDescription(*upd.Description)
		if err != nil {
			return fmt.Errorf("encode description: %w", err)
		}
		set("description", encoded)
	}
	if upd.Logo != nil {
		set("logo", nullString(*upd.Logo))
	}

	if len(sets) == 0 {
		return rowExists(ctx, r.db, "experience", id)
	}

	query := "UPDATE experience SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := r.db.Writer.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update experience %d: %w", id, err)
	}

	return checkAffected(result, id)
}

// Delete removes the entry with the given id.
func (r *ExperienceRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM experience WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete experience %d: %w", id, err)
	}

	return checkAffected(result, id)
}

// encodeDescription serializes the bullet list to its JSON column form.
// A nil slice encodes as an empty array, so NULL only ever means
// "column predates the row having a description".
func encodeDescription(lines []string) (string, error) {
	if lines == nil {
		lines = []string{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeDescription parses the JSON column form back into a bullet list.
// NULL and empty text decode to an empty slice, never nil.
func decodeDescription(raw sql.NullString) ([]string, error) {
	if !raw.Valid || raw.String == "" {
		return []string{}, nil
	}

	var lines []string
	if err := json.Unmarshal([]byte(raw.String), &lines); err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []string{}
	}
	return lines, nil
}

// nullString maps an empty string to NULL so optional columns stay NULL
// instead of accumulating empty strings.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// checkAffected translates "no row matched" into driven.ErrNotFound.
func checkAffected(result sql.Result, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("id %d: %w", id, driven.ErrNotFound)
	}
	return nil
}

// rowExists reports whether the table has a row with the given id,
// returning driven.ErrNotFound when it does not. Used by updates that
// carry no fields, which must still distinguish a missing record.
func rowExists(ctx context.Context, db *DB, table string, id int64) error {
	query := "SELECT 1 FROM " + table + " WHERE id = ?"
	var one int
	err := db.Reader.QueryRowContext(ctx, query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("id %d: %w", id, driven.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("check %s %d: %w", table, id, err)
	}
	return nil
}

// parseTime parses SQLite datetime strings in the formats the driver and
// CURRENT_TIMESTAMP produce.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
		time.RFC3339,
		time.RFC3339Nano,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
