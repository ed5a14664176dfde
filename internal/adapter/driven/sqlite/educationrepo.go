package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ericfisherdev/foliopanel/internal/domain/model"
	"github.com/ericfisherdev/foliopanel/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.EducationStore = (*EducationRepo)(nil)

// EducationRepo is the SQLite implementation of the EducationStore port interface.
type EducationRepo struct {
	db *DB
}

// NewEducationRepo creates a new EducationRepo backed by the given DB.
func NewEducationRepo(db *DB) *EducationRepo {
	return &EducationRepo{db: db}
}

// ListAll returns every education entry, newest first.
func (r *EducationRepo) ListAll(ctx context.Context) ([]model.Education, error) {
	const query = `
		SELECT id, logo, degree, institution, location, year, created_at
		FROM education
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list education: %w", err)
	}
	defer rows.Close()

	var entries []model.Education
	for rows.Next() {
		var edu model.Education
		var logo, location, year sql.NullString
		var createdAt string

		if err := rows.Scan(&edu.ID, &logo, &edu.Degree, &edu.Institution, &location, &year, &createdAt); err != nil {
			return nil, fmt.Errorf("scan education: %w", err)
		}

		edu.Logo = logo.String
		edu.Location = location.String
		edu.Year = year.String

		edu.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}

		entries = append(entries, edu)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate education: %w", err)
	}

	return entries, nil
}

// Create inserts a new education entry and returns its assigned id.
func (r *EducationRepo) Create(ctx context.Context, edu model.Education) (int64, error) {
	const query = `
		INSERT INTO education (logo, degree, institution, location, year)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.Writer.ExecContext(ctx, query,
		nullString(edu.Logo), edu.Degree, edu.Institution,
		nullString(edu.Location), nullString(edu.Year),
	)
	if err != nil {
		return 0, fmt.Errorf("create education: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("education insert id: %w", err)
	}

	return id, nil
}

// Update overwrites the non-nil fields of upd on the entry with the given id.
func (r *EducationRepo) Update(ctx context.Context, id int64, upd model.EducationUpdate) error {
	var sets []string
	var args []any
	set := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if upd.Degree != nil {
		set("degree", *upd.Degree)
	}
	if upd.Institution != nil {
		set("institution", *upd.Institution)
	}
	if upd.Location != nil {
		set("location", nullString(*upd.Location))
	}
	if upd.Year != nil {
		set("year", nullString(*upd.Year))
	}
	if upd.Logo != nil {
		set("logo", nullString(*upd.Logo))
	}

	if len(sets) == 0 {
		return rowExists(ctx, r.db, "education", id)
	}

	query := "UPDATE education SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := r.db.Writer.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update education %d: %w", id, err)
	}

	return checkAffected(result, id)
}

// Delete removes the entry with the given id.
func (r *EducationRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM education WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete education %d: %w", id, err)
	}

	return checkAffected(result, id)
}
