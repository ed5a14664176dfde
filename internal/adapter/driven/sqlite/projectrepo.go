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
var _ driven.ProjectStore = (*ProjectRepo)(nil)

// ProjectRepo is the SQLite implementation of the ProjectStore port interface.
type ProjectRepo struct {
	db *DB
}

// NewProjectRepo creates a new ProjectRepo backed by the given DB.
func NewProjectRepo(db *DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// ListAll returns every project, newest first.
func (r *ProjectRepo) ListAll(ctx context.Context) ([]model.Project, error) {
	const query = `
		SELECT id, image, title, description, link, created_at
		FROM projects
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		var image, description sql.NullString
		var createdAt string

		if err := rows.Scan(&p.ID, &image, &p.Title, &description, &p.Link, &createdAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}

		p.Image = image.String
		p.Description = description.String

		p.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}

		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return projects, nil
}

// Create inserts a new project and returns its assigned id.
func (r *ProjectRepo) Create(ctx context.Context, p model.Project) (int64, error) {
	const query = `
		INSERT INTO projects (image, title, description, link)
		VALUES (?, ?, ?, ?)`

	result, err := r.db.Writer.ExecContext(ctx, query,
		nullString(p.Image), p.Title, nullString(p.Description), p.Link,
	)
	if err != nil {
		return 0, fmt.Errorf("create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("project insert id: %w", err)
	}

	return id, nil
}

// Update overwrites the non-nil fields of upd on the project with the given id.
func (r *ProjectRepo) Update(ctx context.Context, id int64, upd model.ProjectUpdate) error {
	var sets []string
	var args []any
	set := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if upd.Title != nil {
		set("title", *upd.Title)
	}
	if upd.Description != nil {
		set("description", nullString(*upd.Description))
	}
	if upd.Link != nil {
		set("link", *upd.Link)
	}
	if upd.Image != nil {
		set("image", nullString(*upd.Image))
	}

	if len(sets) == 0 {
		return rowExists(ctx, r.db, "projects", id)
	}

	query := "UPDATE projects SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := r.db.Writer.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update project %d: %w", id, err)
	}

	return checkAffected(result, id)
}

// Delete removes the project with the given id.
func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM projects WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}

	return checkAffected(result, id)
}
