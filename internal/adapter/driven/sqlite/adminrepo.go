package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ericfisherdev/foliopanel/internal/domain/model"
	"github.com/ericfisherdev/foliopanel/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.AdminStore = (*AdminRepo)(nil)

// AdminRepo is the SQLite implementation of the AdminStore port interface.
// In normal operation the admin table holds exactly one row, provisioned
// at first startup.
type AdminRepo struct {
	db *DB
}

// NewAdminRepo creates a new AdminRepo backed by the given DB.
func NewAdminRepo(db *DB) *AdminRepo {
	return &AdminRepo{db: db}
}

// GetByUsername returns the credential row for the given username.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	const query = `SELECT id, username, password FROM admin WHERE username = ?`

	var user model.AdminUser
	err := r.db.Reader.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("admin %q: %w", username, driven.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get admin %q: %w", username, err)
	}

	return &user, nil
}

// Create inserts a new credential row and returns its assigned id.
func (r *AdminRepo) Create(ctx context.Context, user model.AdminUser) (int64, error) {
	const query = `INSERT INTO admin (username, password) VALUES (?, ?)`

	result, err := r.db.Writer.ExecContext(ctx, query, user.Username, user.PasswordHash)
	if err != nil {
		return 0, fmt.Errorf("create admin %q: %w", user.Username, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("admin insert id: %w", err)
	}

	return id, nil
}
