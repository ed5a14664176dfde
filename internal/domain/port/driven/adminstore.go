package driven

import (
	"context"

	"github.com/ericfisherdev/foliopanel/internal/domain/model"
)

// AdminStore persists the dashboard credential.
type AdminStore interface {
	// GetByUsername returns the credential row for the given username.
	// Returns ErrNotFound if no such user exists.
	GetByUsername(ctx context.Context, username string) (*model.AdminUser, error)

	// Create inserts a new credential row and returns its assigned id.
	// The username is unique; inserting a duplicate fails.
	Create(ctx context.Context, user model.AdminUser) (int64, error)
}
