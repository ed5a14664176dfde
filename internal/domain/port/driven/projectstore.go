package driven

import (
	"context"

	"github.com/ericfisherdev/foliopanel/internal/domain/model"
)

// ProjectStore persists portfolio projects.
type ProjectStore interface {
	// ListAll returns every project, newest first.
	ListAll(ctx context.Context) ([]model.Project, error)

	// Create inserts a new project and returns its assigned id.
	Create(ctx context.Context, p model.Project) (int64, error)

	// Update overwrites the non-nil fields of upd on the project with the
	// given id. Returns ErrNotFound if no such project exists.
	Update(ctx context.Context, id int64, upd model.ProjectUpdate) error

	// Delete removes the project with the given id.
	// Returns ErrNotFound if no such project exists.
	Delete(ctx context.Context, id int64) error
}
