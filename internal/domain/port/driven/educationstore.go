package driven

import (
	"context"

	"github.com/ericfisherdev/foliopanel/internal/domain/model"
)

// EducationStore persists education entries.
type EducationStore interface {
	// ListAll returns every education entry, newest first.
	ListAll(ctx context.Context) ([]model.Education, error)

	// Create inserts a new entry and returns its assigned id.
	Create(ctx context.Context, edu model.Education) (int64, error)

	// Update overwrites the non-nil fields of upd on the entry with the
	// given id. Returns ErrNotFound if no such entry exists.
	Update(ctx context.Context, id int64, upd model.EducationUpdate) error

	// Delete removes the entry with the given id.
	// Returns ErrNotFound if no such entry exists.
	Delete(ctx context.Context, id int64) error
}
