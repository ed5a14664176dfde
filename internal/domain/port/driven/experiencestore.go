// Package driven defines the port interfaces implemented by driven
// adapters (sqlite, local filesystem).
package driven

import (
	"context"

	"github.com/ericfisherdev/foliopanel/internal/domain/model"
)

// ExperienceStore persists work history entries.
type ExperienceStore interface {
	// ListAll returns every experience entry, newest first.
	ListAll(ctx context.Context) ([]model.Experience, error)

	// Create inserts a new entry and returns its assigned id.
	Create(ctx context.Context, exp model.Experience) (int64, error)

	// Update overwrites the non-nil fields of upd on the entry with the
	// given id. Returns ErrNotFound if no such entry exists.
	Update(ctx context.Context, id int64, upd model.ExperienceUpdate) error

	// Delete removes the entry with the given id.
	// Returns ErrNotFound if no such entry exists.
	Delete(ctx context.Context, id int64) error
}
