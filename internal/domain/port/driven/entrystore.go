// Package driven defines the driven ports (persistence interfaces) of the
// agenda domain, implemented by adapters.
package driven

import (
	"context"
	"errors"

	"github.com/gomunapp/gomun/internal/domain/model"
)

// ErrEntryNotFound is returned when an operation references an entry id
// that does not exist in the store.
var ErrEntryNotFound = errors.New("entry not found")

// EntryStore defines the driven port for entry persistence.
type EntryStore interface {
	// Create assigns an id and creation timestamp, inserts the entry, and
	// returns the stored row.
	Create(ctx context.Context, entry model.Entry) (model.Entry, error)
	// ListAll returns all entries ordered by creation time descending.
	ListAll(ctx context.Context) ([]model.Entry, error)
	// GetByID returns nil, nil when the id does not exist.
	GetByID(ctx context.Context, id string) (*model.Entry, error)
	// Update changes title and note only. Returns ErrEntryNotFound when the
	// id does not match any row.
	Update(ctx context.Context, id, title, note string) (*model.Entry, error)
	// Delete removes the entry. Returns ErrEntryNotFound when the id does
	// not match any row.
	Delete(ctx context.Context, id string) error
}
