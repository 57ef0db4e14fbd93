package storage

import "github.com/xaenox/axon/internal/models"

// Storage persists the thought collection as a whole. There is no
// per-record API: every mutation is a read-modify-write over the full
// set, which keeps the backends interchangeable and makes the
// lost-update risk of concurrent writers explicit at the interface.
type Storage interface {
	// LoadAll returns the stored thoughts. Soft-deleted records are
	// excluded unless includeDeleted is set.
	LoadAll(includeDeleted bool) ([]*models.Thought, error)

	// SaveAll replaces the entire stored collection.
	SaveAll(thoughts []*models.Thought) error

	Close() error
}
