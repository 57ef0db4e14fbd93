package storage

import (
	"sync"

	"github.com/xaenox/axon/internal/models"
)

// MemoryStorage keeps the collection in process memory. Used by tests
// and by deployments that do not want persistence.
type MemoryStorage struct {
	mu       sync.RWMutex
	thoughts []*models.Thought
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) LoadAll(includeDeleted bool) ([]*models.Thought, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Thought, 0, len(s.thoughts))
	for _, t := range s.thoughts {
		if t.IsDeleted && !includeDeleted {
			continue
		}
		result = append(result, t.Clone())
	}
	return result, nil
}

func (s *MemoryStorage) SaveAll(thoughts []*models.Thought) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]*models.Thought, 0, len(thoughts))
	for _, t := range thoughts {
		copied = append(copied, t.Clone())
	}
	s.thoughts = copied
	return nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
