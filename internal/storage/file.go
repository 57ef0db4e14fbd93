package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xaenox/axon/internal/models"
)

// FileStorage persists the collection as one pretty-printed JSON array.
// A missing file loads as an empty collection; every save overwrites the
// whole file.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) LoadAll(includeDeleted bool) ([]*models.Thought, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*models.Thought{}, nil
		}
		return nil, fmt.Errorf("error reading %s: %w", s.path, err)
	}

	var thoughts []*models.Thought
	if err := json.Unmarshal(data, &thoughts); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", s.path, err)
	}

	if includeDeleted {
		return thoughts, nil
	}
	result := make([]*models.Thought, 0, len(thoughts))
	for _, t := range thoughts {
		if !t.IsDeleted {
			result = append(result, t)
		}
	}
	return result, nil
}

func (s *FileStorage) SaveAll(thoughts []*models.Thought) error {
	data, err := json.MarshalIndent(thoughts, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding thoughts: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStorage) Close() error {
	return nil
}
