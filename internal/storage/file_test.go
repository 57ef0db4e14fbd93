package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaenox/axon/internal/models"
)

func sampleThought(id, text string) *models.Thought {
	now := time.Now().Truncate(time.Second)
	return &models.Thought{
		ID:         id,
		Text:       text,
		Category:   models.CategoryTask,
		Priority:   models.PriorityMedium,
		Status:     models.StatusActive,
		Confidence: 0.65,
		Intensity:  3,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestFileStorageMissingFileLoadsEmpty(t *testing.T) {
	s := NewFileStorage(filepath.Join(t.TempDir(), "thoughts.json"))

	thoughts, err := s.LoadAll(true)
	require.NoError(t, err)
	assert.Empty(t, thoughts)
}

func TestFileStorageRoundTrip(t *testing.T) {
	s := NewFileStorage(filepath.Join(t.TempDir(), "thoughts.json"))

	first := sampleThought("1", "Renew the passport")
	second := sampleThought("2", "Sketch a garden layout")
	second.SoftDelete()

	require.NoError(t, s.SaveAll([]*models.Thought{first, second}))

	visible, err := s.LoadAll(false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "1", visible[0].ID)
	assert.Equal(t, first.Text, visible[0].Text)
	assert.Equal(t, first.Category, visible[0].Category)
	assert.Equal(t, first.Confidence, visible[0].Confidence)

	all, err := s.LoadAll(true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[1].IsDeleted)
	require.NotNil(t, all[1].DeletedAt)
}

func TestFileStorageOverwritesWholeCollection(t *testing.T) {
	s := NewFileStorage(filepath.Join(t.TempDir(), "thoughts.json"))

	require.NoError(t, s.SaveAll([]*models.Thought{sampleThought("1", "Renew the passport")}))
	require.NoError(t, s.SaveAll([]*models.Thought{sampleThought("2", "Sketch a garden layout")}))

	all, err := s.LoadAll(true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "2", all[0].ID)
}

func TestMemoryStorageIsolation(t *testing.T) {
	s := NewMemoryStorage()

	original := sampleThought("1", "Renew the passport")
	require.NoError(t, s.SaveAll([]*models.Thought{original}))

	// Mutating the caller's copy must not leak into the store.
	original.Text = "changed"

	loaded, err := s.LoadAll(true)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Renew the passport", loaded[0].Text)

	// Nor should mutating a loaded copy.
	loaded[0].Status = models.StatusCompleted
	again, err := s.LoadAll(true)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, again[0].Status)
}

func TestMemoryStorageExcludesDeletedByDefault(t *testing.T) {
	s := NewMemoryStorage()

	kept := sampleThought("1", "Renew the passport")
	gone := sampleThought("2", "Sketch a garden layout")
	gone.SoftDelete()
	require.NoError(t, s.SaveAll([]*models.Thought{kept, gone}))

	visible, err := s.LoadAll(false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "1", visible[0].ID)
}
