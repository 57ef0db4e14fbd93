// Package engine ties the classifier, similarity detector, and storage
// together into the operations the presentation layer calls. The engine
// owns no session state: everything it knows is loaded from storage per
// operation and written back whole.
package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xaenox/axon/internal/classifier"
	"github.com/xaenox/axon/internal/models"
	"github.com/xaenox/axon/internal/similarity"
	"github.com/xaenox/axon/internal/storage"
)

type Manager struct {
	store             storage.Storage
	classifier        classifier.Classifier
	blockingThreshold float64
	reportThreshold   float64
	logger            *zap.Logger
}

// Option tweaks a Manager at construction.
type Option func(*Manager)

func WithBlockingThreshold(t float64) Option {
	return func(m *Manager) { m.blockingThreshold = t }
}

func WithReportThreshold(t float64) Option {
	return func(m *Manager) { m.reportThreshold = t }
}

func New(store storage.Storage, clf classifier.Classifier, logger *zap.Logger, opts ...Option) *Manager {
	m := &Manager{
		store:             store,
		classifier:        clf,
		blockingThreshold: similarity.BlockingThreshold,
		reportThreshold:   similarity.ReportThreshold,
		logger:            logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Classify analyzes text without storing anything. The same validation
// as Create applies; classification itself never fails.
func (m *Manager) Classify(text string) (models.Classification, error) {
	if err := models.ValidateText(text); err != nil {
		return models.Classification{}, NewValidationError(err.Error())
	}
	return m.classifier.Classify(strings.TrimSpace(text)), nil
}

// CheckDuplicate returns the best similarity score between text and the
// stored non-deleted thoughts, with the matching thought when the score
// is meaningful.
func (m *Manager) CheckDuplicate(text string) (float64, *models.Thought, error) {
	thoughts, err := m.store.LoadAll(false)
	if err != nil {
		return 0, nil, NewPersistenceError("failed to load thoughts", err)
	}
	score, match := similarity.CheckDuplicate(text, thoughts)
	return score, match, nil
}

// Create validates, deduplicates, classifies, and persists a new
// thought. Non-nil category or priority overrides win over the
// classifier's suggestion; confidence and intensity always come from
// the classifier.
func (m *Manager) Create(text string, category *models.Category, priority *models.Priority) (*models.Thought, error) {
	if err := models.ValidateText(text); err != nil {
		return nil, NewValidationError(err.Error())
	}
	text = strings.TrimSpace(text)

	all, err := m.store.LoadAll(true)
	if err != nil {
		return nil, NewPersistenceError("failed to load thoughts", err)
	}

	if score, match := similarity.CheckDuplicate(text, all); match != nil && score >= m.blockingThreshold {
		m.logger.Info("Rejected duplicate thought",
			zap.Float64("similarity", score),
			zap.String("match_id", match.ID))
		return nil, NewDuplicateError(score, match.ID)
	}

	result := m.classifier.Classify(text)
	if category != nil && category.Valid() {
		result.Category = *category
	}
	if priority != nil && priority.Valid() {
		result.Priority = *priority
	}

	now := time.Now()
	thought := &models.Thought{
		ID:         uuid.New().String(),
		Text:       text,
		Category:   result.Category,
		Priority:   result.Priority,
		Status:     models.StatusActive,
		Confidence: result.Confidence,
		Intensity:  result.Intensity,
		Tags:       result.Tags,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	all = append(all, thought)
	if err := m.store.SaveAll(all); err != nil {
		return nil, NewPersistenceError("failed to save thought", err)
	}

	m.logger.Info("Created thought",
		zap.String("id", thought.ID),
		zap.String("category", string(thought.Category)),
		zap.String("priority", string(thought.Priority)),
		zap.Float64("confidence", thought.Confidence))
	return thought, nil
}

// SetStatus moves a thought to a new lifecycle state and stamps
// updated_at. The target must exist and not be soft-deleted.
func (m *Manager) SetStatus(id string, status models.Status) (*models.Thought, error) {
	if !status.Valid() {
		return nil, NewValidationError("unknown status: " + string(status))
	}
	return m.mutate(id, false, func(t *models.Thought) error {
		switch status {
		case models.StatusCompleted:
			t.MarkComplete()
		case models.StatusArchived:
			t.Archive()
		default:
			t.MarkIncomplete()
		}
		return nil
	})
}

// ToggleComplete flips a thought between active and completed.
func (m *Manager) ToggleComplete(id string) (*models.Thought, error) {
	return m.mutate(id, false, func(t *models.Thought) error {
		if t.Status == models.StatusCompleted {
			t.MarkIncomplete()
		} else {
			t.MarkComplete()
		}
		return nil
	})
}

func (m *Manager) Archive(id string) (*models.Thought, error) {
	return m.SetStatus(id, models.StatusArchived)
}

func (m *Manager) Unarchive(id string) (*models.Thought, error) {
	return m.SetStatus(id, models.StatusActive)
}

// SoftDelete marks a thought deleted but keeps it restorable.
func (m *Manager) SoftDelete(id string) error {
	_, err := m.mutate(id, false, func(t *models.Thought) error {
		t.SoftDelete()
		return nil
	})
	return err
}

// Restore brings a soft-deleted thought back into default queries.
func (m *Manager) Restore(id string) error {
	_, err := m.mutate(id, true, func(t *models.Thought) error {
		if !t.IsDeleted {
			return NewValidationError("thought is not deleted")
		}
		t.Restore()
		return nil
	})
	return err
}

// HardDelete removes a thought from the store entirely, deleted or not.
func (m *Manager) HardDelete(id string) error {
	all, err := m.store.LoadAll(true)
	if err != nil {
		return NewPersistenceError("failed to load thoughts", err)
	}

	kept := all[:0]
	found := false
	for _, t := range all {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return NewNotFoundError(id)
	}

	if err := m.store.SaveAll(kept); err != nil {
		return NewPersistenceError("failed to save thoughts", err)
	}
	m.logger.Info("Permanently deleted thought", zap.String("id", id))
	return nil
}

// GetByID fetches one thought. Soft-deleted records are only reachable
// when includeDeleted is set.
func (m *Manager) GetByID(id string, includeDeleted bool) (*models.Thought, error) {
	all, err := m.store.LoadAll(includeDeleted)
	if err != nil {
		return nil, NewPersistenceError("failed to load thoughts", err)
	}
	for _, t := range all {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, NewNotFoundError(id)
}

// mutate runs fn against the identified thought inside one
// read-modify-write cycle over the whole collection.
func (m *Manager) mutate(id string, includeDeleted bool, fn func(*models.Thought) error) (*models.Thought, error) {
	all, err := m.store.LoadAll(true)
	if err != nil {
		return nil, NewPersistenceError("failed to load thoughts", err)
	}

	var target *models.Thought
	for _, t := range all {
		if t.ID != id {
			continue
		}
		if t.IsDeleted && !includeDeleted {
			break
		}
		target = t
		break
	}
	if target == nil {
		return nil, NewNotFoundError(id)
	}

	if err := fn(target); err != nil {
		return nil, err
	}

	if err := m.store.SaveAll(all); err != nil {
		return nil, NewPersistenceError("failed to save thoughts", err)
	}
	return target, nil
}

// Filter narrows Query results. Nil enum fields mean "any".
type Filter struct {
	Search          string
	Category        *models.Category
	Priority        *models.Priority
	Status          *models.Status
	IncludeArchived bool
}

// Sort keys accepted by Query.
const (
	SortPriorityDate = "priority_date"
	SortPriority     = "priority"
	SortNewest       = "newest"
	SortOldest       = "oldest"
	SortName         = "name"
	SortIntensity    = "intensity"
)

// Query returns non-deleted thoughts matching the filter, sorted.
// Archived thoughts are hidden unless the filter asks for them.
func (m *Manager) Query(filter Filter, sortBy string) ([]*models.Thought, error) {
	thoughts, err := m.store.LoadAll(false)
	if err != nil {
		return nil, NewPersistenceError("failed to load thoughts", err)
	}

	filtered := make([]*models.Thought, 0, len(thoughts))
	search := strings.ToLower(filter.Search)
	for _, t := range thoughts {
		if !filter.IncludeArchived && t.Status == models.StatusArchived {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Text), search) {
			continue
		}
		if filter.Category != nil && t.Category != *filter.Category {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		filtered = append(filtered, t)
	}

	sortThoughts(filtered, sortBy)
	return filtered, nil
}

func sortThoughts(thoughts []*models.Thought, sortBy string) {
	switch sortBy {
	case SortPriority:
		sort.SliceStable(thoughts, func(i, j int) bool {
			return thoughts[i].Priority.Rank() < thoughts[j].Priority.Rank()
		})
	case SortNewest, "date":
		sort.SliceStable(thoughts, func(i, j int) bool {
			return thoughts[i].CreatedAt.After(thoughts[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(thoughts, func(i, j int) bool {
			return thoughts[i].CreatedAt.Before(thoughts[j].CreatedAt)
		})
	case SortName:
		sort.SliceStable(thoughts, func(i, j int) bool {
			return thoughts[i].Text < thoughts[j].Text
		})
	case SortIntensity:
		sort.SliceStable(thoughts, func(i, j int) bool {
			return thoughts[i].Intensity > thoughts[j].Intensity
		})
	default: // priority_date
		sort.SliceStable(thoughts, func(i, j int) bool {
			if thoughts[i].Priority.Rank() != thoughts[j].Priority.Rank() {
				return thoughts[i].Priority.Rank() < thoughts[j].Priority.Rank()
			}
			return thoughts[i].CreatedAt.After(thoughts[j].CreatedAt)
		})
	}
}

// SimilarPairs reports near-duplicate pairs across the whole store at
// the reportable threshold. O(n^2) in store size.
func (m *Manager) SimilarPairs() ([]models.SimilarPair, error) {
	thoughts, err := m.store.LoadAll(false)
	if err != nil {
		return nil, NewPersistenceError("failed to load thoughts", err)
	}
	return similarity.FindSimilarPairs(thoughts, m.reportThreshold), nil
}
