package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

type Category string

const (
	CategoryTask  Category = "task"
	CategoryIdea  Category = "idea"
	CategoryWorry Category = "worry"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryTask, CategoryIdea, CategoryWorry:
		return true
	}
	return false
}

func Categories() []Category {
	return []Category{CategoryTask, CategoryIdea, CategoryWorry}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities for sorting: high before medium before low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Status is the single lifecycle state of a thought. Soft deletion is
// tracked separately as a tombstone flag, not as a fourth status.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

const (
	MinTextLength = 3
	MaxTextLength = 5000
)

// Thought is one captured piece of text plus its classification and
// lifecycle metadata. Text is immutable after creation; only status
// fields mutate.
type Thought struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Category   Category   `json:"category"`
	Priority   Priority   `json:"priority"`
	Status     Status     `json:"status"`
	Confidence float64    `json:"confidence"`
	Intensity  int        `json:"intensity"`
	Tags       []string   `json:"tags,omitempty"`
	IsDeleted  bool       `json:"is_deleted"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ValidateText checks the length bounds applied to new thoughts. The
// bounds are inclusive: 3 and 5000 characters are both accepted.
func ValidateText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("thought text cannot be empty")
	}
	n := utf8.RuneCountInString(trimmed)
	if n < MinTextLength {
		return fmt.Errorf("thought must be at least %d characters", MinTextLength)
	}
	if n > MaxTextLength {
		return fmt.Errorf("thought must be at most %d characters", MaxTextLength)
	}
	return nil
}

func (t *Thought) MarkComplete() {
	t.Status = StatusCompleted
	t.touch()
}

func (t *Thought) MarkIncomplete() {
	t.Status = StatusActive
	t.touch()
}

func (t *Thought) Archive() {
	t.Status = StatusArchived
	t.touch()
}

func (t *Thought) Unarchive() {
	t.Status = StatusActive
	t.touch()
}

func (t *Thought) SoftDelete() {
	now := time.Now()
	t.IsDeleted = true
	t.DeletedAt = &now
	t.UpdatedAt = now
}

func (t *Thought) Restore() {
	t.IsDeleted = false
	t.DeletedAt = nil
	t.touch()
}

func (t *Thought) touch() {
	t.UpdatedAt = time.Now()
}

// Clone returns a deep copy so storage backends can hand out records
// without aliasing their internal state.
func (t *Thought) Clone() *Thought {
	c := *t
	if t.DeletedAt != nil {
		d := *t.DeletedAt
		c.DeletedAt = &d
	}
	if t.Tags != nil {
		c.Tags = append([]string(nil), t.Tags...)
	}
	return &c
}
