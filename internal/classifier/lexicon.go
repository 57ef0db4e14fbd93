package classifier

import (
	"strings"

	"github.com/xaenox/axon/internal/models"
)

// The lexicon is the sole source of classification signal: fixed keyword
// sets matched by case-insensitive substring containment. Substring
// matching is deliberate and known to produce false positives ("task"
// matches inside "multitasking"); it is preserved for predictable
// behavior rather than replaced with word-boundary matching.

var priorityKeywords = map[models.Priority][]string{
	models.PriorityHigh:   {"urgent", "asap", "critical", "must", "emergency", "immediately", "today"},
	models.PriorityMedium: {"soon", "important", "should", "need"},
	models.PriorityLow:    {"later", "maybe", "eventually", "someday", "consider"},
}

// priorityOrder fixes detection precedence: the first level with any
// match wins, so "maybe urgent" is high, not low.
var priorityOrder = []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow}

var categoryKeywords = map[models.Category][]string{
	models.CategoryTask:  {"need", "must", "should", "do", "finish", "complete", "deadline", "due", "schedule"},
	models.CategoryIdea:  {"maybe", "could", "might", "what if", "imagine", "think", "create", "build", "explore"},
	models.CategoryWorry: {"stressed", "worried", "anxious", "afraid", "scared", "concerned", "nervous", "doubt"},
}

// Auxiliary sets used by intensity scoring and reasoning, separate from
// the category/priority detection pass.
var (
	urgencyWords   = []string{"asap", "today", "must", "critical"}
	intenseWords   = []string{"stressed", "terrified", "hate", "love"}
	actionWords    = []string{"need", "must", "should"}
	deadlineWords  = []string{"deadline", "asap", "due"}
	emotionalWords = []string{"stressed", "worried", "anxious"}
)

func countMatches(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

func anyMatch(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// upperRatio is the share of uppercase characters in the original text,
// used as an emphasis signal.
func upperRatio(text string) float64 {
	if len(text) == 0 {
		return 0
	}
	upper := 0
	for _, r := range text {
		if r >= 'A' && r <= 'Z' {
			upper++
		}
	}
	return float64(upper) / float64(len(text))
}
