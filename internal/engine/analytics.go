package engine

import (
	"math"
	"strings"
	"time"

	"github.com/xaenox/axon/internal/models"
)

var stopWords = map[string]struct{}{
	"i": {}, "the": {}, "a": {}, "an": {}, "is": {}, "are": {},
	"to": {}, "of": {}, "and": {}, "or": {}, "but": {},
}

// Aggregate computes the analytics snapshot over the non-deleted
// collection. It is deterministic and side-effect-free.
func (m *Manager) Aggregate() (*models.Analytics, error) {
	thoughts, err := m.store.LoadAll(false)
	if err != nil {
		return nil, NewPersistenceError("failed to load thoughts", err)
	}
	return aggregate(thoughts, time.Now()), nil
}

func aggregate(thoughts []*models.Thought, now time.Time) *models.Analytics {
	a := &models.Analytics{
		ByCategory:  make(map[models.Category]int),
		ByPriority:  make(map[models.Priority]int),
		WeeklyTrend: make([]int, 7),
	}

	// Breakdowns, trend, confidence, and keywords run over the active
	// set: non-deleted and non-archived.
	var active []*models.Thought
	for _, t := range thoughts {
		if t.IsDeleted {
			continue
		}
		a.TotalThoughts++
		switch t.Status {
		case models.StatusCompleted:
			a.CompletedThoughts++
		case models.StatusArchived:
			a.ArchivedThoughts++
		default:
			a.ActiveThoughts++
		}
		if t.Status != models.StatusArchived {
			active = append(active, t)
		}
	}

	intensitySums := make(map[models.Category]int)
	confidenceSum := 0.0
	for _, t := range active {
		a.ByCategory[t.Category]++
		a.ByPriority[t.Priority]++
		confidenceSum += t.Confidence
		intensitySums[t.Category] += t.Intensity

		daysAgo := daysBetween(t.CreatedAt, now)
		if daysAgo >= 0 && daysAgo < 7 {
			a.WeeklyTrend[6-daysAgo]++
		}
	}

	// Zero-count buckets must be absent, not present with value 0; the
	// maps only ever gain keys from seen records, so nothing to prune.

	if a.TotalThoughts > 0 {
		a.CompletionRate = round1(float64(a.CompletedThoughts) / float64(a.TotalThoughts) * 100)
	}
	if len(active) > 0 {
		a.AvgConfidence = round2(confidenceSum / float64(len(active)))
		a.AvgIntensity = make(map[models.Category]float64)
		for cat, sum := range intensitySums {
			a.AvgIntensity[cat] = round1(float64(sum) / float64(a.ByCategory[cat]))
		}
	}

	a.TopKeywords = topKeywords(active, 5)
	return a
}

// daysBetween counts whole days from created to now; negative when
// created is in the future.
func daysBetween(created, now time.Time) int {
	diff := now.Sub(created)
	if diff < 0 {
		return -1
	}
	return int(diff.Hours() / 24)
}

// topKeywords tokenizes active texts on whitespace, strips surrounding
// punctuation, lowercases, drops short tokens and stop words, and
// returns the n most frequent. Ties keep first-encountered order.
func topKeywords(thoughts []*models.Thought, n int) []models.KeywordCount {
	counts := make(map[string]int)
	var order []string

	for _, t := range thoughts {
		for _, word := range strings.Fields(strings.ToLower(t.Text)) {
			clean := strings.Trim(word, ".,!?;:")
			if len(clean) <= 3 {
				continue
			}
			if _, stop := stopWords[clean]; stop {
				continue
			}
			if counts[clean] == 0 {
				order = append(order, clean)
			}
			counts[clean]++
		}
	}

	// Stable selection sort over the encounter order keeps ties
	// deterministic without a secondary comparator.
	result := make([]models.KeywordCount, 0, n)
	used := make(map[string]struct{})
	for len(result) < n {
		best := ""
		bestCount := 0
		for _, kw := range order {
			if _, done := used[kw]; done {
				continue
			}
			if counts[kw] > bestCount {
				best = kw
				bestCount = counts[kw]
			}
		}
		if best == "" {
			break
		}
		used[best] = struct{}{}
		result = append(result, models.KeywordCount{Keyword: best, Count: bestCount})
	}
	return result
}

// NextAction recommends the single highest-scoring thought to act on
// next, or nil when nothing is eligible.
func (m *Manager) NextAction() (*models.Recommendation, error) {
	thoughts, err := m.store.LoadAll(false)
	if err != nil {
		return nil, NewPersistenceError("failed to load thoughts", err)
	}
	return nextAction(thoughts, time.Now()), nil
}

func nextAction(thoughts []*models.Thought, now time.Time) *models.Recommendation {
	var best *models.Thought
	bestScore := -1.0

	for _, t := range thoughts {
		if t.IsDeleted || t.Status == models.StatusCompleted || t.Status == models.StatusArchived {
			continue
		}
		score := actionScore(t, now)
		if score > bestScore {
			bestScore = score
			best = t
		}
	}

	if best == nil {
		return nil
	}
	return &models.Recommendation{Thought: best, Score: round2(bestScore)}
}

// actionScore composes a base weight with bonuses for actionable
// category, urgency, intensity, and age, clamped to 1.0. High priority
// stands in for the in-progress state the collapsed lifecycle no longer
// tracks.
func actionScore(t *models.Thought, now time.Time) float64 {
	score := 0.5
	if t.Category == models.CategoryTask {
		score += 0.2
	}
	if t.Priority == models.PriorityHigh {
		score += 0.15
	}
	score += float64(t.Intensity) / 10 * 0.2

	ageDays := daysBetween(t.CreatedAt, now)
	if ageDays > 7 {
		score += 0.15
	} else if ageDays > 3 {
		score += 0.1
	}

	return math.Min(score, 1.0)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
