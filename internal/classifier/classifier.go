package classifier

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/xaenox/axon/internal/models"
)

// alternativeThreshold is the minimum relative score (hits normalized by
// total hits) a non-primary category needs to be reported.
const alternativeThreshold = 0.15

type Classifier interface {
	Classify(text string) models.Classification
}

// LexiconClassifier scores text against the keyword lexicon. It is a
// pure function of its input: same text, same result. It never fails;
// with no signal it falls back to idea at confidence 0.5.
type LexiconClassifier struct {
	scorer ScoringStrategy
}

func NewLexiconClassifier(scorer ScoringStrategy) *LexiconClassifier {
	if scorer == nil {
		scorer = NewIntensityStrategy()
	}
	return &LexiconClassifier{scorer: scorer}
}

func (c *LexiconClassifier) Classify(text string) models.Classification {
	lower := strings.ToLower(text)

	hits := make(map[models.Category]int, 3)
	total := 0
	for cat, keywords := range categoryKeywords {
		n := countMatches(lower, keywords)
		hits[cat] = n
		total += n
	}

	category := detectCategory(hits)
	priority := detectPriority(lower)

	categoryConfidence := confidenceFor(hits[category])
	priorityConfidence := confidenceFor(countMatches(lower, priorityKeywords[priority]))
	if !anyMatch(lower, priorityKeywords[priority]) {
		// Defaulted priority carries no supporting keywords.
		priorityConfidence = 0.5
	}
	confidence := round2((categoryConfidence + priorityConfidence) / 2)

	result := models.Classification{
		Category:   category,
		Priority:   priority,
		Confidence: confidence,
		Intensity:  c.scorer.Score(text),
		Reasoning:  reasoningFor(text, lower, category, total),
		Tags:       extractTags(text, category),
	}
	if total > 0 {
		result.Alternatives = alternativesFor(hits, total, category)
	}
	return result
}

// detectCategory picks the category with the strictly highest hit count.
// Ties, including the all-zero case, default to idea.
func detectCategory(hits map[models.Category]int) models.Category {
	best := models.CategoryIdea
	bestHits := hits[models.CategoryIdea]
	for _, cat := range []models.Category{models.CategoryTask, models.CategoryWorry} {
		if hits[cat] > bestHits {
			best = cat
			bestHits = hits[cat]
		}
	}
	if bestHits == 0 {
		return models.CategoryIdea
	}
	return best
}

// detectPriority scans levels in fixed precedence order and returns the
// first with any keyword match, defaulting to medium.
func detectPriority(lower string) models.Priority {
	for _, level := range priorityOrder {
		if anyMatch(lower, priorityKeywords[level]) {
			return level
		}
	}
	return models.PriorityMedium
}

// confidenceFor maps a keyword match count to [0.5, 0.95].
func confidenceFor(matches int) float64 {
	return math.Min(0.95, 0.5+float64(matches)*0.15)
}

func alternativesFor(hits map[models.Category]int, total int, primary models.Category) []models.Alternative {
	var alts []models.Alternative
	for cat, n := range hits {
		if cat == primary || n == 0 {
			continue
		}
		score := float64(n) / float64(total)
		if score > alternativeThreshold {
			alts = append(alts, models.Alternative{Category: cat, Confidence: round2(score)})
		}
	}
	sort.Slice(alts, func(i, j int) bool {
		if alts[i].Confidence != alts[j].Confidence {
			return alts[i].Confidence > alts[j].Confidence
		}
		return alts[i].Category < alts[j].Category
	})
	return alts
}

// reasoningFor names the signal classes that fired rather than echoing
// the keywords themselves.
func reasoningFor(text, lower string, category models.Category, totalHits int) string {
	if totalHits == 0 {
		return "No strong signals"
	}

	switch category {
	case models.CategoryTask:
		var found []string
		if anyMatch(lower, actionWords) {
			found = append(found, "action words")
		}
		if anyMatch(lower, deadlineWords) {
			found = append(found, "urgency markers")
		}
		if len(found) > 0 {
			return fmt.Sprintf("Detected %s", strings.Join(found, ", "))
		}
		return "Has actionable components"

	case models.CategoryWorry:
		var found []string
		if anyMatch(lower, emotionalWords) {
			found = append(found, "emotional words")
		}
		if upperRatio(text) > 0.2 {
			found = append(found, "emphasis")
		}
		if len(found) > 0 {
			return fmt.Sprintf("Detected %s", strings.Join(found, ", "))
		}
		return "Shows concern"

	default:
		return "Exploratory thought"
	}
}

// extractTags pulls hashtags out of the text and adds the detected
// category, mirroring how captured notes get tagged.
func extractTags(text string, category models.Category) []string {
	seen := map[string]struct{}{string(category): {}}
	tags := []string{string(category)}
	for _, word := range strings.Fields(text) {
		if !strings.HasPrefix(word, "#") {
			continue
		}
		tag := strings.ToLower(strings.Trim(strings.TrimPrefix(word, "#"), ".,!?;:"))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
