package classifier

import (
	"strings"

	"github.com/xaenox/axon/internal/models"
)

// ScoringStrategy turns text into a single urgency/emotional-weight
// score in [1,10]. It runs as a separate pass from category and
// priority detection and must not be confused with confidence.
type ScoringStrategy interface {
	Score(text string) int
}

const (
	StrategyIntensity     = "intensity"
	StrategyImpactUrgency = "impact_urgency"
)

// NewScoringStrategy resolves a configured strategy name, defaulting to
// the capped-additive intensity formula.
func NewScoringStrategy(name string) ScoringStrategy {
	if name == StrategyImpactUrgency {
		return NewImpactUrgencyStrategy()
	}
	return NewIntensityStrategy()
}

// IntensityStrategy is the capped-additive formula: base 1, plus fixed
// increments for urgency words, emotionally intense words, heavy
// uppercase, and repeated exclamation marks.
type IntensityStrategy struct{}

func NewIntensityStrategy() *IntensityStrategy {
	return &IntensityStrategy{}
}

func (s *IntensityStrategy) Score(text string) int {
	score := 1
	lower := strings.ToLower(text)

	if anyMatch(lower, urgencyWords) {
		score += 3
	}
	if anyMatch(lower, intenseWords) {
		score += 2
	}
	if upperRatio(text) > 0.20 {
		score += 2
	}
	if strings.Count(text, "!") > 1 {
		score++
	}

	if score > 10 {
		score = 10
	}
	return score
}

// ImpactUrgencyStrategy multiplies an impact estimate by an urgency
// estimate, each in [1,5], then rescales the product into [1,10].
type ImpactUrgencyStrategy struct{}

func NewImpactUrgencyStrategy() *ImpactUrgencyStrategy {
	return &ImpactUrgencyStrategy{}
}

func (s *ImpactUrgencyStrategy) Score(text string) int {
	lower := strings.ToLower(text)

	impact := 1 + countMatches(lower, intenseWords) + countMatches(lower, emotionalWords)
	if upperRatio(text) > 0.20 {
		impact++
	}
	if impact > 5 {
		impact = 5
	}

	urgency := 1 + countMatches(lower, urgencyWords)
	if anyMatch(lower, priorityKeywords[models.PriorityHigh]) {
		urgency++
	}
	if urgency > 5 {
		urgency = 5
	}

	// Product is in [1,25]; map onto [1,10].
	scaled := (impact*urgency*10 + 24) / 25
	if scaled < 1 {
		scaled = 1
	}
	if scaled > 10 {
		scaled = 10
	}
	return scaled
}
