package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntensityStrategy(t *testing.T) {
	s := NewIntensityStrategy()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"no signals", "relax and breathe", 1},
		{"urgency word", "must do this today", 4},
		{"emotional word", "I am stressed", 3},
		{"heavy caps", "HELP ME NOW PLEASE", 3},
		{"everything at once", "URGENT!! must fix today STRESSED", 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Score(tt.text))
		})
	}
}

func TestIntensityStrategyStaysInRange(t *testing.T) {
	s := NewIntensityStrategy()

	inputs := []string{"", "ok", "ASAP!! TODAY!! STRESSED!! CRITICAL MUST!!"}
	for _, text := range inputs {
		score := s.Score(text)
		assert.GreaterOrEqual(t, score, 1, "input %q", text)
		assert.LessOrEqual(t, score, 10, "input %q", text)
	}
}

func TestImpactUrgencyStrategy(t *testing.T) {
	s := NewImpactUrgencyStrategy()

	assert.Equal(t, 1, s.Score("relax and breathe"))

	calm := s.Score("someday perhaps")
	loaded := s.Score("critical emergency today asap, totally stressed and worried")
	assert.Greater(t, loaded, calm)
}

func TestImpactUrgencyStrategyStaysInRange(t *testing.T) {
	s := NewImpactUrgencyStrategy()

	inputs := []string{"", "fine", "ASAP TODAY MUST CRITICAL stressed terrified hate love worried anxious"}
	for _, text := range inputs {
		score := s.Score(text)
		assert.GreaterOrEqual(t, score, 1, "input %q", text)
		assert.LessOrEqual(t, score, 10, "input %q", text)
	}
}

func TestNewScoringStrategySelection(t *testing.T) {
	assert.IsType(t, &IntensityStrategy{}, NewScoringStrategy("intensity"))
	assert.IsType(t, &IntensityStrategy{}, NewScoringStrategy(""))
	assert.IsType(t, &ImpactUrgencyStrategy{}, NewScoringStrategy("impact_urgency"))
}
