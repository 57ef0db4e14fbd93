package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaenox/axon/internal/models"
)

func TestClassifyIsDeterministic(t *testing.T) {
	c := NewLexiconClassifier(nil)

	text := "I must finish the deadline, maybe explore later"
	first := c.Classify(text)
	second := c.Classify(text)

	assert.Equal(t, first, second)
}

func TestClassifyTaskWithAlternatives(t *testing.T) {
	c := NewLexiconClassifier(nil)

	result := c.Classify("I must finish the deadline, maybe explore later")

	assert.Equal(t, models.CategoryTask, result.Category)
	assert.Equal(t, models.PriorityHigh, result.Priority)
	assert.InDelta(t, 0.8, result.Confidence, 0.001)
	assert.Equal(t, "Detected action words, urgency markers", result.Reasoning)

	require.Len(t, result.Alternatives, 1)
	assert.Equal(t, models.CategoryIdea, result.Alternatives[0].Category)
	assert.InDelta(t, 0.4, result.Alternatives[0].Confidence, 0.001)
}

func TestClassifyWorry(t *testing.T) {
	c := NewLexiconClassifier(nil)

	result := c.Classify("I'm worried and stressed about this")

	assert.Equal(t, models.CategoryWorry, result.Category)
	assert.Equal(t, models.PriorityMedium, result.Priority)
	assert.InDelta(t, 0.65, result.Confidence, 0.001)
	assert.Equal(t, "Detected emotional words", result.Reasoning)
}

func TestClassifyWorryWithEmphasis(t *testing.T) {
	c := NewLexiconClassifier(nil)

	result := c.Classify("WORRIED ABOUT EVERYTHING")

	assert.Equal(t, models.CategoryWorry, result.Category)
	assert.Equal(t, "Detected emotional words, emphasis", result.Reasoning)
}

func TestClassifyNoSignalsDefaultsToIdea(t *testing.T) {
	c := NewLexiconClassifier(nil)

	result := c.Classify("zzzz qqqq xxxx")

	assert.Equal(t, models.CategoryIdea, result.Category)
	assert.Equal(t, models.PriorityMedium, result.Priority)
	assert.Equal(t, 0.5, result.Confidence)
	assert.Equal(t, "No strong signals", result.Reasoning)
	assert.Empty(t, result.Alternatives)
}

func TestClassifyTieDefaultsToIdea(t *testing.T) {
	c := NewLexiconClassifier(nil)

	// One task hit ("need" inside "needed") and one idea hit ("maybe").
	result := c.Classify("maybe urgent fix needed")

	assert.Equal(t, models.CategoryIdea, result.Category)
}

func TestPriorityPrecedenceHighBeatsLow(t *testing.T) {
	c := NewLexiconClassifier(nil)

	// "maybe" is a low-priority keyword, "urgent" a high one; high wins.
	result := c.Classify("maybe urgent fix needed")
	assert.Equal(t, models.PriorityHigh, result.Priority)

	result = c.Classify("maybe later someday")
	assert.Equal(t, models.PriorityLow, result.Priority)
}

func TestConfidenceBounds(t *testing.T) {
	c := NewLexiconClassifier(nil)

	inputs := []string{
		"zzzz qqqq xxxx",
		"urgent asap critical must emergency immediately today need should finish complete deadline due schedule",
		"maybe could might imagine think create build explore",
		"stressed worried anxious afraid scared concerned nervous doubt",
	}
	for _, text := range inputs {
		result := c.Classify(text)
		assert.GreaterOrEqual(t, result.Confidence, 0.5, "input %q", text)
		assert.LessOrEqual(t, result.Confidence, 0.95, "input %q", text)
	}
}

func TestSubstringMatchingIsPreserved(t *testing.T) {
	c := NewLexiconClassifier(nil)

	// "need" matches inside "needless": substring containment is the
	// documented matching rule, word boundaries are not respected.
	result := c.Classify("a needless remark")
	assert.Equal(t, models.CategoryTask, result.Category)
}

func TestExtractTags(t *testing.T) {
	c := NewLexiconClassifier(nil)

	result := c.Classify("Ship the release #launch #Work")

	assert.Equal(t, []string{"idea", "launch", "work"}, result.Tags)
}
