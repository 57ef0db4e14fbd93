package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/xaenox/axon/internal/models"
)

// GPTResponse is the structured payload the model is asked to return.
type GPTResponse struct {
	Category   string   `json:"category"`
	Priority   string   `json:"priority"`
	Confidence float64  `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
	Tags       []string `json:"tags"`
}

// GPTClassifier asks an OpenAI chat model to classify a thought. Any
// request, parse, or enum-validation failure falls back to the local
// lexicon classifier, so classification never fails.
type GPTClassifier struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	fallback    *LexiconClassifier
	scorer      ScoringStrategy
	logger      *zap.Logger
}

func NewGPTClassifier(apiKey, model string, maxTokens int, temperature float64, scorer ScoringStrategy, logger *zap.Logger) *GPTClassifier {
	if scorer == nil {
		scorer = NewIntensityStrategy()
	}
	return &GPTClassifier{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		fallback:    NewLexiconClassifier(scorer),
		scorer:      scorer,
		logger:      logger,
	}
}

func (c *GPTClassifier) Classify(text string) models.Classification {
	ctx := context.Background()

	prompt := fmt.Sprintf(`Classify the following personal thought and return only a JSON object with this structure:
{
    "category": "task" | "idea" | "worry",
    "priority": "low" | "medium" | "high",
    "confidence": 0.0-1.0,
    "reasoning": "one short sentence",
    "tags": ["tag1", "tag2"]
}

Thought: %s`, text)

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   c.maxTokens,
			Temperature: float32(c.temperature),
		},
	)
	if err != nil {
		c.logger.Error("Failed to get GPT response", zap.Error(err))
		return c.fallback.Classify(text)
	}

	var gptResponse GPTResponse
	response := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(response), &gptResponse); err != nil {
		c.logger.Error("Failed to parse GPT response",
			zap.Error(err),
			zap.String("response", response))
		return c.fallback.Classify(text)
	}

	category := models.Category(strings.ToLower(gptResponse.Category))
	priority := models.Priority(strings.ToLower(gptResponse.Priority))
	if !category.Valid() || !priority.Valid() {
		c.logger.Warn("GPT returned values outside the closed enums",
			zap.String("category", gptResponse.Category),
			zap.String("priority", gptResponse.Priority))
		return c.fallback.Classify(text)
	}

	confidence := gptResponse.Confidence
	if confidence < 0 || confidence > 1 {
		confidence = 0.5
	}

	return models.Classification{
		Category:   category,
		Priority:   priority,
		Confidence: round2(confidence),
		Intensity:  c.scorer.Score(text),
		Reasoning:  gptResponse.Reasoning,
		Tags:       append([]string{string(category)}, gptResponse.Tags...),
	}
}
