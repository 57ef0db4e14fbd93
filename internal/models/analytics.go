package models

// Classification is the result of analyzing one piece of text. It is a
// suggestion handed to the caller; overrides may replace category and
// priority before a thought is created.
type Classification struct {
	Category     Category      `json:"category"`
	Priority     Priority      `json:"priority"`
	Confidence   float64       `json:"confidence"`
	Intensity    int           `json:"intensity"`
	Reasoning    string        `json:"reasoning"`
	Alternatives []Alternative `json:"alternatives,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
}

// Alternative is a runner-up category whose relative score was strong
// enough to report.
type Alternative struct {
	Category   Category `json:"category"`
	Confidence float64  `json:"confidence"`
}

// KeywordCount pairs a keyword with its frequency across active thoughts.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// Analytics is a derived, read-only snapshot over the non-deleted
// collection. It is never persisted.
type Analytics struct {
	TotalThoughts     int                  `json:"total_thoughts"`
	CompletedThoughts int                  `json:"completed_thoughts"`
	ArchivedThoughts  int                  `json:"archived_thoughts"`
	ActiveThoughts    int                  `json:"active_thoughts"`
	ByCategory        map[Category]int     `json:"by_category"`
	ByPriority        map[Priority]int     `json:"by_priority"`
	CompletionRate    float64              `json:"completion_rate"`
	WeeklyTrend       []int                `json:"weekly_trend"`
	AvgConfidence     float64              `json:"avg_confidence"`
	AvgIntensity      map[Category]float64 `json:"avg_intensity_by_category,omitempty"`
	TopKeywords       []KeywordCount       `json:"top_keywords,omitempty"`
}

// Recommendation is the single highest-scoring next action, if any.
type Recommendation struct {
	Thought *Thought `json:"thought"`
	Score   float64  `json:"score"`
}

// SimilarPair reports two stored thoughts whose texts are close enough
// to surface as near-duplicates.
type SimilarPair struct {
	FirstID    string  `json:"first_id"`
	SecondID   string  `json:"second_id"`
	FirstText  string  `json:"first_text"`
	SecondText string  `json:"second_text"`
	Similarity float64 `json:"similarity"`
}
