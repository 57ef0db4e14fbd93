// Package similarity implements duplicate detection over stored
// thoughts. Scores come from a sequence-matcher ratio (twice the total
// length of the longest matching blocks divided by the combined length),
// so a score of 1.0 means the texts are identical ignoring case.
//
// Every check scans the whole collection: CheckDuplicate is O(n) in the
// number of stored thoughts (times the cost of one ratio), and
// FindSimilarPairs is O(n^2). There is no index; at personal note-taking
// scale this is acceptable.
package similarity

import (
	"sort"
	"strings"

	"github.com/xaenox/axon/internal/models"
)

const (
	// BlockingThreshold refuses creation when met or exceeded. The
	// stricter 0.85 variant is used rather than 0.75.
	BlockingThreshold = 0.85

	// ReportThreshold surfaces near-duplicates in analytics without
	// blocking anything.
	ReportThreshold = 0.65

	// containmentMinLen gates the substring fast path: both sides must
	// be longer than this for containment to count as a duplicate.
	containmentMinLen = 10
)

// Ratio returns a similarity score in [0,1] between two strings,
// computed as 2*M / (len(a)+len(b)) where M is the total size of the
// longest matching blocks found recursively.
func Ratio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	matched := matchingSize(a, b)
	return 2.0 * float64(matched) / float64(len(a)+len(b))
}

// matchingSize sums the longest common substring of a and b with the
// matches found recursively to its left and right.
func matchingSize(a, b string) int {
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingSize(a[:ai], b[:bi])
	total += matchingSize(a[ai+size:], b[bi+size:])
	return total
}

// longestMatch finds the longest common substring using one row of the
// classic dynamic program, preferring the earliest match in a.
func longestMatch(a, b string) (ai, bi, size int) {
	lengths := make([]int, len(b)+1)
	for i := 0; i < len(a); i++ {
		// Walk b backwards so lengths[j] still holds the previous row.
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lengths[j+1] = lengths[j] + 1
				if lengths[j+1] > size {
					size = lengths[j+1]
					ai = i - size + 1
					bi = j - size + 1
				}
			} else {
				lengths[j+1] = 0
			}
		}
	}
	return ai, bi, size
}

// CheckDuplicate compares candidate text against every non-deleted
// thought and returns the best similarity score with its match. Exact
// case-insensitive equality short-circuits at 1.0; substring containment
// between two sufficiently long texts is promoted to at least the
// blocking threshold.
func CheckDuplicate(text string, thoughts []*models.Thought) (float64, *models.Thought) {
	candidate := strings.ToLower(strings.TrimSpace(text))

	bestScore := 0.0
	var bestMatch *models.Thought

	for _, t := range thoughts {
		if t.IsDeleted {
			continue
		}
		existing := strings.ToLower(t.Text)

		if candidate == existing {
			return 1.0, t
		}

		score := Ratio(candidate, existing)
		if len(candidate) > containmentMinLen && len(existing) > containmentMinLen {
			if strings.Contains(candidate, existing) || strings.Contains(existing, candidate) {
				if score < BlockingThreshold {
					score = BlockingThreshold
				}
			}
		}

		if score > bestScore {
			bestScore = score
			bestMatch = t
		}
	}

	return bestScore, bestMatch
}

// FindSimilarPairs reports every pair of non-deleted thoughts whose
// similarity exceeds the threshold, sorted by similarity descending.
func FindSimilarPairs(thoughts []*models.Thought, threshold float64) []models.SimilarPair {
	var pairs []models.SimilarPair

	for i := 0; i < len(thoughts); i++ {
		if thoughts[i].IsDeleted {
			continue
		}
		for j := i + 1; j < len(thoughts); j++ {
			if thoughts[j].IsDeleted {
				continue
			}
			score := Ratio(strings.ToLower(thoughts[i].Text), strings.ToLower(thoughts[j].Text))
			if score > threshold {
				pairs = append(pairs, models.SimilarPair{
					FirstID:    thoughts[i].ID,
					SecondID:   thoughts[j].ID,
					FirstText:  truncate(thoughts[i].Text, 60),
					SecondText: truncate(thoughts[j].Text, 60),
					Similarity: round3(score),
				})
			}
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Similarity > pairs[j].Similarity
	})
	return pairs
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func round3(v float64) float64 {
	return float64(int(v*1000+0.5)) / 1000
}
