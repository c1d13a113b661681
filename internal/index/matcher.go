package index

import (
	"github.com/agnivade/levenshtein"
)

// Matcher picks the best approximate match for a query among candidates.
// It is an interface so the similarity algorithm and its tie-break policy
// can be swapped without touching the resolver.
type Matcher interface {
	// BestMatch returns the candidate with the highest similarity to query,
	// provided that similarity is at least threshold. Ties between equally
	// scored candidates go to whichever appears first in the candidates
	// slice; callers that need a deterministic outcome must pass candidates
	// in a deterministic order.
	BestMatch(query string, candidates []string, threshold float64) (string, bool)
}

// LevenshteinMatcher scores candidates by normalized edit distance:
// similarity = 1 - distance/max(len). "rietti" vs "rieti" scores 0.833;
// unrelated names score near zero.
type LevenshteinMatcher struct{}

func (LevenshteinMatcher) BestMatch(query string, candidates []string, threshold float64) (string, bool) {
	best := ""
	bestScore := -1.0
	for _, c := range candidates {
		score := similarity(query, c)
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	if bestScore < threshold {
		return "", false
	}
	return best, true
}

func similarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
