package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("rieti", "rieti"))
	assert.Equal(t, 1.0, similarity("", ""))
	assert.InDelta(t, 1.0-1.0/6.0, similarity("rietti", "rieti"), 1e-9)
	assert.Less(t, similarity("milano", "rieti"), FuzzyThreshold)
}

func TestLevenshteinMatcher_BestMatch(t *testing.T) {
	m := LevenshteinMatcher{}

	got, ok := m.BestMatch("rietti", []string{"castellucio", "rieti", "terminillo"}, FuzzyThreshold)
	assert.True(t, ok)
	assert.Equal(t, "rieti", got)

	_, ok = m.BestMatch("milano", []string{"castellucio", "rieti"}, FuzzyThreshold)
	assert.False(t, ok)

	_, ok = m.BestMatch("anything", nil, FuzzyThreshold)
	assert.False(t, ok)
}

func TestLevenshteinMatcher_ThresholdBoundary(t *testing.T) {
	m := LevenshteinMatcher{}

	// One edit across four runes scores exactly 0.75, which is enough.
	got, ok := m.BestMatch("abcd", []string{"abcx"}, 0.75)
	assert.True(t, ok)
	assert.Equal(t, "abcx", got)

	// Two edits across four runes scores 0.5.
	_, ok = m.BestMatch("abcd", []string{"abxy"}, 0.75)
	assert.False(t, ok)
}

func TestLevenshteinMatcher_TieGoesToFirstCandidate(t *testing.T) {
	m := LevenshteinMatcher{}

	// Both candidates are one edit away; the earlier one wins.
	got, ok := m.BestMatch("rieti", []string{"rietix", "rietiy"}, 0.5)
	assert.True(t, ok)
	assert.Equal(t, "rietix", got)
}
