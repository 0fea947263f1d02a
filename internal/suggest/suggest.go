package suggest

import (
	"sort"
)

// DefaultThreshold is the minimum similarity for a candidate to be suggested.
const DefaultThreshold = 0.6

// maxSuggestions caps the number of names returned by Closest.
const maxSuggestions = 3

// Candidate is a name with its similarity to the looked-up name.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name after normalization and returns those
// scoring at least threshold, best first. Ties keep the candidates' order.
func Rank(name string, candidates []string, threshold float64) []Candidate {
	norm := Normalize(name)

	var ranked []Candidate
	for _, c := range candidates {
		score := Similarity(norm, Normalize(c))
		if score >= threshold {
			ranked = append(ranked, Candidate{Name: c, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// Closest returns up to three candidates most similar to name, for "did you mean"
// hints.
func Closest(name string, candidates []string) []string {
	ranked := Rank(name, candidates, DefaultThreshold)
	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}

	names := make([]string, len(ranked))
	for i, c := range ranked {
		names[i] = c.Name
	}

	return names
}
