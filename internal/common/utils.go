package common

import (
	"sort"

	"github.com/agext/levenshtein"
)

// NameSuggestion returns the candidate closest to the given name, or an
// empty string if no candidate is close enough to be a plausible typo.
// Candidates should be passed in a deterministic order.
func NameSuggestion(given string, candidates []string) string {
	if given == "" {
		return ""
	}
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.Distance(given, c, nil)
		if bestDist == -1 || d < bestDist {
			best = c
			bestDist = d
		}
	}
	if bestDist >= 0 && bestDist < 3 {
		return best
	}
	return ""
}

// SortedKeys returns the map's string keys in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
