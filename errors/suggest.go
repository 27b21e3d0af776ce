package errors

import (
	"sort"
	"strings"
)

// MaxSuggestions is the maximum number of suggestions attached to an error.
const MaxSuggestions = 3

// Suggestion is a name that was in scope and is close to a name that was
// not found.
type Suggestion struct {
	Value    string
	Distance int
}

// SuggestSimilar picks up to MaxSuggestions candidates within a small edit
// distance of name. Closer candidates come first, ties are alphabetical.
// Duplicate candidates, which appear when an inner scope shadows an outer
// one, are reported once.
func SuggestSimilar(name string, candidates []string) []Suggestion {
	if name == "" || len(candidates) == 0 {
		return nil
	}
	threshold := 3
	if len(name) <= 3 {
		threshold = 1
	} else if len(name) <= 5 {
		threshold = 2
	}

	target := strings.ToLower(name)
	seen := make(map[string]bool, len(candidates))
	var suggestions []Suggestion
	for _, candidate := range candidates {
		if candidate == "" || candidate == name || seen[candidate] {
			continue
		}
		seen[candidate] = true
		dist := editDistance(target, strings.ToLower(candidate))
		if dist <= threshold {
			suggestions = append(suggestions, Suggestion{Value: candidate, Distance: dist})
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Distance != suggestions[j].Distance {
			return suggestions[i].Distance < suggestions[j].Distance
		}
		return suggestions[i].Value < suggestions[j].Value
	})
	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}

// FormatSuggestions renders suggestions as a hint. Returns an empty string
// if there are none.
func FormatSuggestions(suggestions []Suggestion) string {
	switch len(suggestions) {
	case 0:
		return ""
	case 1:
		return "did you mean '" + suggestions[0].Value + "'?"
	}
	quoted := make([]string, len(suggestions))
	for i, s := range suggestions {
		quoted[i] = "'" + s.Value + "'"
	}
	return "did you mean one of " + strings.Join(quoted, ", ") + "?"
}

// editDistance is the Levenshtein distance between a and b, computed with
// two rows.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		return len(rb)
	}
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}
	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}
