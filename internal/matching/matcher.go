package matching

import (
	"sort"
	"strings"
	"unicode"
)

// LikelyTypoThreshold is the minimum similarity at which a non-exact
// candidate is treated as a probable misspelling of a known name.
const LikelyTypoThreshold = 0.72

const maxSuggestions = 3

type Suggestion struct {
	Name       string  `json:"name"`
	Similarity float64 `json:"similarity"`
}

type MatchResult struct {
	ExactMatch   string       `json:"exact_match,omitempty"`
	IsLikelyTypo bool         `json:"is_likely_typo"`
	Suggestions  []Suggestion `json:"suggestions"`
}

// MatchByTypo compares a candidate exercise name against the known set
// and returns either an exact (case/space-folded) match or ranked
// similarity suggestions.
func MatchByTypo(candidate string, knownNames []string) MatchResult {
	folded := foldName(candidate)
	result := MatchResult{Suggestions: make([]Suggestion, 0, maxSuggestions)}
	if folded == "" {
		return result
	}

	for _, known := range knownNames {
		if foldName(known) == folded {
			result.ExactMatch = known
			return result
		}
	}

	scored := make([]Suggestion, 0, len(knownNames))
	for _, known := range knownNames {
		similarity := Similarity(candidate, known)
		if similarity <= 0 {
			continue
		}
		scored = append(scored, Suggestion{Name: known, Similarity: similarity})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})
	if len(scored) > maxSuggestions {
		scored = scored[:maxSuggestions]
	}

	result.Suggestions = scored
	result.IsLikelyTypo = len(scored) > 0 && scored[0].Similarity >= LikelyTypoThreshold
	return result
}

// Canonicalize maps a display name onto the known name it most likely
// refers to, so renamed or misspelled exercises join onto the same
// history. Names below the typo threshold canonicalize to themselves.
func Canonicalize(name string, knownNames []string) string {
	match := MatchByTypo(name, knownNames)
	if match.ExactMatch != "" {
		return match.ExactMatch
	}
	if match.IsLikelyTypo {
		return match.Suggestions[0].Name
	}
	return name
}

// Similarity is a normalized Levenshtein ratio over folded names, in [0, 1].
func Similarity(a string, b string) float64 {
	foldedA := foldName(a)
	foldedB := foldName(b)
	if foldedA == "" && foldedB == "" {
		return 1
	}
	if foldedA == "" || foldedB == "" {
		return 0
	}
	if foldedA == foldedB {
		return 1
	}

	distance := levenshtein([]rune(foldedA), []rune(foldedB))
	longest := len([]rune(foldedA))
	if candidate := len([]rune(foldedB)); candidate > longest {
		longest = candidate
	}
	return 1 - float64(distance)/float64(longest)
}

func foldName(name string) string {
	var builder strings.Builder
	previousSpace := false
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsSpace(r) {
			if !previousSpace {
				builder.WriteRune(' ')
			}
			previousSpace = true
			continue
		}
		previousSpace = false
		builder.WriteRune(unicode.ToLower(r))
	}
	return builder.String()
}

func levenshtein(a []rune, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	previous := make([]int, len(b)+1)
	current := make([]int, len(b)+1)
	for j := range previous {
		previous[j] = j
	}

	for i := 1; i <= len(a); i++ {
		current[0] = i
		for j := 1; j <= len(b); j++ {
			substitution := previous[j-1]
			if a[i-1] != b[j-1] {
				substitution++
			}
			deletion := previous[j] + 1
			insertion := current[j-1] + 1

			best := substitution
			if deletion < best {
				best = deletion
			}
			if insertion < best {
				best = insertion
			}
			current[j] = best
		}
		previous, current = current, previous
	}

	return previous[len(b)]
}
