package match

import (
	"strings"
	"unicode/utf8"
)

// Distance is the Levenshtein edit distance between a and b counted in runes.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// two rows over the shorter string
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

// Score is the case-insensitive similarity of a requested type name to a
// qualified candidate such as "store.Order", between 0 and 1. A name without
// a package qualifier is compared to the type part of the candidate only.
func Score(name, candidate string) float64 {
	if !strings.Contains(name, ".") {
		candidate = typePart(candidate)
	}

	a, b := strings.ToLower(name), strings.ToLower(candidate)

	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(a, b))/float64(longest)
}

func typePart(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[i+1:]
	}

	return qualified
}
