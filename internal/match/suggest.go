package match

import "sort"

// DefaultMinScore is the similarity below which Suggest drops a candidate.
const DefaultMinScore = 0.6

// Suggestion is a candidate name with its similarity to the requested name.
type Suggestion struct {
	Name  string
	Score float64
}

// Suggest ranks candidates by Score and returns at most limit of them scoring
// at least minScore. Ties keep candidate order; limit <= 0 keeps all.
func Suggest(name string, candidates []string, minScore float64, limit int) []Suggestion {
	var out []Suggestion

	for _, candidate := range candidates {
		score := Score(name, candidate)
		if score >= minScore {
			out = append(out, Suggestion{Name: candidate, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

// Names returns the names of suggestions.
func Names(suggestions []Suggestion) []string {
	names := make([]string, len(suggestions))
	for i, s := range suggestions {
		names[i] = s.Name
	}

	return names
}
