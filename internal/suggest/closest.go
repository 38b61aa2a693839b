package suggest

import (
	"sort"
	"strings"
)

// MaxSuggestions caps the number of alternatives returned by Closest.
const MaxSuggestions = 3

// Closest returns the candidates closest to name, best first. A candidate
// qualifies when its case-insensitive distance is at most a third of the
// longer string's length, or 2 for short names. Exact matches are never
// suggested.
func Closest(name string, candidates []string) []string {
	type scored struct {
		name string
		dist int
	}

	var hits []scored

	lower := strings.ToLower(name)
	for _, c := range candidates {
		if c == name {
			continue
		}

		d := Levenshtein(lower, strings.ToLower(c))
		if d <= threshold(name, c) {
			hits = append(hits, scored{name: c, dist: d})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}

		return hits[i].name < hits[j].name
	})

	out := make([]string, 0, min(len(hits), MaxSuggestions))
	for i := 0; i < len(hits) && i < MaxSuggestions; i++ {
		out = append(out, hits[i].name)
	}

	return out
}

func threshold(a, b string) int {
	return max(2, max(len([]rune(a)), len([]rune(b)))/3)
}
