package feed

import (
	"strings"
)

// Filterer evaluates include/exclude keyword rules against entry text.
// Matching is case-insensitive substring search over a whitespace-normalized
// haystack built from title and summary. Exclude rules win unconditionally.
type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// Passes reports whether an entry with the given title and summary
// survives the keyword rules. An empty include list means no include
// constraint; any matching exclude keyword rejects the entry before
// includes are considered.
func (f *Filterer) Passes(title, summary string, includeAny, excludeAny []string) bool {
	haystack := normalize(title) + " " + normalize(summary)

	for _, keyword := range excludeAny {
		normalized := normalize(keyword)
		if normalized != "" && strings.Contains(haystack, normalized) {
			return false
		}
	}

	if len(includeAny) == 0 {
		return true
	}

	for _, keyword := range includeAny {
		normalized := normalize(keyword)
		if normalized != "" && strings.Contains(haystack, normalized) {
			return true
		}
	}

	return false
}

// normalize collapses runs of whitespace to single spaces, trims the ends
// and lowercases.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
