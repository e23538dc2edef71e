// Package search filters note collections. Matching is pure and
// order-preserving; the input slice is never mutated.
package search

import (
	"strings"

	"github.com/samber/lo"

	"jot/internal/domain"
)

// Filter returns the notes whose title or content contains query as a
// case-insensitive substring. An empty or whitespace-only query returns the
// input unfiltered.
func Filter(notes []domain.Note, query string) []domain.Note {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return notes
	}
	return lo.Filter(notes, func(n domain.Note, _ int) bool {
		return strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q)
	})
}
