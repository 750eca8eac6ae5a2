package view

import (
	"strings"

	"github.com/aretw0/notepad/pkg/core"
)

// EmptyMessage is shown when no note matches the current search.
const EmptyMessage = "No notes found. Try a different search term."

// VisibleNotes filters notes by query, keeping their order.
// A note is visible when query is empty or when its title or body contains
// query, ignoring case.
func VisibleNotes(notes []core.Note, query string) []core.Note {
	if query == "" {
		return append([]core.Note(nil), notes...)
	}

	q := strings.ToLower(query)
	visible := make([]core.Note, 0, len(notes))
	for _, n := range notes {
		if matches(n, q) {
			visible = append(visible, n)
		}
	}
	return visible
}

// matches expects q to be lower-cased already.
func matches(n core.Note, q string) bool {
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Body), q)
}
