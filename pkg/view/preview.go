package view

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultPreviewWidth is the number of terminal cells shown of a note body in lists.
const DefaultPreviewWidth = 50

const previewTail = "..."

// Preview flattens body to one line and truncates it to width cells.
// Wide runes (CJK, emoji) count as two cells.
func Preview(body string, width int) string {
	if width <= 0 {
		width = DefaultPreviewWidth
	}
	line := strings.Join(strings.Fields(body), " ")
	return runewidth.Truncate(line, width, previewTail)
}
