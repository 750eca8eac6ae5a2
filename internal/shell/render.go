package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/aretw0/notepad/pkg/core"
	"github.com/aretw0/notepad/pkg/view"
)

// DefaultWrapWidth is the column at which full note bodies are wrapped.
const DefaultWrapWidth = 72

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	previewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	badgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1f2937")).Padding(0, 1)
)

// Renderer turns notes into terminal text.
// Without color it emits plain text only, which keeps transcripts stable.
type Renderer struct {
	color        bool
	previewWidth int
	wrapWidth    int
}

// NewRenderer creates a renderer. previewWidth <= 0 means view.DefaultPreviewWidth.
func NewRenderer(color bool, previewWidth int) *Renderer {
	if previewWidth <= 0 {
		previewWidth = view.DefaultPreviewWidth
	}
	return &Renderer{
		color:        color,
		previewWidth: previewWidth,
		wrapWidth:    DefaultWrapWidth,
	}
}

// Badge renders a note id on its swatch color.
func (r *Renderer) Badge(id int64) string {
	if !r.color {
		return fmt.Sprintf("[%d]", id)
	}
	return badgeStyle.Background(lipgloss.Color(view.Swatch(id))).Render(fmt.Sprint(id))
}

// Card renders one list entry: marker, badge and title, then the body preview.
func (r *Renderer) Card(n core.Note, selected bool) string {
	marker := " "
	if selected {
		marker = "*"
	}

	title := n.Title
	if r.color {
		title = titleStyle.Render(title)
	}
	head := fmt.Sprintf("%s %s %s", marker, r.Badge(n.ID), title)

	preview := view.Preview(n.Body, r.previewWidth)
	if preview == "" {
		return head
	}
	if r.color {
		preview = previewStyle.Render(preview)
	}
	return head + "\n    " + preview
}

// List renders the visible notes, or view.EmptyMessage when there are none.
func (r *Renderer) List(notes []core.Note, st view.State) string {
	if len(notes) == 0 {
		return view.EmptyMessage
	}

	cards := make([]string, 0, len(notes))
	for _, n := range notes {
		cards = append(cards, r.Card(n, st.HasSelection && st.SelectedID == n.ID))
	}
	return strings.Join(cards, "\n")
}

// Note renders a note in full with its body wrapped.
func (r *Renderer) Note(n core.Note) string {
	title := n.Title
	if r.color {
		title = titleStyle.Render(title)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", r.Badge(n.ID), title)
	if n.Body != "" {
		b.WriteString("\n\n")
		b.WriteString(wordwrap.String(n.Body, r.wrapWidth))
	}
	return b.String()
}

// Mode describes what the user is currently doing, for the status line.
func (r *Renderer) Mode(st view.State) string {
	var parts []string
	switch {
	case st.Editing:
		parts = append(parts, fmt.Sprintf("editing %d", st.SelectedID))
	case st.HasSelection:
		parts = append(parts, fmt.Sprintf("selected %d", st.SelectedID))
	default:
		parts = append(parts, "no selection")
	}
	if st.Creating {
		parts = append(parts, "creating")
	}
	if st.SearchQuery != "" {
		parts = append(parts, fmt.Sprintf("search %q", st.SearchQuery))
	}
	return strings.Join(parts, ", ")
}
