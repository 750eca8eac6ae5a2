package view

import (
	"io"
	"log/slog"

	"github.com/aretw0/notepad/pkg/core"
)

// State is the transient, never persisted interaction state.
type State struct {
	SelectedID   int64  `json:"selected_id,omitempty"`
	HasSelection bool   `json:"has_selection"`
	Editing      bool   `json:"editing"`
	Creating     bool   `json:"creating"`
	SearchQuery  string `json:"search_query"`
}

// Controller presents a filtered view of a store and tracks what the user is
// doing with it.
//
// Selecting a note while creating one is allowed: the two modes are
// independent, and finishing a creation leaves any selection as it was.
type Controller struct {
	store        *core.Store
	logger       *slog.Logger
	previewWidth int
	state        State
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger for the controller.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPreviewWidth sets how many cells of a body Preview keeps.
func WithPreviewWidth(width int) Option {
	return func(c *Controller) {
		if width > 0 {
			c.previewWidth = width
		}
	}
}

// NewController creates a controller over store, starting Unselected.
func NewController(store *core.Store, opts ...Option) *Controller {
	c := &Controller{
		store:        store,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		previewWidth: DefaultPreviewWidth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store returns the store the controller reads from.
func (c *Controller) Store() *core.Store { return c.store }

// State returns a copy of the current view state.
func (c *Controller) State() State { return c.state }

// PreviewWidth returns the configured preview width.
func (c *Controller) PreviewWidth() int { return c.previewWidth }

// --- Search ---

// SetSearchQuery updates the filter. The store is not touched.
func (c *Controller) SetSearchQuery(text string) {
	c.state.SearchQuery = text
}

// Visible returns the store's notes that match the current search, in store order.
func (c *Controller) Visible() []core.Note {
	return VisibleNotes(c.store.ListNotes(), c.state.SearchQuery)
}

// --- Selection & editing ---

// SelectNote selects id and leaves edit mode.
func (c *Controller) SelectNote(id int64) {
	c.state.SelectedID = id
	c.state.HasSelection = true
	c.state.Editing = false
	c.logger.Debug("note selected", "id", id)
}

// Selected returns the selected note, if there is one and it still exists.
func (c *Controller) Selected() (core.Note, bool) {
	if !c.state.HasSelection {
		return core.Note{}, false
	}
	return c.store.GetNote(c.state.SelectedID)
}

// StartEdit enters edit mode. It reports false, and does nothing, when no
// note is selected.
func (c *Controller) StartEdit() bool {
	if !c.state.HasSelection {
		return false
	}
	c.state.Editing = true
	return true
}

// CommitEdit writes title and body to the selected note and leaves edit mode.
// The note stays selected.
func (c *Controller) CommitEdit(title, body string) {
	if !c.state.HasSelection {
		return
	}
	c.store.EditNote(c.state.SelectedID, title, body)
	c.state.Editing = false
}

// CancelEdit leaves edit mode without touching the store.
func (c *Controller) CancelEdit() {
	c.state.Editing = false
}

// DeleteNote removes id from the store. If it was selected, the selection
// and edit mode are cleared.
func (c *Controller) DeleteNote(id int64) {
	c.store.DeleteNote(id)
	if c.state.HasSelection && c.state.SelectedID == id {
		c.clearSelection()
	}
}

// DeleteSelected removes the selected note, if any.
func (c *Controller) DeleteSelected() {
	if !c.state.HasSelection {
		return
	}
	c.DeleteNote(c.state.SelectedID)
}

func (c *Controller) clearSelection() {
	c.state.SelectedID = 0
	c.state.HasSelection = false
	c.state.Editing = false
}

// --- Creation ---

// StartCreate enters creation mode. An edit in progress is abandoned.
func (c *Controller) StartCreate() {
	c.state.Creating = true
	c.state.Editing = false
}

// CancelCreate leaves creation mode.
func (c *Controller) CancelCreate() {
	c.state.Creating = false
}

// CommitCreate adds a note to the store and leaves creation mode.
// The selection is left untouched.
func (c *Controller) CommitCreate(title, body string) core.Note {
	n := c.store.AddNote(title, body)
	c.state.Creating = false
	return n
}

// --- Presentation helpers ---

// Preview returns the list preview of a note body.
func (c *Controller) Preview(n core.Note) string {
	return Preview(n.Body, c.previewWidth)
}
