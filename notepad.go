package notepad

import (
	"log/slog"

	"github.com/aretw0/notepad/internal/platform"
	"github.com/aretw0/notepad/pkg/core"
	"github.com/aretw0/notepad/pkg/view"
)

// --- Types ---

// Note is a public alias for the core note entity.
type Note = core.Note

// Store is a public alias for the note store.
type Store = core.Store

// Controller is a public alias for the list view controller.
type Controller = view.Controller

// --- Configuration ---

// Option defines a functional option for configuring notepad.
type Option = platform.Option

// WithLogger sets the logger for the store and the controller.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithIDGenerator replaces the default timestamp-derived id generator.
func WithIDGenerator(ids core.IDGenerator) Option {
	return platform.WithIDGenerator(ids)
}

// WithClock sets the clock used by the default id generator.
func WithClock(clock core.Clock) Option {
	return platform.WithClock(clock)
}

// WithSeed loads the Markdown files matching a glob pattern when the store is created.
func WithSeed(pattern string) Option {
	return platform.WithSeed(pattern)
}

// WithPreviewWidth sets how many cells of a note body list previews show.
func WithPreviewWidth(width int) Option {
	return platform.WithPreviewWidth(width)
}

// --- Factory ---

// New creates a new, possibly seeded, note store.
func New(opts ...Option) (*Store, error) {
	return platform.New(opts...)
}

// NewController creates a list view controller over store.
func NewController(store *Store, opts ...Option) *Controller {
	return platform.NewController(store, opts...)
}

// VisibleNotes filters notes by a case-insensitive substring query.
func VisibleNotes(notes []Note, query string) []Note {
	return view.VisibleNotes(notes, query)
}

// FindRoot looks upwards from startDir for a notepad project root.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
