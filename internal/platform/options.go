package platform

import (
	"log/slog"

	"github.com/aretw0/notepad/pkg/core"
)

// options holds the internal configuration for the notepad store and controller.
type options struct {
	logger       *slog.Logger
	ids          core.IDGenerator
	clock        core.Clock
	seeds        []string
	previewWidth int
}

// Option defines a functional option for configuring notepad.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger: nil,
		ids:    nil,
		clock:  nil,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger for the store and the controller.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithIDGenerator replaces the default timestamp-derived id generator.
func WithIDGenerator(ids core.IDGenerator) Option {
	return func(o *options) {
		o.ids = ids
	}
}

// WithClock sets the clock used by the default id generator and for change
// event timestamps. The generator ignores it when WithIDGenerator is also given.
func WithClock(clock core.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithSeed adds a glob pattern (e.g. "notes/**/*.md") whose Markdown files are
// loaded into the store when it is created. Patterns are loaded in the order
// given. Seeds are read once and never written back.
func WithSeed(pattern string) Option {
	return func(o *options) {
		if pattern != "" {
			o.seeds = append(o.seeds, pattern)
		}
	}
}

// WithPreviewWidth sets how many cells of a note body list previews show.
func WithPreviewWidth(width int) Option {
	return func(o *options) {
		o.previewWidth = width
	}
}
