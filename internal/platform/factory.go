package platform

import (
	"github.com/aretw0/notepad/pkg/core"
	"github.com/aretw0/notepad/pkg/view"
)

// New creates a store and loads any configured seeds into it.
//
//	store, err := notepad.New(notepad.WithSeed("notes/**/*.md"))
func New(opts ...Option) (*core.Store, error) {
	o := applyOptions(opts)

	ids := o.ids
	if ids == nil {
		ids = core.NewClockIDs(o.clock)
	}

	store := core.NewStore(ids, o.logger, core.WithEventClock(o.clock))

	for _, pattern := range o.seeds {
		n, err := LoadSeed(store, pattern, o.logger)
		if err != nil {
			return nil, err
		}
		if o.logger != nil {
			o.logger.Debug("seed loaded", "pattern", pattern, "notes", n)
		}
	}

	return store, nil
}

// NewController wires a list view controller to store.
func NewController(store *core.Store, opts ...Option) *view.Controller {
	o := applyOptions(opts)
	return view.NewController(store,
		view.WithLogger(o.logger),
		view.WithPreviewWidth(o.previewWidth),
	)
}
