// Package notepad is the composition root for the notepad library.
//
// It wires the note domain (pkg/core) to the list view (pkg/view) and to
// optional read-only seed files, so applications depend on one package.
//
// Philosophy:
//
// Notes live in memory only. The Store is the single owner of the collection
// and is handed explicitly to whatever needs it; there is no package-level
// instance. Nothing is written to disk: seeds are read once at startup and
// forgotten, and everything is lost when the process ends.
//
// Usage:
//
//	store, err := notepad.New(
//		notepad.WithSeed("notes/**/*.md"),
//		notepad.WithLogger(logger),
//	)
//	ctrl := notepad.NewController(store)
//
//	ctrl.StartCreate()
//	n := ctrl.CommitCreate("Groceries", "milk, eggs")
//	ctrl.SelectNote(n.ID)
package notepad
