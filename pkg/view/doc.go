// Package view derives what a presentation layer shows from a core.Store.
//
// The Controller tracks transient interaction state (selection, edit mode,
// creation mode, search text) and forwards mutations to the store. It never
// keeps note content of its own: every read goes back to the store, so a note
// deleted behind the controller's back simply stops being visible.
package view
