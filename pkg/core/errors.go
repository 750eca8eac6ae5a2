package core

import "errors"

// Common errors.
//
// Store operations never fail; these are used by the layers that look notes
// up on behalf of a user (CLI, session, seed loading).
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrEmptySeed    = errors.New("seed pattern matched no files")
)
