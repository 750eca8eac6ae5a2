package shell

import "errors"

var (
	// ErrUnknownCommand is returned for a command word the session does not know.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned when a command gets the wrong arguments or is
	// issued in the wrong mode.
	ErrUsage = errors.New("usage")
	// ErrNoSelection is returned by commands that act on the selected note.
	ErrNoSelection = errors.New("no note selected")
	// ErrLineTooLong is reported for an input line over the session's limit.
	ErrLineTooLong = errors.New("line too long")
)
