// Package core holds the note domain: the Note entity, the Store that owns
// the collection, and the id generators the Store relies on.
package core

import "fmt"

// EventType represents the type of change in the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change in the store.
type Event struct {
	Type      EventType
	ID        int64
	Timestamp int64 // Unix milliseconds
}

// String renders the event as "TYPE id".
func (e Event) String() string {
	return fmt.Sprintf("%s %d", e.Type, e.ID)
}
