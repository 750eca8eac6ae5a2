package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Notes       int   `json:"notes"`
	LastID      int64 `json:"last_id"`
	Subscribers int   `json:"subscribers"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	notes, last := len(s.notes), s.lastID
	s.mu.RUnlock()

	s.subMu.Lock()
	subs := len(s.subscribers)
	s.subMu.Unlock()

	return StoreState{
		Notes:       notes,
		LastID:      last,
		Subscribers: subs,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
