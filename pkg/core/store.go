package core

import (
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// Store is the sole owner of the note collection.
// All mutations go through it. Notes are kept in insertion order, which is
// also the display order; editing a note never moves it.
//
// None of the operations fail: acting on an id that is not in the store is a
// silent no-op.
type Store struct {
	mu     sync.RWMutex
	notes  []Note
	ids    IDGenerator
	logger *slog.Logger
	now    Clock
	lastID int64

	subMu       sync.Mutex
	subscribers map[int]func(Event)
	nextSub     int
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithEventClock sets the clock that stamps change events.
// Give it the same clock as the id generator to keep event times and
// timestamp-derived ids in agreement.
func WithEventClock(now Clock) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty store.
// A nil generator defaults to timestamp-derived ids, a nil logger discards
// output. Events are stamped with time.Now unless WithEventClock is given.
func NewStore(ids IDGenerator, logger *slog.Logger, opts ...StoreOption) *Store {
	if ids == nil {
		ids = NewClockIDs(nil)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Store{
		ids:         ids,
		logger:      logger,
		now:         time.Now,
		subscribers: make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddNote assigns a fresh id, appends the note to the end of the collection
// and returns it.
func (s *Store) AddNote(title, body string) Note {
	s.mu.Lock()
	id := s.nextID()
	n := Note{ID: id, Title: title, Body: body}
	s.notes = append(s.notes, n)
	s.lastID = id
	s.mu.Unlock()

	s.logger.Debug("note added", "id", id)
	s.publish(EventCreate, id)
	return n
}

// nextID draws from the generator until it yields an id not already in use.
// Generators are expected to be unique on their own; this also covers a
// SequenceIDs whose base overlaps notes created by another generator.
func (s *Store) nextID() int64 {
	for {
		id := s.ids.Next()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

// DeleteNote removes the note with the given id, if present.
// Callers own any view state that references the id.
func (s *Store) DeleteNote(id int64) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	s.mu.Unlock()

	s.logger.Debug("note deleted", "id", id)
	s.publish(EventDelete, id)
}

// EditNote replaces title and body of the note with the given id, keeping its
// id and its position in the collection.
func (s *Store) EditNote(id int64, title, body string) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.notes[i].Title = title
	s.notes[i].Body = body
	s.mu.Unlock()

	s.logger.Debug("note edited", "id", id)
	s.publish(EventModify, id)
}

// ListNotes returns a snapshot of the collection in display order.
func (s *Store) ListNotes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.notes)
}

// GetNote looks a note up by id.
func (s *Store) GetNote(id int64) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Note{}, false
	}
	return s.notes[i], true
}

// Len returns the number of notes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// indexOf must be called with s.mu held.
func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.notes, func(n Note) bool { return n.ID == id })
}

// Subscribe registers fn to be called after every effective mutation.
// Observers run synchronously on the mutating goroutine, after the store
// lock is released, so they may read the store.
// The returned func removes the observer.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	key := s.nextSub
	s.nextSub++
	s.subscribers[key] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, key)
	}
}

func (s *Store) publish(t EventType, id int64) {
	s.subMu.Lock()
	fns := make([]func(Event), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	e := Event{Type: t, ID: id, Timestamp: s.now().UnixMilli()}
	for _, fn := range fns {
		fn(e)
	}
}
