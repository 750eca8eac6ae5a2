package core

import (
	"context"
	"sync"

	"github.com/aretw0/lifecycle"
)

// defaultEventBuffer is used when Watch is given a non-positive buffer size.
const defaultEventBuffer = 100

// Watch streams store changes until ctx is cancelled.
//
// Delivery never blocks a mutation: when the buffer is full the event is
// dropped and logged. The channel is closed once ctx is done.
func (s *Store) Watch(ctx context.Context, buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}

	out := make(chan Event, buffer)
	var mu sync.Mutex
	closed := false

	cancel := s.Subscribe(func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case out <- e:
		default:
			s.logger.Warn("event dropped, watcher is not keeping up", "type", e.Type, "id", e.ID)
		}
	})

	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		cancel()

		mu.Lock()
		closed = true
		close(out)
		mu.Unlock()
		return nil
	})

	return out
}
