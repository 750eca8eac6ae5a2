package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notepad/pkg/core"
)

func TestStore_Watch(t *testing.T) {
	store := newStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := store.Watch(ctx, 10)

	n := store.AddNote("A", "x")
	store.DeleteNote(n.ID)

	for _, want := range []core.EventType{core.EventCreate, core.EventDelete} {
		select {
		case e := <-events:
			assert.Equal(t, want, e.Type)
			assert.Equal(t, n.ID, e.ID)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %s", want)
		}
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond, "channel should close after cancel")

	// Mutations after close must not panic.
	store.AddNote("B", "y")
}

func TestStore_Watch_DropsWhenFull(t *testing.T) {
	store := newStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := store.Watch(ctx, 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			store.AddNote("slow consumer", "")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("mutations blocked on a full watcher")
	}

	assert.Len(t, events, 1)
}
