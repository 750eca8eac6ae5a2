package notepad_test

import (
	"fmt"
	"log"

	"github.com/aretw0/notepad"
	"github.com/aretw0/notepad/pkg/core"
)

// Example_basic walks through create, edit and delete.
func Example_basic() {
	store, err := notepad.New(notepad.WithIDGenerator(core.NewSequenceIDs(0)))
	if err != nil {
		log.Fatal(err)
	}

	a := store.AddNote("A", "x")
	b := store.AddNote("B", "y")

	store.EditNote(a.ID, "A2", "x")
	store.DeleteNote(b.ID)

	for _, n := range store.ListNotes() {
		fmt.Printf("%d %s\n", n.ID, n.Title)
	}
	// Output:
	// 1 A2
}

// ExampleNewController shows the search filter of the list view.
func ExampleNewController() {
	store, err := notepad.New()
	if err != nil {
		log.Fatal(err)
	}
	ctrl := notepad.NewController(store)

	ctrl.StartCreate()
	ctrl.CommitCreate("Hello", "greeting")
	ctrl.StartCreate()
	ctrl.CommitCreate("World", "planet")

	ctrl.SetSearchQuery("hell")
	for _, n := range ctrl.Visible() {
		fmt.Println(n.Title)
	}
	// Output:
	// Hello
}
