package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/notepad"
)

func main() {
	count := flag.Int("count", 1000, "Number of seed notes to generate")
	query := flag.String("search", "note 9", "Search query to time")
	keep := flag.Bool("keep", false, "Keep the generated seed dir after running")
	flag.Parse()

	seedDir, err := os.MkdirTemp("", "notepad_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(seedDir)
		} else {
			fmt.Printf("Keeping seed dir: %s\n", seedDir)
		}
	}()

	fmt.Printf("Generating %d notes in %s...\n", *count, seedDir)
	startGen := time.Now()
	for i := 0; i < *count; i++ {
		content := fmt.Sprintf("---\ntitle: Note %d\n---\nThis is benchmark note %d.", i, i)
		filename := filepath.Join(seedDir, fmt.Sprintf("note_%05d.md", i))
		if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
			panic(err)
		}
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	startSeed := time.Now()
	store, err := notepad.New(
		notepad.WithLogger(logger),
		notepad.WithSeed(filepath.ToSlash(seedDir)+"/*.md"),
	)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Seeding took: %v (Items: %d)\n", time.Since(startSeed), store.Len())

	ctrl := notepad.NewController(store, notepad.WithLogger(logger))
	ctrl.SetSearchQuery(*query)

	startSearch := time.Now()
	visible := ctrl.Visible()
	fmt.Printf("Search %q took: %v (Matches: %d)\n", *query, time.Since(startSearch), len(visible))

	startEdit := time.Now()
	for _, n := range store.ListNotes() {
		store.EditNote(n.ID, n.Title, n.Body+" edited")
	}
	fmt.Printf("Editing every note took: %v\n", time.Since(startEdit))
}
