package platform

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/notepad/pkg/adapters/markdown"
	"github.com/aretw0/notepad/pkg/core"
)

// LoadSeed adds one note per Markdown file matching pattern, in lexical path
// order. The note title comes from the "title" frontmatter key, falling back
// to the file name without extension; the body is the Markdown content.
//
// It returns the number of notes added. A pattern that matches nothing is an
// error (core.ErrEmptySeed) so a typo does not silently start an empty store.
func LoadSeed(store *core.Store, pattern string, logger *slog.Logger) (int, error) {
	pattern = strings.ReplaceAll(pattern, `\`, "/")
	if !doublestar.ValidatePattern(pattern) {
		return 0, fmt.Errorf("invalid seed pattern %q", pattern)
	}

	base, rel := doublestar.SplitPattern(pattern)
	fsys := os.DirFS(base)

	matches, err := doublestar.Glob(fsys, rel, doublestar.WithFilesOnly())
	if err != nil {
		return 0, fmt.Errorf("failed to expand seed pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return 0, fmt.Errorf("%w: %s", core.ErrEmptySeed, pattern)
	}
	slices.Sort(matches)

	notes := make([]core.Note, 0, len(matches))
	for _, name := range matches {
		n, err := readSeedFile(fsys, name)
		if err != nil {
			return 0, fmt.Errorf("failed to read seed %s: %w", path.Join(base, name), err)
		}
		notes = append(notes, n)
	}

	// A bad file aborts before any note is added.
	for _, n := range notes {
		store.AddNote(n.Title, n.Body)
	}

	if logger != nil {
		logger.Debug("seed files read", "base", base, "files", len(matches))
	}
	return len(notes), nil
}

func readSeedFile(fsys fs.FS, name string) (core.Note, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return core.Note{}, err
	}
	defer f.Close()

	doc, err := markdown.Parse(f)
	if err != nil {
		return core.Note{}, err
	}

	stem := strings.TrimSuffix(path.Base(name), path.Ext(name))
	return core.Note{Title: doc.Title(stem), Body: doc.Content}, nil
}
