package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/aretw0/notepad/internal/shell"
	"github.com/aretw0/notepad/pkg/adapters/markdown"
	"github.com/aretw0/notepad/pkg/core"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a seeded note",
	Long:  `Show a note by its ID. Outputs Markdown with frontmatter by default; --format text renders it for the terminal, --format json as an object.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal("Invalid note id", err)
		}

		cfg, ctrl, err := open(cmd)
		if err != nil {
			fatal("Error initializing notepad", err)
		}

		n, ok := ctrl.Store().GetNote(id)
		if !ok {
			fatal("Error reading note", fmt.Errorf("%w: %d", core.ErrNoteNotFound, id))
		}

		if err := writeNote(os.Stdout, n, shell.NewRenderer(cfg.Color, cfg.PreviewWidth), showFormat); err != nil {
			fatal("Error showing note", err)
		}
	},
}

// writeNote prints n in the given format: md, text or json.
func writeNote(w io.Writer, n core.Note, r *shell.Renderer, format string) error {
	switch format {
	case "md", "":
		out, err := markdown.Format(n)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	case "text":
		_, err := fmt.Fprintln(w, r.Note(n))
		return err
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(n)
	default:
		return fmt.Errorf("unknown format %q, want md, text or json", format)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showFormat, "format", "md", "Output format: md, text or json")
}
