package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/aretw0/notepad/internal/shell"
	"github.com/aretw0/notepad/pkg/core"
	"github.com/aretw0/notepad/pkg/view"
)

var (
	listJSON   bool
	listSearch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the seeded notes",
	Long:  `List the notes loaded from --seed, optionally filtered by a case-insensitive search.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, ctrl, err := open(cmd)
		if err != nil {
			fatal("Error initializing notepad", err)
		}

		ctrl.SetSearchQuery(listSearch)
		if err := writeList(os.Stdout, ctrl, shell.NewRenderer(cfg.Color, cfg.PreviewWidth), listJSON); err != nil {
			fatal("Error listing notes", err)
		}
	},
}

// writeList prints the controller's visible notes as cards or as a JSON array.
func writeList(w io.Writer, ctrl *view.Controller, r *shell.Renderer, asJSON bool) error {
	notes := ctrl.Visible()

	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if notes == nil {
			notes = []core.Note{}
		}
		return encoder.Encode(notes)
	}

	_, err := fmt.Fprintln(w, r.List(notes, ctrl.State()))
	return err
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Only list notes whose title or body contains this text")
}
