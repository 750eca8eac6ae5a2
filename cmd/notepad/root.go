package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notepad"
	"github.com/aretw0/notepad/internal/config"
	"github.com/aretw0/notepad/pkg/view"
)

var (
	verbose    bool
	configFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notepad",
	Short: "An in-memory notepad with a searchable list view",
	Long: `Notepad keeps notes in memory for the length of a session.
Notes can be seeded from Markdown files; nothing is ever written back.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&configFile, "config", "", "Config file (default: notepad.yaml in the project root)")
	flags.String("seed", "", "Glob of Markdown files to load at startup, e.g. 'notes/**/*.md'")
	flags.Int("preview-width", view.DefaultPreviewWidth, "Cells of a note body shown in lists")
	flags.Bool("color", true, "Colorize output")
}

// open resolves the configuration for cmd and builds a seeded store and its controller.
func open(cmd *cobra.Command) (config.Config, *notepad.Controller, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return config.Config{}, nil, err
	}
	if cfg.File != "" {
		slog.Debug("config loaded", "file", cfg.File)
	}

	opts := []notepad.Option{
		notepad.WithLogger(slog.Default()),
		notepad.WithSeed(cfg.Seed),
		notepad.WithPreviewWidth(cfg.PreviewWidth),
	}

	store, err := notepad.New(opts...)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, notepad.NewController(store, opts...), nil
}
