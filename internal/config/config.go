// Package config resolves CLI settings from defaults, a notepad.yaml file,
// NOTEPAD_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aretw0/notepad/internal/platform"
	"github.com/aretw0/notepad/pkg/view"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "notepad"

// Config holds the resolved CLI settings.
type Config struct {
	Seed         string `mapstructure:"seed"`
	PreviewWidth int    `mapstructure:"preview_width"`
	Color        bool   `mapstructure:"color"`
	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"seed":          "seed",
	"preview-width": "preview_width",
	"color":         "color",
}

// Load resolves the configuration.
//
// With an explicit file, a missing file is an error. Otherwise notepad.yaml
// is looked up in the project root (see platform.FindRoot) and the working
// directory, and not finding one is fine. Flags only override the file and
// the environment when they were set on the command line.
func Load(file string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("seed", "")
	v.SetDefault("preview_width", view.DefaultPreviewWidth)
	v.SetDefault("color", true)

	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(strings.TrimSuffix(platform.ConfigFileName, ".yaml"))
		if wd, err := os.Getwd(); err == nil {
			if root, err := platform.FindRoot(wd); err == nil {
				v.AddConfigPath(root)
			}
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if file != "" || !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := Config{
		Seed:         v.GetString("seed"),
		PreviewWidth: v.GetInt("preview_width"),
		Color:        v.GetBool("color"),
		File:         v.ConfigFileUsed(),
	}
	if cfg.PreviewWidth <= 0 {
		return Config{}, fmt.Errorf("preview_width must be positive, got %d", cfg.PreviewWidth)
	}
	return cfg, nil
}
