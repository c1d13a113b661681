// Package config loads tool configuration from defaults, an optional config
// file, and TASKGEN_* environment variables, in increasing precedence. CLI
// flags are bound on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all tool settings.
type Config struct {
	// FplDir is the directory scanned for existing .fpl files when building
	// the turnpoint index.
	FplDir string

	// Output is the path for the generated task file. Empty means derive it
	// from the input file name.
	Output string

	LogLevel  string
	LogFormat string

	// MetricsFile, when set, receives a Prometheus text-format dump of the
	// run's counters on exit.
	MetricsFile string
}

// NewViper builds a viper instance with defaults and environment wiring.
// Kept separate from Load so the cli package can bind flags onto it before
// the file is read.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("fpl_dir", "fpl_files")
	v.SetDefault("output", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("metrics_file", "")

	v.SetEnvPrefix("TASKGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file into v and returns the resolved
// Config. An empty cfgFile means "search the usual places"; a missing file
// is only an error when it was named explicitly.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("taskgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/taskgen")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	return &Config{
		FplDir:      v.GetString("fpl_dir"),
		Output:      v.GetString("output"),
		LogLevel:    v.GetString("log_level"),
		LogFormat:   v.GetString("log_format"),
		MetricsFile: v.GetString("metrics_file"),
	}, nil
}
