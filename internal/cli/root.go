// Package cli wires the cobra command tree: flag and config plumbing here,
// all real work in the pipeline and index packages.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/couchcryptid/condor-taskgen/internal/config"
	"github.com/couchcryptid/condor-taskgen/internal/index"
	"github.com/couchcryptid/condor-taskgen/internal/observability"
)

// app carries the shared state built once in the root PersistentPreRunE and
// used by every subcommand.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewRootCmd builds the taskgen command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "taskgen",
		Short: "Generate Condor flight plan (.fpl) files from race briefings",
		Long: `taskgen turns a race briefing sheet or a task JSON file into a Condor
flight plan. Turnpoint names are resolved to landscape grid coordinates
using an index built from a directory of existing .fpl files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.cfg != nil && a.cfg.MetricsFile != "" {
				return observability.DumpDefault(a.cfg.MetricsFile)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./taskgen.yaml)")
	pf.String("fpl-dir", "", "directory of .fpl files for turnpoint coordinate lookup")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log format (text, json)")

	root.AddCommand(
		newGenerateCmd(a),
		newTemplateCmd(a),
		newTurnpointsCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	a.v = config.NewViper()
	for flag, key := range map[string]string{
		"fpl-dir":    "fpl_dir",
		"log-level":  "log_level",
		"log-format": "log_format",
	} {
		if err := bindChangedFlag(a.v, key, cmd.Root().PersistentFlags().Lookup(flag)); err != nil {
			return err
		}
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = observability.NewLogger(cfg)
	a.metrics = observability.NewMetrics()
	return nil
}

// bindChangedFlag layers an explicitly set CLI flag over the viper key, so
// flags beat env vars and the config file but an untouched flag's zero
// value never masks them.
func bindChangedFlag(v *viper.Viper, key string, f *pflag.Flag) error {
	if f == nil || !f.Changed {
		return nil
	}
	return v.BindPFlag(key, f)
}

// loadIndex builds the turnpoint index from the configured plan directory.
// Zero loaded turnpoints is not fatal here; it usually means a wrong
// --fpl-dir, so warn and let the first resolution failure say what to fix.
func (a *app) loadIndex() *index.Index {
	ix := index.New(a.logger, a.metrics)
	added := ix.Load(a.cfg.FplDir)
	if added == 0 {
		fmt.Fprintf(os.Stderr,
			"Warning: no turnpoints loaded from %q. Check --fpl-dir points to a folder of .fpl files.\n",
			a.cfg.FplDir)
	} else {
		fmt.Printf("Loaded %d unique turnpoints from %s\n", added, a.cfg.FplDir)
	}
	return ix
}

// Execute runs the command tree and maps errors to a process exit code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
