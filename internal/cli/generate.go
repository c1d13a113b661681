package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/condor-taskgen/internal/domain"
	"github.com/couchcryptid/condor-taskgen/internal/pipeline"
	"github.com/couchcryptid/condor-taskgen/internal/strategy"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		briefingPath string
		taskPath     string
		outputPath   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a .fpl file from a briefing text or task JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch {
			case briefingPath != "":
				return a.generateFromBriefing(briefingPath, outputPath)
			case taskPath != "":
				return a.generateFromTask(taskPath, outputPath)
			default:
				return fmt.Errorf("one of --briefing or --task is required")
			}
		},
	}

	cmd.Flags().StringVarP(&briefingPath, "briefing", "b", "", "briefing text file to parse")
	cmd.Flags().StringVarP(&taskPath, "task", "t", "", "task JSON file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output .fpl filename")
	cmd.MarkFlagsMutuallyExclusive("briefing", "task")

	return cmd
}

func (a *app) generateFromBriefing(briefingPath, outputPath string) error {
	text, err := os.ReadFile(briefingPath)
	if err != nil {
		return fmt.Errorf("read briefing: %w", err)
	}

	ix := a.loadIndex()
	gen := pipeline.New(ix, a.logger, a.metrics)

	res, err := gen.FromBriefing(string(text))
	if err != nil {
		return err
	}

	out := resolveOutputPath(outputPath, a.cfg.Output, briefingPath)
	if err := gen.WriteOutput(res, out); err != nil {
		return err
	}
	printSummary(res, out)
	return nil
}

func (a *app) generateFromTask(taskPath, outputPath string) error {
	gen := pipeline.New(nil, a.logger, a.metrics)

	res, err := gen.FromTaskFile(taskPath)
	if err != nil {
		return err
	}

	out := resolveOutputPath(outputPath, a.cfg.Output, taskPath)
	if err := gen.WriteOutput(res, out); err != nil {
		return err
	}
	printSummary(res, out)
	return nil
}

// resolveOutputPath picks the output filename: the --output flag, the
// configured default, then the input filename with a .fpl extension.
func resolveOutputPath(flagValue, cfgValue, inputPath string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfgValue != "" {
		return cfgValue
	}
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".fpl"
}

func printSummary(res *pipeline.Result, out string) {
	rec := res.Record
	route := rec.Route()
	names := make([]string, len(route))
	for i, tp := range route {
		names[i] = tp.Name
	}

	for _, n := range res.Notices {
		fmt.Printf("Note: using fuzzy match %q for requested turnpoint %q (landscape %s)\n",
			n.Matched, n.Requested, n.Landscape)
	}

	fmt.Printf("Generated: %s\n", out)
	fmt.Printf("  Airport:  %s\n", rec.Turnpoints[0].Name)
	fmt.Printf("  Route:    %s\n", strings.Join(names, " -> "))
	fmt.Printf("  Distance: %.1f km\n", domain.TaskDistanceKm(route))
	fmt.Printf("  Aircraft: %s\n", rec.Aircraft)
	fmt.Printf("  Wind:     %.0f° @ %.0fkts\n", rec.Weather.WindDirDeg, rec.Weather.WindSpeedKts)
	fmt.Printf("  Landscape:%s\n", rec.Landscape)
	fmt.Println()
	fmt.Println(strategy.Report(rec))
}
