// Package pipeline orchestrates the end-to-end task generation flow: scrape
// or load a raw task, resolve turnpoint coordinates, complete the record,
// serialize it and write the output file.
package pipeline

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/condor-taskgen/internal/briefing"
	"github.com/couchcryptid/condor-taskgen/internal/domain"
	"github.com/couchcryptid/condor-taskgen/internal/fpl"
	"github.com/couchcryptid/condor-taskgen/internal/index"
	"github.com/couchcryptid/condor-taskgen/internal/observability"
)

// Resolver maps a turnpoint name to coordinates within a landscape. A fuzzy
// hit returns a non-nil notice. Implemented by *index.Index.
type Resolver interface {
	Resolve(landscape, name string) (index.Entry, *index.FuzzyNotice, error)
}

// Result is one successful generation: the completed record, the serialized
// file content, and any fuzzy name substitutions made along the way. The
// caller decides how to present the notices; they must not be dropped.
type Result struct {
	Record  domain.TaskRecord
	Content string
	Notices []index.FuzzyNotice
}

// Generator runs the task generation pipeline. Single-threaded; one call is
// one complete run from raw input to either a written file or an error, with
// nothing written on error.
type Generator struct {
	resolver Resolver
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Generator. resolver may be nil for task-JSON-only use,
// where every coordinate is explicit.
func New(resolver Resolver, logger *slog.Logger, metrics *observability.Metrics) *Generator {
	return &Generator{resolver: resolver, logger: logger, metrics: metrics}
}

// FromBriefing scrapes briefing text, resolves every named point against
// the index, and builds the serialized task.
func (g *Generator) FromBriefing(text string) (*Result, error) {
	raw := briefing.Parse(text)

	if len(raw.Turnpoints) == 0 {
		return nil, fmt.Errorf(
			"no turnpoints found in briefing: check the file is a task briefing sheet")
	}
	if raw.AirportName == "" {
		return nil, fmt.Errorf(
			"could not determine launch airfield from briefing: expected a start type line reading \"Airborne ... over <name>\"")
	}

	notices, err := g.resolve(&raw)
	if err != nil {
		return nil, err
	}
	return g.build(raw, notices)
}

// FromTaskFile reads a task JSON file and builds the serialized task.
// Coordinates present in the JSON are used as-is; missing ones are resolved
// against the index when a resolver is available.
func (g *Generator) FromTaskFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	var raw domain.RawTask
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse task file %s: %w", path, err)
	}

	var notices []index.FuzzyNotice
	if g.resolver != nil {
		if notices, err = g.resolve(&raw); err != nil {
			return nil, err
		}
	}
	return g.build(raw, notices)
}

// resolve fills in missing coordinates on the airport and every turnpoint.
// An unresolvable name is fatal: substituting a guessed position would
// produce a plausible-looking but wrong task.
func (g *Generator) resolve(raw *domain.RawTask) ([]index.FuzzyNotice, error) {
	landscape := raw.Landscape
	if landscape == "" {
		landscape = domain.DefaultLandscape
	}

	var notices []index.FuzzyNotice

	if raw.Airport == nil && raw.AirportName != "" {
		entry, notice, err := g.resolver.Resolve(landscape, raw.AirportName)
		if err != nil {
			return nil, fmt.Errorf("resolve launch airfield: %w", err)
		}
		if notice != nil {
			notices = append(notices, *notice)
		}
		raw.Airport = &domain.RawAirfield{
			Name: entry.Name, X: &entry.X, Y: &entry.Y, Z: &entry.Z,
		}
	}

	for i := range raw.Turnpoints {
		tp := &raw.Turnpoints[i]
		if tp.X != nil && tp.Y != nil && tp.Z != nil {
			continue
		}
		entry, notice, err := g.resolver.Resolve(landscape, tp.Name)
		if err != nil {
			return nil, fmt.Errorf("resolve turnpoint %d: %w", i+1, err)
		}
		if notice != nil {
			notices = append(notices, *notice)
		}
		tp.X, tp.Y, tp.Z = &entry.X, &entry.Y, &entry.Z
	}
	return notices, nil
}

func (g *Generator) build(raw domain.RawTask, notices []index.FuzzyNotice) (*Result, error) {
	rec, err := domain.Complete(raw)
	if err != nil {
		return nil, err
	}
	g.logger.Info("task completed",
		"landscape", rec.Landscape,
		"turnpoints", len(rec.Turnpoints),
		"distance_km", fmt.Sprintf("%.1f", domain.TaskDistanceKm(rec.Route())))
	return &Result{
		Record:  rec,
		Content: fpl.Serialize(rec),
		Notices: notices,
	}, nil
}

// WriteOutput writes a result's content to path. The content is fully built
// before the file is opened, so a failed run never leaves a partial file.
func (g *Generator) WriteOutput(res *Result, path string) error {
	if err := os.WriteFile(path, []byte(res.Content), 0o644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	g.metrics.PlansGenerated.Inc()
	g.logger.Info("task file written", "path", path)
	return nil
}
