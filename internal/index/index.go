// Package index builds and queries the turnpoint coordinate index: a
// per-landscape mapping from normalized turnpoint names to simulator grid
// coordinates, assembled by scanning a directory of existing flight plan
// files.
package index

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/couchcryptid/condor-taskgen/internal/domain"
	"github.com/couchcryptid/condor-taskgen/internal/fpl"
	"github.com/couchcryptid/condor-taskgen/internal/observability"
)

// FuzzyThreshold is the minimum similarity for an approximate name match.
const FuzzyThreshold = 0.75

// Entry is one resolvable turnpoint: the canonical display name as it first
// appeared in the corpus, plus its grid coordinates.
type Entry struct {
	Name string
	X    float64
	Y    float64
	Z    float64
}

// FuzzyNotice records an approximate name substitution. The pipeline
// surfaces it to the user so a silent wrong-turnpoint task cannot happen
// unnoticed.
type FuzzyNotice struct {
	Landscape string
	Requested string
	Matched   string
}

// NotFoundError reports a turnpoint that could not be resolved, exactly or
// approximately. It names the failing input and the corrective action
// because an unresolved turnpoint is a user-fixable condition, not a bug.
type NotFoundError struct {
	Landscape string
	Name      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(
		"turnpoint %q not found in landscape %q: add a flight plan containing it to the plan directory, or supply explicit x/y/z coordinates in the task JSON",
		e.Name, e.Landscape)
}

// bucket holds one landscape's entries. order keeps normalized keys in
// insertion order, which fixes the candidate order seen by the fuzzy
// matcher (map iteration order would make ties nondeterministic).
type bucket struct {
	entries map[string]Entry
	order   []string
}

// Index maps (normalized landscape, normalized name) to coordinates.
// Append-only during Load; read-only afterwards. First-write-wins on
// duplicate names, so re-loading the same corpus is a no-op.
type Index struct {
	landscapes map[string]*bucket
	matcher    Matcher
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// New creates an empty index using the default Levenshtein matcher.
func New(logger *slog.Logger, metrics *observability.Metrics) *Index {
	return &Index{
		landscapes: make(map[string]*bucket),
		matcher:    LevenshteinMatcher{},
		logger:     logger,
		metrics:    metrics,
	}
}

// SetMatcher swaps the fuzzy matching strategy.
func (ix *Index) SetMatcher(m Matcher) {
	ix.matcher = m
}

// Load scans dir for .fpl files and merges their turnpoint tables into the
// index, returning the number of newly added turnpoints. Load fails softly
// throughout: a missing directory or an unreadable or malformed file is
// skipped with a log line, never fatal. Zero added entries is the caller's
// cue that the corpus directory is empty or misconfigured.
//
// Files are visited in sorted name order, so which duplicate wins under
// first-write-wins is stable across runs on the same directory.
func (ix *Index) Load(dir string) int {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		ix.logger.Warn("flight plan directory not readable", "dir", dir, "error", err)
		return 0
	}

	added := 0
	for _, de := range dirents {
		if de.IsDir() || !strings.EqualFold(filepath.Ext(de.Name()), ".fpl") {
			continue
		}
		path := filepath.Join(dir, de.Name())
		plan, err := fpl.ParsePlanFile(path)
		if err != nil {
			ix.logger.Warn("skipping flight plan", "file", path, "error", err)
			ix.metrics.PlanFilesSkipped.Inc()
			continue
		}
		ix.metrics.PlanFilesScanned.Inc()
		added += ix.merge(plan)
	}

	ix.metrics.TurnpointsLoaded.Add(float64(added))
	ix.logger.Info("turnpoint index loaded", "dir", dir, "added", added)
	return added
}

func (ix *Index) merge(plan fpl.Plan) int {
	key := domain.NormalizeLandscape(plan.Landscape)
	b := ix.landscapes[key]
	if b == nil {
		b = &bucket{entries: make(map[string]Entry)}
		ix.landscapes[key] = b
	}

	added := 0
	for _, tp := range plan.Turnpoints {
		nameKey := domain.NormalizeName(tp.Name)
		if _, exists := b.entries[nameKey]; exists {
			continue
		}
		b.entries[nameKey] = Entry{Name: tp.Name, X: tp.X, Y: tp.Y, Z: tp.Z}
		b.order = append(b.order, nameKey)
		added++
	}
	return added
}

// Resolve looks up name in landscape, trying an exact normalized match
// first, then the fuzzy matcher over the landscape's known names. A fuzzy
// hit returns a non-nil notice identifying the substitution. A miss returns
// a *NotFoundError.
func (ix *Index) Resolve(landscape, name string) (Entry, *FuzzyNotice, error) {
	b := ix.landscapes[domain.NormalizeLandscape(landscape)]
	if b == nil {
		ix.metrics.ResolutionFailures.Inc()
		return Entry{}, nil, &NotFoundError{Landscape: landscape, Name: name}
	}

	nameKey := domain.NormalizeName(name)
	if entry, ok := b.entries[nameKey]; ok {
		ix.metrics.Resolutions.WithLabelValues("exact").Inc()
		return entry, nil, nil
	}

	matchKey, ok := ix.matcher.BestMatch(nameKey, b.order, FuzzyThreshold)
	if !ok {
		ix.metrics.ResolutionFailures.Inc()
		return Entry{}, nil, &NotFoundError{Landscape: landscape, Name: name}
	}

	entry := b.entries[matchKey]
	notice := &FuzzyNotice{Landscape: landscape, Requested: name, Matched: entry.Name}
	ix.metrics.Resolutions.WithLabelValues("fuzzy").Inc()
	ix.logger.Warn("fuzzy turnpoint match",
		"landscape", landscape, "requested", name, "matched", entry.Name)
	return entry, notice, nil
}

// KnownNames returns the canonical display names in a landscape, sorted,
// for diagnostics.
func (ix *Index) KnownNames(landscape string) []string {
	b := ix.landscapes[domain.NormalizeLandscape(landscape)]
	if b == nil {
		return nil
	}
	names := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of turnpoints indexed for a landscape.
func (ix *Index) Size(landscape string) int {
	b := ix.landscapes[domain.NormalizeLandscape(landscape)]
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// Landscapes returns the normalized landscape keys present in the index,
// sorted.
func (ix *Index) Landscapes() []string {
	keys := make([]string, 0, len(ix.landscapes))
	for k := range ix.landscapes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
