package observability

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the Prometheus counters for the task generation pipeline.
type Metrics struct {
	PlanFilesScanned prometheus.Counter
	PlanFilesSkipped prometheus.Counter
	TurnpointsLoaded prometheus.Counter

	// Resolution metrics.
	Resolutions        *prometheus.CounterVec // labels: outcome={exact,fuzzy}
	ResolutionFailures prometheus.Counter

	PlansGenerated prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.PlanFilesScanned,
		m.PlanFilesSkipped,
		m.TurnpointsLoaded,
		m.Resolutions,
		m.ResolutionFailures,
		m.PlansGenerated,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		PlanFilesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "taskgen",
			Name:      "plan_files_scanned_total",
			Help:      "Flight plan files read while building the turnpoint index.",
		}),
		PlanFilesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "taskgen",
			Name:      "plan_files_skipped_total",
			Help:      "Flight plan files skipped as unreadable or malformed.",
		}),
		TurnpointsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "taskgen",
			Name:      "turnpoints_loaded_total",
			Help:      "Turnpoints newly added to the index.",
		}),
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taskgen",
			Name:      "resolutions_total",
			Help:      "Successful turnpoint resolutions by outcome.",
		}, []string{"outcome"}),
		ResolutionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "taskgen",
			Name:      "resolution_failures_total",
			Help:      "Turnpoint lookups with no exact or fuzzy match.",
		}),
		PlansGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "taskgen",
			Name:      "plans_generated_total",
			Help:      "Task files successfully written.",
		}),
	}
}

// DumpDefault writes the default registry's metrics to path in Prometheus
// text format. There is no metrics endpoint to scrape in a one-shot CLI run,
// so the dump file is the only way to get the counters out of the process.
func DumpDefault(path string) error {
	return dump(prometheus.DefaultGatherer, path)
}

func dump(g prometheus.Gatherer, path string) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create metrics file: %w", err)
	}
	defer f.Close()
	enc := expfmt.NewEncoder(f, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, fam := range families {
		if err := enc.Encode(fam); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}
