package metrics

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/frontier"
	"github.com/katalvlaran/graphwalk/traversal"
)

// Namespace for all metrics.
const metricsNamespace = "graphwalk"

// Collector holds the traversal metrics and the registry they live on.
type Collector struct {
	traversal.NopObserver

	registry *prometheus.Registry

	// StepsTotal counts steps that popped a vertex.
	// Labels: algorithm, outcome (visited, already_seen)
	StepsTotal *prometheus.CounterVec

	// VisitsTotal counts first-time visits.
	// Labels: algorithm
	VisitsTotal *prometheus.CounterVec

	// SearchesStarted counts searches seeded from a start vertex.
	// Labels: algorithm
	SearchesStarted *prometheus.CounterVec

	// SearchesFinished counts transitions to Finished.
	// Labels: algorithm
	SearchesFinished *prometheus.CounterVec

	// Continuations counts reseeds into a disconnected component.
	Continuations prometheus.Counter

	// Resets counts Reset calls.
	Resets prometheus.Counter

	// Switches counts algorithm switches.
	// Labels: to
	Switches *prometheus.CounterVec

	// FrontierSize is the size of the frontier after the latest update.
	FrontierSize prometheus.Gauge

	mu  sync.Mutex
	alg traversal.Algorithm
}

var _ traversal.Observer = (*Collector)(nil)

// NewCollector creates a Collector with all metrics registered on a fresh
// registry. The Go runtime and process collectors are added when
// withRuntime is true.
func NewCollector(withRuntime bool) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),

		StepsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "steps_total",
				Help:      "Traversal steps that popped a vertex, by algorithm and outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		VisitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "visits_total",
				Help:      "Vertices visited for the first time, by algorithm",
			},
			[]string{"algorithm"},
		),
		SearchesStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "searches_started_total",
				Help:      "Searches seeded from a start vertex, by algorithm",
			},
			[]string{"algorithm"},
		),
		SearchesFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "searches_finished_total",
				Help:      "Searches that reached the finished state, by algorithm",
			},
			[]string{"algorithm"},
		),
		Continuations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "continuations_total",
			Help:      "Exhausted frontiers reseeded with an unvisited vertex",
		}),
		Resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "resets_total",
			Help:      "Traversal resets",
		}),
		Switches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "algorithm_switches_total",
				Help:      "Algorithm switches, by target algorithm",
			},
			[]string{"to"},
		),
		FrontierSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "frontier_size",
			Help:      "Number of vertices waiting in the frontier",
		}),
	}

	c.registry.MustRegister(
		c.StepsTotal,
		c.VisitsTotal,
		c.SearchesStarted,
		c.SearchesFinished,
		c.Continuations,
		c.Resets,
		c.Switches,
		c.FrontierSize,
	)
	if withRuntime {
		c.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return c
}

// Registry returns the private registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Write encodes every gathered metric family to w in the text format.
func (c *Collector) Write(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}

// WriteFile writes the text exposition to path, replacing any existing file.
func (c *Collector) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("metrics: %w", cerr)
		}
	}()

	return c.Write(f)
}

// OnStart counts a started search.
func (c *Collector) OnStart(alg traversal.Algorithm, _ core.VertexID) {
	c.setAlgorithm(alg)
	c.SearchesStarted.WithLabelValues(alg.String()).Inc()
}

// OnVisit counts a visiting step.
func (c *Collector) OnVisit(alg traversal.Algorithm, _, _ core.VertexID) {
	c.setAlgorithm(alg)
	c.StepsTotal.WithLabelValues(alg.String(), traversal.OutcomeVisited.String()).Inc()
	c.VisitsTotal.WithLabelValues(alg.String()).Inc()
}

// OnAlreadySeen counts a step that popped a visited vertex.
func (c *Collector) OnAlreadySeen(core.VertexID) {
	c.StepsTotal.WithLabelValues(c.algorithm().String(), traversal.OutcomeAlreadySeen.String()).Inc()
}

// OnFrontier tracks the frontier size.
func (c *Collector) OnFrontier(_ frontier.Kind, items []core.VertexID) {
	c.FrontierSize.Set(float64(len(items)))
}

// OnContinue counts a reseed.
func (c *Collector) OnContinue(core.VertexID) { c.Continuations.Inc() }

// OnFinish counts a finished search.
func (c *Collector) OnFinish(alg traversal.Algorithm, _ []core.VertexID) {
	c.SearchesFinished.WithLabelValues(alg.String()).Inc()
}

// OnReset counts a reset.
func (c *Collector) OnReset() { c.Resets.Inc() }

// OnSwitch counts a switch and remembers the new algorithm.
func (c *Collector) OnSwitch(_, to traversal.Algorithm) {
	c.setAlgorithm(to)
	c.Switches.WithLabelValues(to.String()).Inc()
}

func (c *Collector) setAlgorithm(a traversal.Algorithm) {
	c.mu.Lock()
	c.alg = a
	c.mu.Unlock()
}

func (c *Collector) algorithm() traversal.Algorithm {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.alg
}
