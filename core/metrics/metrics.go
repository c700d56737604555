package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the prometheus collectors of an experiment. They are safe for
// concurrent use by parallel runs.
type Metrics struct {
	runs        *prometheus.CounterVec
	generations *prometheus.CounterVec
	bestFitness *prometheus.GaugeVec
	optimumGap  *prometheus.GaugeVec
	runDuration *prometheus.HistogramVec

	mu   sync.Mutex
	best map[string]float64
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "knapsack_ga_runs_total", Help: "Completed genetic algorithm runs",
		}, []string{"dataset"}),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "knapsack_ga_generations_total", Help: "Completed generations",
		}, []string{"dataset"}),
		bestFitness: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "knapsack_ga_best_fitness", Help: "Best fitness found over all runs",
		}, []string{"dataset"}),
		optimumGap: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "knapsack_ga_optimum_gap", Help: "Known optimum minus the best fitness found",
		}, []string{"dataset"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "knapsack_ga_run_seconds", Help: "Duration of a run", Buckets: prometheus.DefBuckets,
		}, []string{"dataset"}),
		best: make(map[string]float64),
	}
	reg.MustRegister(m.runs, m.generations, m.bestFitness, m.optimumGap, m.runDuration)

	return m
}

// ObserveGeneration counts a completed generation
func (m *Metrics) ObserveGeneration(dataset string) {
	m.generations.WithLabelValues(dataset).Inc()
}

// ObserveRun records a completed run. The best fitness gauge never decreases.
func (m *Metrics) ObserveRun(dataset string, fitness, optimum float64, d time.Duration) {
	m.runs.WithLabelValues(dataset).Inc()
	m.runDuration.WithLabelValues(dataset).Observe(d.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	if best, ok := m.best[dataset]; ok && best >= fitness {
		return
	}
	m.best[dataset] = fitness
	m.bestFitness.WithLabelValues(dataset).Set(fitness)
	m.optimumGap.WithLabelValues(dataset).Set(optimum - fitness)
}
