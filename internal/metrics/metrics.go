package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the solver.
	Registry = prometheus.NewRegistry()
	// Solves counts solve invocations by solver and outcome (feasible, infeasible, error).
	Solves = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "solve_total", Help: "Total solve invocations."},
		[]string{"solver", "outcome"},
	)
	// SolveDuration records solve durations in seconds per solver.
	SolveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "solve_duration_seconds", Help: "Solve duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"solver"},
	)
	// PriorityViolations counts priority nodes placed outside the priority zone.
	PriorityViolations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "priority_violations_total", Help: "Priority nodes placed outside the priority zone."},
		[]string{"solver"},
	)
)

// RegisterDefault registers collectors to the dedicated registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(Solves)
		Registry.MustRegister(SolveDuration)
		Registry.MustRegister(PriorityViolations)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
