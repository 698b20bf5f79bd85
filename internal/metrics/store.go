package metrics

import (
	"sync"
	"time"

	"qroute/internal/model"
)

var (
	mu    sync.Mutex
	store = map[string][]model.Solution{}
)

// Record stores a finished solution under its solver name and updates
// the Prometheus collectors.
func Record(sol model.Solution) {
	outcome := "infeasible"
	if sol.Feasible {
		outcome = "feasible"
	}
	Solves.WithLabelValues(sol.Solver, outcome).Inc()
	SolveDuration.WithLabelValues(sol.Solver).Observe(float64(sol.SolveTime) / float64(time.Second))
	if sol.PriorityViolations > 0 {
		PriorityViolations.WithLabelValues(sol.Solver).Add(float64(sol.PriorityViolations))
	}

	mu.Lock()
	store[sol.Solver] = append(store[sol.Solver], sol)
	mu.Unlock()
}

// RecordError counts a solve that failed before producing a solution.
func RecordError(solverName string) {
	Solves.WithLabelValues(solverName, "error").Inc()
}

// BySolver returns recorded solutions for a solver, oldest first.
func BySolver(solverName string) []model.Solution {
	mu.Lock()
	defer mu.Unlock()
	out := make([]model.Solution, len(store[solverName]))
	copy(out, store[solverName])
	return out
}

// Latest returns the most recent solution for a solver.
func Latest(solverName string) (model.Solution, bool) {
	mu.Lock()
	defer mu.Unlock()
	recs := store[solverName]
	if len(recs) == 0 {
		return model.Solution{}, false
	}
	return recs[len(recs)-1], true
}

// Reset clears recorded solutions. Intended for tests.
func Reset() {
	mu.Lock()
	store = map[string][]model.Solution{}
	mu.Unlock()
}
