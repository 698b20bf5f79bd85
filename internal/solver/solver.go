// Package solver holds the two route solvers, the deterministic
// energy-minimization sampler over the QUBO model and the classical
// greedy baseline, behind a common interface.
package solver

import (
	"qroute/internal/model"
	"qroute/internal/qubo"
)

// Solver produces one complete solution for a graph. Implementations
// are pure and safe for concurrent use across independent graphs.
type Solver interface {
	Name() string
	Solve(g *model.Graph) (model.Solution, error)
}

// Sampler is the pluggable sampling contract: given a QUBO model over
// the (node, position) variable universe, return a single best-effort
// assignment and its energy under that model. A real quantum-hardware
// sampler slots in here; unlike EnergySampler it is not guaranteed to
// return a structurally feasible permutation, which is why the decoder
// and validator downstream never assume one.
type Sampler interface {
	Sample(m *qubo.Model) (qubo.Assignment, float64, error)
}
