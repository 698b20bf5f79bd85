package solver

import (
	"math"
	"time"

	"github.com/google/uuid"

	"qroute/internal/model"
	"qroute/internal/route"
)

// GreedySolver is the classical two-phase nearest-neighbor baseline.
// Phase 1 visits priority nodes, phase 2 normal nodes; each step moves
// to the unvisited node with the lowest traffic-weighted distance from
// the current one. It ignores the QUBO entirely and is priority-first
// only by construction of the two phases.
type GreedySolver struct{}

func (GreedySolver) Name() string { return "greedy" }

func (s GreedySolver) Solve(g *model.Graph) (model.Solution, error) {
	start := time.Now()
	if err := g.Validate(); err != nil {
		return model.Solution{}, err
	}
	em := g.EdgeMap()
	priority := g.PriorityNodes()
	normal := g.NormalNodes()

	r := make([]string, 0, len(g.Nodes))
	var current string

	// Phase 1: priority nodes. With no priority nodes the walk starts
	// directly in phase 2 from the first normal node; that node is
	// consumed here so it is neither repeated nor dropped.
	remaining := normal
	if len(priority) > 0 {
		current = priority[0].ID
		r = append(r, current)
		unvisited := priority[1:]
		for len(unvisited) > 0 {
			next, idx := nearest(g, em, current, unvisited)
			r = append(r, next)
			current = next
			unvisited = without(unvisited, idx)
		}
	} else {
		if len(normal) == 0 {
			sol := route.Evaluate(g, r, s.Name())
			sol.ID = uuid.NewString()
			sol.SolveTime = time.Since(start)
			return sol, nil
		}
		current = normal[0].ID
		r = append(r, current)
		remaining = normal[1:]
	}

	// Phase 2: normal nodes, continuing from wherever phase 1 ended.
	unvisited := remaining
	for len(unvisited) > 0 {
		next, idx := nearest(g, em, current, unvisited)
		r = append(r, next)
		current = next
		unvisited = without(unvisited, idx)
	}

	sol := route.Evaluate(g, r, s.Name())
	sol.ID = uuid.NewString()
	sol.SolveTime = time.Since(start)
	return sol, nil
}

// nearest picks the candidate with the lowest traffic-weighted distance
// from current. A missing edge costs +Inf; when every candidate is
// unreachable the first candidate in graph order is taken anyway, so a
// disconnected graph still yields a complete route.
func nearest(g *model.Graph, em model.EdgeMap, current string, candidates []model.Node) (string, int) {
	bestIdx := -1
	bestCost := math.Inf(1)
	for i, c := range candidates {
		cost := math.Inf(1)
		if e, ok := em.Lookup(current, c.ID); ok {
			cost = g.Weighted(e)
		}
		if cost < bestCost {
			bestCost = cost
			bestIdx = i
		}
	}
	if bestIdx == -1 {
		bestIdx = 0
	}
	return candidates[bestIdx].ID, bestIdx
}

func without(nodes []model.Node, idx int) []model.Node {
	out := make([]model.Node, 0, len(nodes)-1)
	out = append(out, nodes[:idx]...)
	return append(out, nodes[idx+1:]...)
}
