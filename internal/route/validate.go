package route

import (
	"qroute/internal/model"
)

// Validate checks a route against its graph.
//
// Feasible means the route is a complete permutation: length equals the
// node count with every graph node appearing exactly once. Priority is
// satisfied when the last priority node precedes the first normal node,
// vacuously true when either set is empty. Violations counts priority
// nodes placed at or beyond position k (k = priority node count), which
// stays meaningful for infeasible routes produced by a real sampler.
func Validate(g *model.Graph, r []string) (feasible, prioritySatisfied bool, violations int) {
	priority := make(map[string]struct{})
	known := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		known[n.ID] = struct{}{}
		if n.Type == model.NodePriority {
			priority[n.ID] = struct{}{}
		}
	}
	k := len(priority)

	seen := make(map[string]struct{}, len(r))
	maxPriorityPos := -1
	minNormalPos := -1
	feasible = len(r) == len(g.Nodes)
	for i, id := range r {
		if _, dup := seen[id]; dup {
			feasible = false
		}
		seen[id] = struct{}{}
		if _, ok := known[id]; !ok {
			feasible = false
			continue
		}
		if _, pri := priority[id]; pri {
			maxPriorityPos = i
			if i >= k {
				violations++
			}
		} else if minNormalPos == -1 {
			minNormalPos = i
		}
	}
	for id := range known {
		if _, ok := seen[id]; !ok {
			feasible = false
		}
	}

	prioritySatisfied = maxPriorityPos == -1 || minNormalPos == -1 || maxPriorityPos < minNormalPos
	if k > 0 && maxPriorityPos == -1 {
		// Priority nodes exist but none made it into the route.
		prioritySatisfied = false
	}
	return feasible, prioritySatisfied, violations
}
