package solver

import (
	"math"
	"sort"

	"qroute/internal/qubo"
)

// EnergySampler is the deterministic stand-in for a quantum sampler.
// It assigns positions in ascending order, placing at each position the
// unused node with the lowest marginal energy: the variable's linear
// coefficient plus its interaction with the already-fixed variable at
// the previous position. Ties break toward the lexicographically
// smallest node ID.
//
// Because a node is excluded once placed, the result is a permutation
// by construction; the soft one-hot penalties are side-stepped rather
// than relied on. Test writers should not generalize from this: a real
// sampler behind the Sampler interface can and will return infeasible
// assignments.
type EnergySampler struct{}

func (EnergySampler) Sample(m *qubo.Model) (qubo.Assignment, float64, error) {
	vars := m.Vars()
	n := 0
	nodeSet := make(map[string]struct{})
	for _, v := range vars {
		nodeSet[v.Node] = struct{}{}
		if v.Pos+1 > n {
			n = v.Pos + 1
		}
	}
	nodes := make([]string, 0, len(nodeSet))
	for id := range nodeSet {
		nodes = append(nodes, id)
	}
	sort.Strings(nodes)

	assign := make(qubo.Assignment, n)
	used := make(map[string]struct{}, n)
	var prev qubo.Var
	for p := 0; p < n; p++ {
		bestID := ""
		bestE := math.Inf(1)
		for _, id := range nodes {
			if _, taken := used[id]; taken {
				continue
			}
			v := qubo.Var{Node: id, Pos: p}
			e := m.Linear(v)
			if p > 0 {
				e += m.Pairwise(prev, v)
			}
			if e < bestE {
				bestE = e
				bestID = id
			}
		}
		if bestID == "" {
			break
		}
		v := qubo.Var{Node: bestID, Pos: p}
		assign[v] = true
		used[bestID] = struct{}{}
		prev = v
	}
	return assign, m.Energy(assign), nil
}
