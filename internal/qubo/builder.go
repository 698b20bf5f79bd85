package qubo

import (
	"fmt"

	"qroute/internal/model"
)

// Build constructs the QUBO for a graph under the given penalty
// configuration. The model encodes, in order:
//
//  1. position one-hot (weight A): each position holds exactly one node
//  2. node one-hot (weight A): each node occupies exactly one position
//  3. priority-zone exclusion (weight B): linear penalty on priority
//     nodes outside [0,k) and normal nodes inside [0,k)
//  4. priority coverage (weight Bp): extra one-hot over positions for
//     each priority node
//  5. distance objective (weight C): traffic-weighted distance between
//     nodes at consecutive positions; an absent edge contributes 0
//
// All terms are added, never subtracted. Build validates the penalty
// hierarchy and additionally requires the largest single-edge objective
// term C·w to stay below A, so no routing choice can outweigh a
// structural constraint.
func Build(g *model.Graph, params model.PenaltyParams) (*Model, error) {
	if len(g.Nodes) == 0 {
		return nil, fmt.Errorf("qubo: node set is empty")
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("qubo: %w", err)
	}
	maxW := 0.0
	for _, e := range g.Edges {
		if w := g.Weighted(e); w > maxW {
			maxW = w
		}
	}
	if params.C*maxW >= params.A {
		return nil, fmt.Errorf("qubo: objective term C*w=%v reaches constraint weight A=%v; raise A or lower C", params.C*maxW, params.A)
	}

	n := len(g.Nodes)
	vars := make([]Var, 0, n*n)
	for _, nd := range g.Nodes {
		for p := 0; p < n; p++ {
			vars = append(vars, Var{Node: nd.ID, Pos: p})
		}
	}
	m := newModel(vars)

	// Position one-hot: A*(1 - Σ_i x_{i,p})² per position.
	for p := 0; p < n; p++ {
		group := make([]Var, n)
		for i, nd := range g.Nodes {
			group[i] = Var{Node: nd.ID, Pos: p}
		}
		m.addExactlyOne(group, params.A)
	}

	// Node one-hot: A*(1 - Σ_p x_{i,p})² per node.
	for _, nd := range g.Nodes {
		m.addExactlyOne(positionsOf(nd.ID, n), params.A)
	}

	// Priority-zone exclusion: soft linear penalty B on zone violations.
	k := len(g.PriorityNodes())
	for _, nd := range g.Nodes {
		if nd.Type == model.NodePriority {
			for p := k; p < n; p++ {
				m.AddLinear(Var{Node: nd.ID, Pos: p}, params.B)
			}
		} else {
			for p := 0; p < k; p++ {
				m.AddLinear(Var{Node: nd.ID, Pos: p}, params.B)
			}
		}
	}

	// Priority coverage: Bp*(1 - Σ_p x_{i,p})² per priority node, so
	// omitting a priority node costs strictly more than omitting a
	// normal one.
	for _, nd := range g.Nodes {
		if nd.Type == model.NodePriority {
			m.addExactlyOne(positionsOf(nd.ID, n), params.Bp)
		}
	}

	// Distance objective over consecutive positions. Missing edges add
	// nothing; the graph need not be complete.
	em := g.EdgeMap()
	for p := 0; p < n-1; p++ {
		for _, u := range g.Nodes {
			for _, v := range g.Nodes {
				if u.ID == v.ID {
					continue
				}
				e, ok := em.Lookup(u.ID, v.ID)
				if !ok {
					continue
				}
				m.AddQuadratic(
					Var{Node: u.ID, Pos: p},
					Var{Node: v.ID, Pos: p + 1},
					params.C*g.Weighted(e),
				)
			}
		}
	}

	return m, nil
}

// addExactlyOne expands w*(1 - Σ x)²: -w net per variable on the
// diagonal (-2w cross term plus +w from x² = x) and 2w per distinct
// unordered pair, with a +w constant.
func (m *Model) addExactlyOne(group []Var, w float64) {
	for _, v := range group {
		m.AddLinear(v, -w)
	}
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			m.AddQuadratic(group[i], group[j], 2*w)
		}
	}
	m.offset += w
}

func positionsOf(nodeID string, n int) []Var {
	group := make([]Var, n)
	for p := 0; p < n; p++ {
		group[p] = Var{Node: nodeID, Pos: p}
	}
	return group
}
