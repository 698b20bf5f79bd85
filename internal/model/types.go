package model

import (
	"fmt"
)

// NodeType classifies a node's delivery priority.
type NodeType string

const (
	NodePriority NodeType = "priority"
	NodeNormal   NodeType = "normal"
)

// TrafficLevel is the congestion category of an edge.
type TrafficLevel string

const (
	TrafficLow    TrafficLevel = "low"
	TrafficMedium TrafficLevel = "medium"
	TrafficHigh   TrafficLevel = "high"
)

// Node is a delivery location in the city graph.
type Node struct {
	ID    string   `json:"id"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Type  NodeType `json:"type"`
	Label string   `json:"label,omitempty"`
}

// Edge is an undirected connection between two nodes.
type Edge struct {
	From     string       `json:"from"`
	To       string       `json:"to"`
	Distance float64      `json:"distance"`
	Traffic  TrafficLevel `json:"traffic"`
}

// TrafficMultipliers maps a traffic level to its travel-time multiplier.
type TrafficMultipliers map[TrafficLevel]float64

// DefaultMultipliers returns the standard traffic multiplier table.
func DefaultMultipliers() TrafficMultipliers {
	return TrafficMultipliers{TrafficLow: 1.0, TrafficMedium: 1.5, TrafficHigh: 2.0}
}

// Graph is the full city graph consumed by the solvers. Graphs are
// treated as immutable once constructed; every solve invocation owns
// its inputs exclusively.
type Graph struct {
	Nodes       []Node             `json:"nodes"`
	Edges       []Edge             `json:"edges"`
	Multipliers TrafficMultipliers `json:"trafficMultipliers,omitempty"`
}

// Validate checks structural invariants: at least one node, unique node
// IDs, edges referencing existing nodes, no duplicate undirected edges,
// non-negative distances, and known traffic levels.
func (g *Graph) Validate() error {
	if len(g.Nodes) == 0 {
		return fmt.Errorf("graph: node set is empty")
	}
	ids := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return fmt.Errorf("graph: node with empty id")
		}
		if _, dup := ids[n.ID]; dup {
			return fmt.Errorf("graph: duplicate node id %q", n.ID)
		}
		if n.Type != NodePriority && n.Type != NodeNormal {
			return fmt.Errorf("graph: node %q has unknown type %q", n.ID, n.Type)
		}
		ids[n.ID] = struct{}{}
	}
	seen := make(map[[2]string]struct{}, len(g.Edges))
	for _, e := range g.Edges {
		if _, ok := ids[e.From]; !ok {
			return fmt.Errorf("graph: edge references unknown node %q", e.From)
		}
		if _, ok := ids[e.To]; !ok {
			return fmt.Errorf("graph: edge references unknown node %q", e.To)
		}
		if e.From == e.To {
			return fmt.Errorf("graph: self-loop on node %q", e.From)
		}
		if e.Distance < 0 {
			return fmt.Errorf("graph: edge %s-%s has negative distance %v", e.From, e.To, e.Distance)
		}
		switch e.Traffic {
		case TrafficLow, TrafficMedium, TrafficHigh:
		default:
			return fmt.Errorf("graph: edge %s-%s has unknown traffic level %q", e.From, e.To, e.Traffic)
		}
		key := [2]string{e.From, e.To}
		if e.To < e.From {
			key = [2]string{e.To, e.From}
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("graph: duplicate edge %s-%s", key[0], key[1])
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Multiplier resolves the travel-time multiplier for a traffic level,
// falling back to the defaults and then to 1.0 for unknown levels.
func (g *Graph) Multiplier(l TrafficLevel) float64 {
	table := g.Multipliers
	if table == nil {
		table = DefaultMultipliers()
	}
	if m, ok := table[l]; ok {
		return m
	}
	return 1.0
}

// Weighted returns the effective weight of an edge: base distance times
// its traffic multiplier.
func (g *Graph) Weighted(e Edge) float64 {
	return e.Distance * g.Multiplier(e.Traffic)
}

// PriorityNodes returns priority nodes in graph order.
func (g *Graph) PriorityNodes() []Node {
	var out []Node
	for _, n := range g.Nodes {
		if n.Type == NodePriority {
			out = append(out, n)
		}
	}
	return out
}

// NormalNodes returns normal nodes in graph order.
func (g *Graph) NormalNodes() []Node {
	var out []Node
	for _, n := range g.Nodes {
		if n.Type == NodeNormal {
			out = append(out, n)
		}
	}
	return out
}

// EdgeMap indexes undirected edges for O(1) lookup in both directions.
type EdgeMap map[string]map[string]Edge

// EdgeMap builds the lookup index for this graph.
func (g *Graph) EdgeMap() EdgeMap {
	m := make(EdgeMap, len(g.Nodes))
	add := func(a, b string, e Edge) {
		if m[a] == nil {
			m[a] = map[string]Edge{}
		}
		m[a][b] = e
	}
	for _, e := range g.Edges {
		add(e.From, e.To, e)
		add(e.To, e.From, e)
	}
	return m
}

// Lookup finds the edge between two nodes, in either direction.
func (m EdgeMap) Lookup(from, to string) (Edge, bool) {
	e, ok := m[from][to]
	return e, ok
}

// PenaltyParams are the QUBO penalty coefficients.
type PenaltyParams struct {
	A  float64 `json:"A" yaml:"a"`   // one-hot constraint weight
	B  float64 `json:"B" yaml:"b"`   // priority-zone exclusion weight
	Bp float64 `json:"Bp" yaml:"bp"` // priority-coverage weight
	C  float64 `json:"C" yaml:"c"`   // distance objective weight
}

// DefaultPenalties returns the standard penalty configuration.
func DefaultPenalties() PenaltyParams {
	return PenaltyParams{A: 100, B: 500, Bp: 1000, C: 1}
}

// Validate rejects non-positive weights and enforces the penalty
// hierarchy A < B < Bp.
func (p PenaltyParams) Validate() error {
	if p.A <= 0 || p.B <= 0 || p.Bp <= 0 || p.C <= 0 {
		return fmt.Errorf("penalties: all weights must be positive (A=%v B=%v Bp=%v C=%v)", p.A, p.B, p.Bp, p.C)
	}
	if !(p.A < p.B && p.B < p.Bp) {
		return fmt.Errorf("penalties: hierarchy A < B < Bp violated (A=%v B=%v Bp=%v)", p.A, p.B, p.Bp)
	}
	return nil
}
