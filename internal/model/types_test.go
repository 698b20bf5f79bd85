package model

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func validGraph() *Graph {
	return &Graph{
		Nodes: []Node{
			{ID: "A", Type: NodePriority},
			{ID: "B", Type: NodeNormal},
		},
		Edges: []Edge{
			{From: "A", To: "B", Distance: 2.5, Traffic: TrafficMedium},
		},
	}
}

func TestGraphValidate(t *testing.T) {
	if err := validGraph().Validate(); err != nil {
		t.Fatalf("valid graph rejected: %v", err)
	}

	g := &Graph{}
	if err := g.Validate(); err == nil {
		t.Fatal("empty graph accepted")
	}

	g = validGraph()
	g.Nodes = append(g.Nodes, Node{ID: "A", Type: NodeNormal})
	if err := g.Validate(); err == nil || !strings.Contains(err.Error(), "duplicate node") {
		t.Fatalf("duplicate node id not rejected: %v", err)
	}

	g = validGraph()
	g.Edges = append(g.Edges, Edge{From: "A", To: "Z", Distance: 1, Traffic: TrafficLow})
	if err := g.Validate(); err == nil || !strings.Contains(err.Error(), "unknown node") {
		t.Fatalf("dangling edge not rejected: %v", err)
	}

	g = validGraph()
	g.Edges = append(g.Edges, Edge{From: "B", To: "A", Distance: 1, Traffic: TrafficLow})
	if err := g.Validate(); err == nil || !strings.Contains(err.Error(), "duplicate edge") {
		t.Fatalf("reversed duplicate edge not rejected: %v", err)
	}

	g = validGraph()
	g.Edges[0].Distance = -1
	if err := g.Validate(); err == nil {
		t.Fatal("negative distance accepted")
	}

	g = validGraph()
	g.Edges[0].Traffic = "gridlock"
	if err := g.Validate(); err == nil {
		t.Fatal("unknown traffic level accepted")
	}
}

func TestWeightedDistance(t *testing.T) {
	g := validGraph()
	if w := g.Weighted(g.Edges[0]); w != 2.5*1.5 {
		t.Fatalf("weighted = %v, want %v", w, 2.5*1.5)
	}
	g.Multipliers = TrafficMultipliers{TrafficMedium: 3}
	if w := g.Weighted(g.Edges[0]); w != 7.5 {
		t.Fatalf("custom multiplier ignored: %v", w)
	}
	// Unknown level falls back to 1.0 when a table is set.
	if m := g.Multiplier(TrafficHigh); m != 1.0 {
		t.Fatalf("fallback multiplier = %v, want 1.0", m)
	}
}

func TestEdgeMapLookupBothDirections(t *testing.T) {
	em := validGraph().EdgeMap()
	if _, ok := em.Lookup("A", "B"); !ok {
		t.Fatal("forward lookup failed")
	}
	if _, ok := em.Lookup("B", "A"); !ok {
		t.Fatal("reverse lookup failed")
	}
	if _, ok := em.Lookup("A", "Z"); ok {
		t.Fatal("phantom edge found")
	}
}

func TestPenaltyValidate(t *testing.T) {
	if err := DefaultPenalties().Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
	bad := []PenaltyParams{
		{A: -1, B: 500, Bp: 1000, C: 1},
		{A: 100, B: 500, Bp: 1000, C: 0},
		{A: 500, B: 100, Bp: 1000, C: 1}, // hierarchy: A > B
		{A: 100, B: 1000, Bp: 500, C: 1}, // hierarchy: B > Bp
	}
	for i, p := range bad {
		if err := p.Validate(); err == nil {
			t.Fatalf("case %d: invalid penalties accepted: %+v", i, p)
		}
	}
}

func TestSolutionMarshalInfeasibleSentinel(t *testing.T) {
	sol := Solution{
		Solver:        "energy",
		Route:         []string{"A"},
		TotalDistance: math.Inf(1),
		TravelTime:    math.Inf(1),
	}
	data, err := json.Marshal(sol)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var wire map[string]any
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if wire["totalDistance"] != nil {
		t.Fatalf("totalDistance = %v, want null", wire["totalDistance"])
	}
	if wire["travelTime"] != nil {
		t.Fatalf("travelTime = %v, want null", wire["travelTime"])
	}
}
