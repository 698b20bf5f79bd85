package solver

import (
	"math"
	"testing"

	"qroute/internal/model"
	"qroute/internal/sim"
)

// fourNodeCity is the canonical scenario: two priority and two normal
// nodes, fully connected, unit distances, no traffic.
func fourNodeCity() *model.Graph {
	nodes := []model.Node{
		{ID: "N1", Type: model.NodePriority},
		{ID: "N2", Type: model.NodePriority},
		{ID: "N3", Type: model.NodeNormal},
		{ID: "N4", Type: model.NodeNormal},
	}
	var edges []model.Edge
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			edges = append(edges, model.Edge{
				From: nodes[i].ID, To: nodes[j].ID, Distance: 1.0, Traffic: model.TrafficLow,
			})
		}
	}
	return &model.Graph{Nodes: nodes, Edges: edges}
}

func TestEnergySolverFourNodeScenario(t *testing.T) {
	sol, err := NewEnergySolver(model.DefaultPenalties()).Solve(fourNodeCity())
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !sol.Feasible {
		t.Fatalf("infeasible: %+v", sol)
	}
	if !sol.PrioritySatisfied {
		t.Fatalf("priority violated: route %v", sol.Route)
	}
	if len(sol.Route) != 4 {
		t.Fatalf("route length = %d, want 4", len(sol.Route))
	}
	pri := map[string]bool{"N1": true, "N2": true}
	if !pri[sol.Route[0]] || !pri[sol.Route[1]] {
		t.Fatalf("priority nodes not in positions {0,1}: %v", sol.Route)
	}
	if sol.TotalDistance != 3.0 {
		t.Fatalf("distance = %v, want 3.0", sol.TotalDistance)
	}
	if sol.TravelTime != 3.0 {
		t.Fatalf("time = %v, want 3.0", sol.TravelTime)
	}
	if sol.Energy == nil {
		t.Fatal("energy missing")
	}
	// A fully satisfied permutation's energy is the pure objective.
	if math.Abs(*sol.Energy-3.0) > 1e-9 {
		t.Fatalf("energy = %v, want 3.0", *sol.Energy)
	}
}

func TestEnergySolverSingleNode(t *testing.T) {
	g := &model.Graph{Nodes: []model.Node{{ID: "Solo", Type: model.NodePriority}}}
	sol, err := NewEnergySolver(model.DefaultPenalties()).Solve(g)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !sol.Feasible || !sol.PrioritySatisfied {
		t.Fatalf("flags = feasible:%v priority:%v, want true/true", sol.Feasible, sol.PrioritySatisfied)
	}
	if len(sol.Route) != 1 || sol.Route[0] != "Solo" {
		t.Fatalf("route = %v, want [Solo]", sol.Route)
	}
	if sol.TotalDistance != 0 || sol.TravelTime != 0 {
		t.Fatalf("metrics = %v/%v, want 0/0", sol.TotalDistance, sol.TravelTime)
	}
}

func TestEnergySolverDeterministic(t *testing.T) {
	g, err := sim.GenerateCity(sim.CityParams{Nodes: 8, PriorityRatio: 0.4, TrafficProfile: "mixed", Seed: 42})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	s := NewEnergySolver(model.DefaultPenalties())
	first, err := s.Solve(g)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := s.Solve(g)
		if err != nil {
			t.Fatalf("solve %d: %v", i, err)
		}
		if *again.Energy != *first.Energy {
			t.Fatalf("energy drifted: %v vs %v", *again.Energy, *first.Energy)
		}
		for p := range first.Route {
			if again.Route[p] != first.Route[p] {
				t.Fatalf("route drifted at %d: %v vs %v", p, again.Route, first.Route)
			}
		}
	}
}

func TestEnergySolverPriorityZoneOnGeneratedCities(t *testing.T) {
	for _, seed := range []int64{1, 7, 99} {
		g, err := sim.GenerateCity(sim.CityParams{Nodes: 10, PriorityRatio: 0.3, TrafficProfile: "high", Seed: seed})
		if err != nil {
			t.Fatalf("seed %d: generate: %v", seed, err)
		}
		sol, err := NewEnergySolver(model.DefaultPenalties()).Solve(g)
		if err != nil {
			t.Fatalf("seed %d: solve: %v", seed, err)
		}
		if !sol.Feasible {
			t.Fatalf("seed %d: infeasible route %v", seed, sol.Route)
		}
		if !sol.PrioritySatisfied || sol.PriorityViolations != 0 {
			t.Fatalf("seed %d: priority zone violated: %v", seed, sol.Route)
		}
		if len(sol.Route) != len(g.Nodes) {
			t.Fatalf("seed %d: route length %d, want %d", seed, len(sol.Route), len(g.Nodes))
		}
	}
}

func TestEnergySolverRejectsEmptyGraph(t *testing.T) {
	if _, err := NewEnergySolver(model.DefaultPenalties()).Solve(&model.Graph{}); err == nil {
		t.Fatal("empty graph accepted")
	}
}

func TestEnergySolverRejectsInvalidPenalties(t *testing.T) {
	s := NewEnergySolver(model.PenaltyParams{A: 100, B: 50, Bp: 1000, C: 1})
	if _, err := s.Solve(fourNodeCity()); err == nil {
		t.Fatal("inverted penalty hierarchy accepted")
	}
}
