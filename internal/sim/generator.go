// Package sim generates synthetic city graphs for experiments and
// tests.
package sim

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"qroute/internal/model"
)

// MaxNodes caps generated city size; the QUBO has n² variables and
// grows quartic in coefficient count.
const MaxNodes = 25

// CityParams configures random city generation.
type CityParams struct {
	Nodes          int     // total node count, 2..MaxNodes
	PriorityRatio  float64 // fraction of priority nodes, 0..1
	TrafficProfile string  // "low", "mixed" or "high"
	Connectivity   int     // k-nearest-neighbor edges per node; default 3
	Seed           int64   // 0 means time-based
}

// GenerateCity builds a random connected city graph: nodes uniform on a
// 10×10 grid, k-nearest-neighbor edges with profile-weighted traffic
// levels, at least one priority node, and extra edges added until the
// graph is a single component.
func GenerateCity(p CityParams) (*model.Graph, error) {
	if p.Nodes < 2 || p.Nodes > MaxNodes {
		return nil, fmt.Errorf("sim: node count must be in [2,%d], got %d", MaxNodes, p.Nodes)
	}
	if p.PriorityRatio < 0 || p.PriorityRatio > 1 {
		return nil, fmt.Errorf("sim: priority ratio must be in [0,1], got %v", p.PriorityRatio)
	}
	switch p.TrafficProfile {
	case "", "low", "mixed", "high":
	default:
		return nil, fmt.Errorf("sim: unknown traffic profile %q", p.TrafficProfile)
	}
	if p.Connectivity <= 0 {
		p.Connectivity = 3
	}
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	nodes := make([]model.Node, p.Nodes)
	for i := range nodes {
		x := rng.Float64() * 10
		y := rng.Float64() * 10
		typ := model.NodeNormal
		label := fmt.Sprintf("Normal %d", i+1)
		if rng.Float64() < p.PriorityRatio {
			typ = model.NodePriority
			label = fmt.Sprintf("Priority %d", i+1)
		}
		nodes[i] = model.Node{
			ID:    fmt.Sprintf("N%d", i+1),
			X:     round2(x),
			Y:     round2(y),
			Type:  typ,
			Label: label,
		}
	}
	ensurePriority(nodes)

	var edges []model.Edge
	seen := make(map[[2]int]struct{})
	for i := range nodes {
		type cand struct {
			j    int
			dist float64
		}
		cands := make([]cand, 0, len(nodes)-1)
		for j := range nodes {
			if i == j {
				continue
			}
			cands = append(cands, cand{j: j, dist: euclid(nodes[i], nodes[j])})
		}
		sort.Slice(cands, func(a, b int) bool { return cands[a].dist < cands[b].dist })
		for _, c := range cands[:min(p.Connectivity, len(cands))] {
			key := pairKey(i, c.j)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, model.Edge{
				From:     nodes[i].ID,
				To:       nodes[c.j].ID,
				Distance: round2(c.dist),
				Traffic:  trafficLevel(p.TrafficProfile, rng),
			})
		}
	}
	edges = connect(nodes, edges, p.TrafficProfile, rng, seen)

	return &model.Graph{
		Nodes:       nodes,
		Edges:       edges,
		Multipliers: model.DefaultMultipliers(),
	}, nil
}

// ensurePriority promotes the first node when the ratio draw produced
// none, so priority-zone behavior is always exercised.
func ensurePriority(nodes []model.Node) {
	for _, n := range nodes {
		if n.Type == model.NodePriority {
			return
		}
	}
	nodes[0].Type = model.NodePriority
	nodes[0].Label = "Priority 1"
}

// connect adds direct edges between components until the graph is a
// single component, using union-find over node indices.
func connect(nodes []model.Node, edges []model.Edge, profile string, rng *rand.Rand, seen map[[2]int]struct{}) []model.Edge {
	parent := make([]int, len(nodes))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(a, b int) { parent[find(a)] = find(b) }

	idx := make(map[string]int, len(nodes))
	for i, n := range nodes {
		idx[n.ID] = i
	}
	for _, e := range edges {
		union(idx[e.From], idx[e.To])
	}
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if find(i) == find(j) {
				continue
			}
			key := pairKey(i, j)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, model.Edge{
				From:     nodes[i].ID,
				To:       nodes[j].ID,
				Distance: round2(euclid(nodes[i], nodes[j])),
				Traffic:  trafficLevel(profile, rng),
			})
			union(i, j)
		}
	}
	return edges
}

func trafficLevel(profile string, rng *rand.Rand) model.TrafficLevel {
	var weights [3]float64
	switch profile {
	case "low":
		weights = [3]float64{0.7, 0.2, 0.1}
	case "high":
		weights = [3]float64{0.1, 0.2, 0.7}
	default: // mixed
		weights = [3]float64{0.33, 0.34, 0.33}
	}
	levels := [3]model.TrafficLevel{model.TrafficLow, model.TrafficMedium, model.TrafficHigh}
	r := rng.Float64() * (weights[0] + weights[1] + weights[2])
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r <= acc {
			return levels[i]
		}
	}
	return levels[2]
}

func euclid(a, b model.Node) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func pairKey(i, j int) [2]int {
	if j < i {
		i, j = j, i
	}
	return [2]int{i, j}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
