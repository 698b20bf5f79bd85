package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"qroute/internal/config"
	"qroute/internal/metrics"
	"qroute/internal/model"
	"qroute/internal/route"
	"qroute/internal/sim"
	"qroute/internal/solver"
)

func main() {
	var (
		graphPath = flag.String("graph", "", "path to a graph JSON file; generates a random city when empty")
		solverSel = flag.String("solver", "", "energy, greedy or compare (overrides config)")
		nodes     = flag.Int("nodes", 10, "generated city: node count")
		ratio     = flag.Float64("priority-ratio", 0.3, "generated city: fraction of priority nodes")
		traffic   = flag.String("traffic", "mixed", "generated city: traffic profile (low, mixed, high)")
		seed      = flag.Int64("seed", 0, "generated city: random seed (0 = time-based)")
	)
	flag.Parse()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *solverSel != "" {
		cfg.Solver = *solverSel
	}

	metrics.RegisterDefault()
	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
			srv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
			log.Printf("metrics listening on %s", cfg.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("metrics server error: %v", err)
			}
		}()
	}

	graph, err := loadGraph(*graphPath, cfg, *nodes, *ratio, *traffic, *seed)
	if err != nil {
		log.Fatalf("graph: %v", err)
	}

	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")

	switch cfg.Solver {
	case "energy", "greedy":
		sol := runSolver(selectSolver(cfg.Solver, cfg.Penalties), graph)
		if err := out.Encode(sol); err != nil {
			log.Fatalf("encode: %v", err)
		}
	case "compare":
		baseline := runSolver(solver.GreedySolver{}, graph)
		candidate := runSolver(solver.NewEnergySolver(cfg.Penalties), graph)
		if err := out.Encode(route.Compare(baseline, candidate)); err != nil {
			log.Fatalf("encode: %v", err)
		}
	}
}

func selectSolver(name string, params model.PenaltyParams) solver.Solver {
	if name == "greedy" {
		return solver.GreedySolver{}
	}
	return solver.NewEnergySolver(params)
}

func runSolver(s solver.Solver, g *model.Graph) model.Solution {
	sol, err := s.Solve(g)
	if err != nil {
		metrics.RecordError(s.Name())
		log.Fatalf("%s solve: %v", s.Name(), err)
	}
	metrics.Record(sol)
	log.Printf("%s: feasible=%v priority=%v distance=%.2f time=%.2f in %v",
		sol.Solver, sol.Feasible, sol.PrioritySatisfied, sol.TotalDistance, sol.TravelTime, sol.SolveTime)
	return sol
}

func loadGraph(path string, cfg *config.Config, nodes int, ratio float64, traffic string, seed int64) (*model.Graph, error) {
	if path == "" {
		return sim.GenerateCity(sim.CityParams{
			Nodes:          nodes,
			PriorityRatio:  ratio,
			TrafficProfile: traffic,
			Seed:           seed,
		})
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var g model.Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	if g.Multipliers == nil {
		g.Multipliers = cfg.Traffic.Multipliers()
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if len(g.Nodes) > cfg.MaxNodes {
		return nil, fmt.Errorf("graph has %d nodes, limit is %d (the QUBO has n² variables)", len(g.Nodes), cfg.MaxNodes)
	}
	return &g, nil
}
