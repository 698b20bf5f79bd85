package model

import (
	"encoding/json"
	"math"
	"time"
)

// Solution is the immutable record produced by one solve invocation.
// Infeasible routes carry non-finite distance/time; those marshal as
// JSON null rather than breaking encoding.
type Solution struct {
	ID                 string
	Solver             string
	Route              []string
	TotalDistance      float64
	TravelTime         float64
	Feasible           bool
	PrioritySatisfied  bool
	PriorityViolations int
	MissingEdges       int
	SolveTime          time.Duration
	Energy             *float64 // QUBO energy; nil for solvers without a model
}

type solutionWire struct {
	ID                 string   `json:"id,omitempty"`
	Solver             string   `json:"solver"`
	Route              []string `json:"route"`
	TotalDistance      *float64 `json:"totalDistance"`
	TravelTime         *float64 `json:"travelTime"`
	Feasible           bool     `json:"feasible"`
	PrioritySatisfied  bool     `json:"prioritySatisfied"`
	PriorityViolations int      `json:"priorityViolations"`
	MissingEdges       int      `json:"missingEdges"`
	SolveTimeMs        float64  `json:"solveTimeMs"`
	Energy             *float64 `json:"energy,omitempty"`
}

func (s Solution) MarshalJSON() ([]byte, error) {
	return json.Marshal(solutionWire{
		ID:                 s.ID,
		Solver:             s.Solver,
		Route:              s.Route,
		TotalDistance:      finiteOrNil(s.TotalDistance),
		TravelTime:         finiteOrNil(s.TravelTime),
		Feasible:           s.Feasible,
		PrioritySatisfied:  s.PrioritySatisfied,
		PriorityViolations: s.PriorityViolations,
		MissingEdges:       s.MissingEdges,
		SolveTimeMs:        float64(s.SolveTime) / float64(time.Millisecond),
		Energy:             s.Energy,
	})
}

func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// Comparison measures a candidate solution against a baseline. Positive
// reduction percentages mean the candidate is better.
type Comparison struct {
	Baseline             Solution `json:"baseline"`
	Candidate            Solution `json:"candidate"`
	DistanceReductionPct float64  `json:"distanceReductionPct"`
	TimeReductionPct     float64  `json:"timeReductionPct"`
}
