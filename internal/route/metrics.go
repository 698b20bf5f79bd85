package route

import (
	"math"

	"qroute/internal/model"
)

// Metrics totals base distance and traffic-weighted travel time along
// consecutive route pairs. A pair with no matching edge contributes 0
// to both totals and increments missing: a data-quality signal, not a
// failure.
func Metrics(g *model.Graph, r []string) (distance, travelTime float64, missing int) {
	em := g.EdgeMap()
	for i := 0; i+1 < len(r); i++ {
		e, ok := em.Lookup(r[i], r[i+1])
		if !ok {
			missing++
			continue
		}
		distance += e.Distance
		travelTime += g.Weighted(e)
	}
	return distance, travelTime, missing
}

// Evaluate builds a Solution record for a route: validation plus
// metrics. Infeasible routes keep their missing-edge count but carry
// +Inf distance/time as the not-computable sentinel. Infeasibility is
// an outcome, never an error.
func Evaluate(g *model.Graph, r []string, solverName string) model.Solution {
	feasible, prioritySatisfied, violations := Validate(g, r)
	distance, travelTime, missing := Metrics(g, r)
	if !feasible {
		distance = math.Inf(1)
		travelTime = math.Inf(1)
	}
	return model.Solution{
		Solver:             solverName,
		Route:              r,
		TotalDistance:      distance,
		TravelTime:         travelTime,
		Feasible:           feasible,
		PrioritySatisfied:  prioritySatisfied,
		PriorityViolations: violations,
		MissingEdges:       missing,
	}
}

// Compare measures candidate against baseline. Reductions are
// (baseline − candidate) / baseline × 100; positive means the candidate
// is better. A zero or non-finite baseline, or a non-finite candidate,
// yields 0 rather than a meaningless ratio.
func Compare(baseline, candidate model.Solution) model.Comparison {
	return model.Comparison{
		Baseline:             baseline,
		Candidate:            candidate,
		DistanceReductionPct: reductionPct(baseline.TotalDistance, candidate.TotalDistance),
		TimeReductionPct:     reductionPct(baseline.TravelTime, candidate.TravelTime),
	}
}

func reductionPct(baseline, candidate float64) float64 {
	if baseline == 0 || math.IsInf(baseline, 0) || math.IsNaN(baseline) ||
		math.IsInf(candidate, 0) || math.IsNaN(candidate) {
		return 0
	}
	return (baseline - candidate) / baseline * 100
}
