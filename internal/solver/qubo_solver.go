package solver

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"qroute/internal/model"
	"qroute/internal/qubo"
	"qroute/internal/route"
)

// QUBOSolver runs the full pipeline: build the QUBO, sample it, decode
// the assignment, validate and measure the route. The sampler is
// pluggable; the rest of the pipeline is sampler-agnostic.
type QUBOSolver struct {
	SamplerName string
	Sampler     Sampler
	Params      model.PenaltyParams
}

// NewEnergySolver returns the default QUBO pipeline backed by the
// deterministic energy sampler.
func NewEnergySolver(params model.PenaltyParams) *QUBOSolver {
	return &QUBOSolver{SamplerName: "energy", Sampler: EnergySampler{}, Params: params}
}

func (s *QUBOSolver) Name() string { return s.SamplerName }

func (s *QUBOSolver) Solve(g *model.Graph) (model.Solution, error) {
	start := time.Now()
	if err := g.Validate(); err != nil {
		return model.Solution{}, err
	}
	m, err := qubo.Build(g, s.Params)
	if err != nil {
		return model.Solution{}, err
	}
	assign, energy, err := s.Sampler.Sample(m)
	if err != nil {
		return model.Solution{}, fmt.Errorf("%s: sample: %w", s.SamplerName, err)
	}
	sol := route.Evaluate(g, route.Decode(assign, len(g.Nodes)), s.SamplerName)
	sol.ID = uuid.NewString()
	sol.Energy = &energy
	sol.SolveTime = time.Since(start)
	return sol, nil
}
