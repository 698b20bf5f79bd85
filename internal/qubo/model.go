// Package qubo formulates the priority-constrained routing problem as a
// Quadratic Unconstrained Binary Optimization model over
// (node, position) assignment variables.
package qubo

import (
	"gonum.org/v1/gonum/mat"
)

// Var identifies a position-assignment variable: Node occupies route
// position Pos. Keys are structured, never serialized strings, so node
// identifiers may contain arbitrary characters.
type Var struct {
	Node string
	Pos  int
}

// Assignment is a binary valuation of the model's variables. Absent
// variables count as zero.
type Assignment map[Var]bool

// Model holds QUBO coefficients in a symmetric matrix Q plus a constant
// offset; the energy of an assignment x is xᵀQx + offset. Off-diagonal
// entries are stored halved so that the activated contribution of an
// unordered variable pair equals the coefficient it was added with.
// Models are immutable once built and consumed by one solve.
type Model struct {
	vars   []Var
	index  map[Var]int
	q      *mat.SymDense
	offset float64
}

func newModel(vars []Var) *Model {
	index := make(map[Var]int, len(vars))
	for i, v := range vars {
		index[v] = i
	}
	return &Model{
		vars:   vars,
		index:  index,
		q:      mat.NewSymDense(len(vars), nil),
	}
}

// Vars returns the variable universe in build order (node-major, then
// ascending position).
func (m *Model) Vars() []Var { return m.vars }

// NumVars returns the number of variables (n² for an n-node graph).
func (m *Model) NumVars() int { return len(m.vars) }

// Offset returns the constant term accumulated from squared-penalty
// expansions.
func (m *Model) Offset() float64 { return m.offset }

// AddLinear adds c to the linear coefficient of v.
func (m *Model) AddLinear(v Var, c float64) {
	i := m.index[v]
	m.q.SetSym(i, i, m.q.At(i, i)+c)
}

// AddQuadratic adds c to the coefficient of the unordered pair {u, v}:
// when both variables are set, the pair contributes c to the energy.
// A self-pair degenerates to a linear term (x² = x for binary x).
func (m *Model) AddQuadratic(u, v Var, c float64) {
	if u == v {
		m.AddLinear(u, c)
		return
	}
	i, j := m.index[u], m.index[v]
	m.q.SetSym(i, j, m.q.At(i, j)+c/2)
}

// Linear returns the linear coefficient of v.
func (m *Model) Linear(v Var) float64 {
	i := m.index[v]
	return m.q.At(i, i)
}

// Pairwise returns the activated contribution of the unordered pair
// {u, v}, i.e. the energy added when both variables are set, beyond
// their linear terms.
func (m *Model) Pairwise(u, v Var) float64 {
	if u == v {
		return 0
	}
	return 2 * m.q.At(m.index[u], m.index[v])
}

// Energy evaluates the model at a binary assignment: the sum of all
// activated linear and pairwise coefficients plus the constant offset.
// Variables outside the model's universe are ignored; supplying them is
// a programming error on the sampler's side, not a recoverable state.
func (m *Model) Energy(a Assignment) float64 {
	x := mat.NewVecDense(len(m.vars), nil)
	for v, on := range a {
		if !on {
			continue
		}
		if i, ok := m.index[v]; ok {
			x.SetVec(i, 1)
		}
	}
	return mat.Inner(x, m.q, x) + m.offset
}
