// Package route turns raw solver output into validated routes and
// computes their metrics. It is sampler-agnostic: any assignment over
// the (node, position) universe decodes the same way.
package route

import (
	"qroute/internal/qubo"
)

// Decode converts a raw position-assignment into an ordered route of
// length at most n. Positions with no active variable are dropped, so
// an incomplete assignment yields a short route that Validate reports
// as infeasible. When several variables claim the same position, the
// lexicographically smallest node wins, keeping the decode
// deterministic regardless of map iteration order.
func Decode(a qubo.Assignment, n int) []string {
	slots := make([]string, n)
	for v, on := range a {
		if !on || v.Pos < 0 || v.Pos >= n {
			continue
		}
		if slots[v.Pos] == "" || v.Node < slots[v.Pos] {
			slots[v.Pos] = v.Node
		}
	}
	out := make([]string, 0, n)
	for _, id := range slots {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

// Encode is the inverse of Decode for a complete route: node r[p] is
// assigned to position p.
func Encode(r []string) qubo.Assignment {
	a := make(qubo.Assignment, len(r))
	for p, id := range r {
		a[qubo.Var{Node: id, Pos: p}] = true
	}
	return a
}
