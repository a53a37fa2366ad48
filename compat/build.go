package compat

import (
	"github.com/katalvlaran/showorder/roster"
)

// Build derives the compatibility graph of r.
//
// Implementation:
//   - Stage 1: allocate one empty row per team in declared order.
//   - Stage 2: for every unordered pair (i<j), set both mirror bits when the
//     rosters are disjoint. Symmetry holds by construction; the diagonal is
//     never set.
//
// Errors:
//   - ErrRegistryNil if r is nil.
//
// Complexity: Time O(T²·M), Space O(T²/64).
func Build(r *roster.Registry) (*Graph, error) {
	if r == nil {
		return nil, ErrRegistryNil
	}

	n := r.Len()
	g := &Graph{
		reg:    r,
		ids:    r.IDs(),
		rows:   make([]Set, n),
		degree: make([]int, n),
	}
	for i := range g.rows {
		g.rows[i] = NewSet(n)
	}

	var i, j int
	for i = 0; i < n; i++ {
		ti := r.At(i)
		for j = i + 1; j < n; j++ {
			if !ti.Disjoint(r.At(j)) {
				continue
			}
			g.rows[i].Add(j)
			g.rows[j].Add(i)
			g.degree[i]++
			g.degree[j]++
			g.edges++
		}
	}

	return g, nil
}
