package compat

import (
	"fmt"

	"github.com/katalvlaran/showorder/roster"
)

// Registry returns the Registry the graph was built from.
func (g *Graph) Registry() *roster.Registry { return g.reg }

// Len returns the number of nodes (teams).
func (g *Graph) Len() int { return len(g.ids) }

// IDs returns a copy of the node IDs in declared order.
func (g *Graph) IDs() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// ID returns the team ID of node i.
func (g *Graph) ID(i int) string { return g.ids[i] }

// Index resolves a team ID to its node index.
func (g *Graph) Index(id string) (int, error) {
	i, err := g.reg.Index(id)
	if err != nil {
		return -1, fmt.Errorf("compat: %w", err)
	}

	return i, nil
}

// CompatibleIdx reports whether nodes i and j may be adjacent. It is false for i == j.
func (g *Graph) CompatibleIdx(i, j int) bool { return g.rows[i].Has(j) }

// Compatible reports whether teams a and b may be adjacent.
// Unknown IDs yield a wrapped roster.ErrUnknownTeam.
func (g *Graph) Compatible(a, b string) (bool, error) {
	i, err := g.Index(a)
	if err != nil {
		return false, err
	}
	j, err := g.Index(b)
	if err != nil {
		return false, err
	}

	return g.CompatibleIdx(i, j), nil
}

// DegreeIdx returns the number of teams compatible with node i.
func (g *Graph) DegreeIdx(i int) int { return g.degree[i] }

// Degree returns the number of teams compatible with team id.
func (g *Graph) Degree(id string) (int, error) {
	i, err := g.Index(id)
	if err != nil {
		return 0, err
	}

	return g.degree[i], nil
}

// RemainingDegree counts the neighbours of node i that are not in placed.
func (g *Graph) RemainingDegree(i int, placed Set) int { return g.rows[i].CountAndNot(placed) }

// NeighborIdx returns the compatible node indices of i in ascending order.
func (g *Graph) NeighborIdx(i int) []int { return g.rows[i].Indices() }

// Neighbors returns the compatible team IDs of id in declared order.
func (g *Graph) Neighbors(id string) ([]string, error) {
	i, err := g.Index(id)
	if err != nil {
		return nil, err
	}
	idx := g.NeighborIdx(i)
	out := make([]string, len(idx))
	for k, j := range idx {
		out[k] = g.ids[j]
	}

	return out, nil
}

// EdgeCount returns the number of compatible unordered pairs.
func (g *Graph) EdgeCount() int { return g.edges }

// Edges lists every compatible pair, ordered by (A, B) declared index.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for i := range g.rows {
		for _, j := range g.rows[i].Indices() {
			if j > i {
				out = append(out, Edge{A: g.ids[i], B: g.ids[j]})
			}
		}
	}

	return out
}

// Density returns EdgeCount divided by the number of unordered pairs, in [0, 1].
// A single-team graph has density 0.
func (g *Graph) Density() float64 {
	n := len(g.ids)
	if n < 2 {
		return 0
	}

	return float64(g.edges) / float64(n*(n-1)/2)
}

// Isolated returns, in declared order, the teams compatible with no other team.
// With more than one team, any isolated team makes every setlist impossible.
func (g *Graph) Isolated() []string {
	var out []string
	for i, d := range g.degree {
		if d == 0 {
			out = append(out, g.ids[i])
		}
	}

	return out
}
