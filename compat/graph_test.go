package compat_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/showorder/compat"
	"github.com/katalvlaran/showorder/roster"
)

// mkTrio returns the go/nxde/loco registry: go and loco share "m".
func mkTrio(t *testing.T) *roster.Registry {
	t.Helper()
	r, err := roster.New(
		roster.Entry{Team: "go", Members: []string{"m", "a"}},
		roster.Entry{Team: "nxde", Members: []string{"b", "c"}},
		roster.Entry{Team: "loco", Members: []string{"m", "d"}},
	)
	require.NoError(t, err)

	return r
}

func TestBuild_NilRegistry(t *testing.T) {
	g, err := compat.Build(nil)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, compat.ErrRegistryNil)
}

func TestBuild_Trio(t *testing.T) {
	g, err := compat.Build(mkTrio(t))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []string{"go", "nxde", "loco"}, g.IDs())

	ok, err := g.Compatible("go", "loco")
	require.NoError(t, err)
	assert.False(t, ok, "go and loco share m")

	ok, err = g.Compatible("go", "nxde")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.Compatible("loco", "nxde")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []compat.Edge{{A: "go", B: "nxde"}, {A: "nxde", B: "loco"}}, g.Edges())
	assert.InDelta(t, 2.0/3.0, g.Density(), 1e-12)

	nb, err := g.Neighbors("nxde")
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "loco"}, nb)

	d, err := g.Degree("go")
	require.NoError(t, err)
	assert.Equal(t, 1, d)
	assert.Empty(t, g.Isolated())
}

func TestGraph_UnknownTeam(t *testing.T) {
	g, err := compat.Build(mkTrio(t))
	require.NoError(t, err)

	_, err = g.Compatible("go", "siren")
	assert.ErrorIs(t, err, roster.ErrUnknownTeam)
	_, err = g.Neighbors("siren")
	assert.ErrorIs(t, err, roster.ErrUnknownTeam)
	_, err = g.Degree("siren")
	assert.ErrorIs(t, err, roster.ErrUnknownTeam)
}

func TestBuild_NoSelfLoopsEvenForEmptyRoster(t *testing.T) {
	r, err := roster.New(roster.Entry{Team: "solo"}, roster.Entry{Team: "duo", Members: []string{"x"}})
	require.NoError(t, err)
	g, err := compat.Build(r)
	require.NoError(t, err)

	assert.False(t, g.CompatibleIdx(0, 0))
	assert.False(t, g.CompatibleIdx(1, 1))
	assert.True(t, g.CompatibleIdx(0, 1), "empty roster is compatible with everything")
}

func TestBuild_Isolated(t *testing.T) {
	r, err := roster.New(
		roster.Entry{Team: "a", Members: []string{"x"}},
		roster.Entry{Team: "b", Members: []string{"x", "y", "z"}},
		roster.Entry{Team: "c", Members: []string{"z"}},
	)
	require.NoError(t, err)
	g, err := compat.Build(r)
	require.NoError(t, err)

	// b shares a performer with both a and c.
	assert.Equal(t, []string{"b"}, g.Isolated())
	assert.Equal(t, 1, g.EdgeCount())
}

// TestBuild_WideGraph crosses the 64-team word boundary of the bitset rows.
func TestBuild_WideGraph(t *testing.T) {
	const n = 130
	entries := make([]roster.Entry, n)
	for i := range entries {
		// Teams i and i+1 share performer p<i+1>; everything else is disjoint.
		entries[i] = roster.Entry{
			Team:    fmt.Sprintf("t%03d", i),
			Members: []string{fmt.Sprintf("p%03d", i), fmt.Sprintf("p%03d", i+1)},
		}
	}
	r, err := roster.New(entries...)
	require.NoError(t, err)
	g, err := compat.Build(r)
	require.NoError(t, err)

	assert.False(t, g.CompatibleIdx(63, 64))
	assert.True(t, g.CompatibleIdx(63, 65))
	assert.True(t, g.CompatibleIdx(0, 129))
	assert.Equal(t, n-2, g.DegreeIdx(0))
	assert.Equal(t, n-3, g.DegreeIdx(64))
	assert.Equal(t, n*(n-1)/2-(n-1), g.EdgeCount())

	placed := compat.NewSet(n)
	placed.Add(2)
	placed.Add(127)
	assert.Equal(t, n-4, g.RemainingDegree(0, placed))
}

// TestBuild_CompatibleIffDisjoint checks the defining property on random rosters.
func TestBuild_CompatibleIffDisjoint(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 9).Draw(rt, "teams")
		entries := make([]roster.Entry, n)
		for i := range entries {
			entries[i] = roster.Entry{
				Team:    fmt.Sprintf("team_%d", i),
				Members: rapid.SliceOfN(rapid.SampledFrom([]string{"a", "b", "c", "d", "e", "f", "g"}), 0, 3).Draw(rt, "members"),
			}
		}
		r, err := roster.New(entries...)
		if err != nil {
			rt.Fatalf("registry: %v", err)
		}
		g, err := compat.Build(r)
		if err != nil {
			rt.Fatalf("build: %v", err)
		}

		edges := 0
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				want := i != j && r.At(i).Disjoint(r.At(j))
				if got := g.CompatibleIdx(i, j); got != want {
					rt.Fatalf("CompatibleIdx(%d,%d)=%v want %v", i, j, got, want)
				}
				if g.CompatibleIdx(i, j) != g.CompatibleIdx(j, i) {
					rt.Fatalf("asymmetric edge %d-%d", i, j)
				}
				if i < j && want {
					edges++
				}
			}
		}
		if edges != g.EdgeCount() {
			rt.Fatalf("EdgeCount=%d want %d", g.EdgeCount(), edges)
		}
	})
}
