package diagnostics_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/showorder/diagnostics"
	"github.com/katalvlaran/showorder/roster"
)

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

func TestNilRegistry(t *testing.T) {
	_, err := diagnostics.ExplainPair(nil, "go", "loco")
	assert.ErrorIs(t, err, diagnostics.ErrRegistryNil)

	_, err = diagnostics.ExplainSequence(nil, []string{"go", "nxde"})
	assert.ErrorIs(t, err, diagnostics.ErrRegistryNil)

	assert.Nil(t, diagnostics.Conflicts(nil))
	assert.Nil(t, diagnostics.Bottlenecks(nil))
}

func TestExplainPair(t *testing.T) {
	reg := mkTrio(t)

	p, err := diagnostics.ExplainPair(reg, "go", "loco")
	require.NoError(t, err)
	assert.False(t, p.Compatible)
	assert.Equal(t, []string{"m"}, p.Shared)
	assert.Equal(t, "go and loco share: m", p.String())

	p, err = diagnostics.ExplainPair(reg, "go", "nxde")
	require.NoError(t, err)
	assert.True(t, p.Compatible)
	assert.Empty(t, p.Shared)
	assert.Equal(t, "go and nxde are compatible (no shared performers)", p.String())
}

func TestExplainPair_UnknownTeam(t *testing.T) {
	reg := mkTrio(t)

	_, err := diagnostics.ExplainPair(reg, "siren", "go")
	require.ErrorIs(t, err, roster.ErrUnknownTeam)
	assert.Contains(t, err.Error(), `"siren"`)

	_, err = diagnostics.ExplainPair(reg, "go", "drip")
	require.ErrorIs(t, err, roster.ErrUnknownTeam)
	assert.Contains(t, err.Error(), `"drip"`)
}

func TestExplainPair_MatchesIntersection(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		pool := []string{"a", "b", "c", "d", "e"}
		ma := rapid.SliceOfNDistinct(rapid.SampledFrom(pool), 0, 4, rapid.ID[string]).Draw(rt, "a")
		mb := rapid.SliceOfNDistinct(rapid.SampledFrom(pool), 0, 4, rapid.ID[string]).Draw(rt, "b")
		reg, err := roster.New(roster.Entry{Team: "x", Members: ma}, roster.Entry{Team: "y", Members: mb})
		if err != nil {
			rt.Fatalf("registry: %v", err)
		}

		inB := map[string]bool{}
		for _, m := range mb {
			inB[m] = true
		}
		var want []string
		for _, m := range pool { // pool is sorted
			if inB[m] && contains(ma, m) {
				want = append(want, m)
			}
		}

		p, err := diagnostics.ExplainPair(reg, "x", "y")
		if err != nil {
			rt.Fatalf("explain: %v", err)
		}
		if p.Compatible != (len(want) == 0) {
			rt.Fatalf("Compatible=%v, shared=%v", p.Compatible, want)
		}
		if fmt.Sprint(p.Shared) != fmt.Sprint(want) {
			rt.Fatalf("Shared=%v want %v", p.Shared, want)
		}
	})
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}

	return false
}

func TestExplainSequence(t *testing.T) {
	reg := mkTrio(t)

	rep, err := diagnostics.ExplainSequence(reg, []string{"go", "nxde", "loco"})
	require.NoError(t, err)
	assert.True(t, rep.OK())

	rep, err = diagnostics.ExplainSequence(reg, []string{"nxde", "go", "loco"})
	require.NoError(t, err)
	assert.False(t, rep.OK())
	require.Len(t, rep.Conflicts, 1)
	assert.Equal(t, diagnostics.PairReport{A: "go", B: "loco", Shared: []string{"m"}}, rep.Conflicts[0])

	_, err = diagnostics.ExplainSequence(reg, []string{"go", "siren"})
	assert.ErrorIs(t, err, roster.ErrUnknownTeam)
}

func TestConflictsAndBottlenecks(t *testing.T) {
	reg, err := roster.New(
		roster.Entry{Team: "go", Members: []string{"meso", "luke"}},
		roster.Entry{Team: "nxde", Members: []string{"meso", "aslan"}},
		roster.Entry{Team: "loco", Members: []string{"aslan", "ava"}},
		roster.Entry{Team: "bad_villain", Members: []string{"meso", "andy"}},
	)
	require.NoError(t, err)

	assert.Equal(t, []diagnostics.PairReport{
		{A: "go", B: "nxde", Shared: []string{"meso"}},
		{A: "go", B: "bad_villain", Shared: []string{"meso"}},
		{A: "nxde", B: "loco", Shared: []string{"aslan"}},
		{A: "nxde", B: "bad_villain", Shared: []string{"meso"}},
	}, diagnostics.Conflicts(reg))

	assert.Equal(t, []diagnostics.Performer{
		{Name: "meso", Teams: []string{"go", "nxde", "bad_villain"}},
		{Name: "aslan", Teams: []string{"nxde", "loco"}},
	}, diagnostics.Bottlenecks(reg))
}
