package search_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/showorder/compat"
	"github.com/katalvlaran/showorder/constraint"
	"github.com/katalvlaran/showorder/roster"
	"github.com/katalvlaran/showorder/search"
)

// trioEntries: go and loco share performer "m"; nxde is compatible with both.
var trioEntries = []roster.Entry{
	{Team: "go", Members: []string{"m", "a"}},
	{Team: "nxde", Members: []string{"b", "c"}},
	{Team: "loco", Members: []string{"m", "d"}},
}

// showcaseEntries is a 16-team showcase roster of realistic density.
var showcaseEntries = []roster.Entry{
	{Team: "go", Members: []string{"meso", "sophia_z", "luke", "leo_z", "justin", "angie", "timothy"}},
	{Team: "dirty_work", Members: []string{"hairuo", "aslan", "sabrina", "kaiki"}},
	{Team: "guilty", Members: []string{"sophia_z", "weilun", "sohpia_d", "joey", "vivian"}},
	{Team: "last_festival", Members: []string{"andy", "roxanne", "sean", "brandon", "irene", "max"}},
	{Team: "famous", Members: []string{"leo_s", "kaiki", "hairuo", "elena", "joey"}},
	{Team: "jellyous", Members: []string{"kaylee", "michael", "sabrina", "max", "lisa"}},
	{Team: "bad_villain", Members: []string{"andy", "meso", "haeun", "eni", "mandy", "hairuo", "vivian"}},
	{Team: "drip", Members: []string{"talia", "irene", "irving", "phuong", "yuna"}},
	{Team: "loco", Members: []string{"ava", "sua", "adell", "aslan", "elena"}},
	{Team: "plot_twist", Members: []string{"leo_s", "andrew_liu", "lisa", "brandon", "sophia_z", "timothy"}},
	{Team: "nxde", Members: []string{"angela", "sherla", "eni", "meso", "aslan"}},
	{Team: "siren", Members: []string{"talia", "kaiki", "phuong", "chi", "adell", "kaylee", "sean"}},
	{Team: "hot", Members: []string{"roxanne", "neha", "sarea", "sua", "ava"}},
	{Team: "xoxz", Members: []string{"aslan", "andrew_lee", "talia", "chunzhen", "irene", "sarea"}},
	{Team: "grabriela", Members: []string{"vivian", "haeun", "michael", "angela", "sherla"}},
	{Team: "dope", Members: []string{"joey", "max", "andrew_lee", "andy", "sophia_d", "kaylee", "leo_s"}},
}

type fixture struct {
	reg *roster.Registry
	g   *compat.Graph
}

func mkFixture(tb testing.TB, entries ...roster.Entry) fixture {
	tb.Helper()
	reg, err := roster.New(entries...)
	require.NoError(tb, err)
	g, err := compat.Build(reg)
	require.NoError(tb, err)

	return fixture{reg: reg, g: g}
}

func (f fixture) model(tb testing.TB, opts ...constraint.Option) *constraint.Model {
	tb.Helper()
	m, err := constraint.New(f.reg, opts...)
	require.NoError(tb, err)

	return m
}

func (f fixture) collect(tb testing.TB, m *constraint.Model, opts ...search.Option) []search.Setlist {
	tb.Helper()
	e, err := search.New(f.g, m, opts...)
	require.NoError(tb, err)
	out, err := e.Collect()
	require.NoError(tb, err)

	return out
}

// bruteForce returns every permutation of the graph's teams that passes Verify.
func bruteForce(g *compat.Graph, m *constraint.Model) [][]string {
	var out [][]string
	ids := g.IDs()
	var permute func(k int)
	permute = func(k int) {
		if k == len(ids) {
			if search.Verify(ids, g, m) == nil {
				out = append(out, append([]string(nil), ids...))
			}
			return
		}
		for i := k; i < len(ids); i++ {
			ids[k], ids[i] = ids[i], ids[k]
			permute(k + 1)
			ids[k], ids[i] = ids[i], ids[k]
		}
	}
	permute(0)

	return out
}

// keys renders setlists as sorted strings for set comparison.
func keys[S ~[]string](ls []S) []string {
	out := make([]string, len(ls))
	for i, s := range ls {
		out[i] = strings.Join(s, ",")
	}
	sort.Strings(out)

	return out
}
