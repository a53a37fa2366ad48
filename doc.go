// Package showorder plans the running order of a showcase: given which
// performers belong to which team, it generates every setlist in which no
// performer has to appear in two consecutive acts, optionally with teams
// pinned to the opening, closing or any other slot.
//
// The module is organized as one package per concern:
//
//	roster/       teams and their performers; CSV loading and name normalization
//	compat/       the compatibility graph (bitset rows, degrees, edges)
//	constraint/   validated fixed-position constraints (start, end, any slot)
//	search/       lazy backtracking enumeration of valid setlists; Verify
//	diagnostics/  why two teams clash; conflicting pairs; bottleneck performers
//	planner/      the facade tying the above together
//	config/       viper-backed CLI configuration
//	logging/      zap logger construction
//	cmd/showorder the command-line interface
//
// Quick example:
//
//	reg, _ := roster.New(
//		roster.Entry{Team: "go", Members: []string{"meso", "luke"}},
//		roster.Entry{Team: "nxde", Members: []string{"angela"}},
//		roster.Entry{Team: "loco", Members: []string{"meso", "ava"}},
//	)
//	p, _ := planner.New(reg)
//	e, _ := p.GenerateValidSetlists(planner.Request{Start: "loco"})
//	for s := range e.All() {
//		fmt.Println(s) // loco → nxde → go
//	}
//
// Generation never fails because the constraints are too tight: an empty
// sequence means no valid setlist exists. Unknown teams and contradictory
// pins are rejected before any search work.
package showorder
