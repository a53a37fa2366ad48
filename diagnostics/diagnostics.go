// Package diagnostics explains compatibility decisions so an operator can see
// why a constraint set yields no setlist. It reads the roster.Registry
// directly and is independent of the search engine.
package diagnostics

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/showorder/roster"
)

// ErrRegistryNil is returned when an explainer receives a nil Registry.
var ErrRegistryNil = errors.New("diagnostics: registry is nil")

// PairReport explains whether two teams may perform back to back.
type PairReport struct {
	A          string   `json:"a" yaml:"a"`
	B          string   `json:"b" yaml:"b"`
	Compatible bool     `json:"compatible" yaml:"compatible"`
	Shared     []string `json:"shared,omitempty" yaml:"shared,omitempty"` // sorted; non-empty iff !Compatible
}

// String renders the report as one sentence.
func (p PairReport) String() string {
	if p.Compatible {
		return fmt.Sprintf("%s and %s are compatible (no shared performers)", p.A, p.B)
	}

	return fmt.Sprintf("%s and %s share: %s", p.A, p.B, strings.Join(p.Shared, ", "))
}

// SequenceReport lists every adjacent conflict of a proposed order.
type SequenceReport struct {
	Sequence  []string     `json:"sequence" yaml:"sequence"`
	Conflicts []PairReport `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
}

// OK reports whether no consecutive pair shares a performer.
func (s SequenceReport) OK() bool { return len(s.Conflicts) == 0 }

// ExplainPair reports whether a and b are compatible and, if not, exactly
// which performers they share. Either identifier missing from reg yields a
// wrapped roster.ErrUnknownTeam naming it.
//
// Explaining a team against itself reports its whole roster as shared
// (an empty roster is trivially compatible).
func ExplainPair(reg *roster.Registry, a, b string) (PairReport, error) {
	if reg == nil {
		return PairReport{}, ErrRegistryNil
	}
	ta, err := reg.Team(a)
	if err != nil {
		return PairReport{}, fmt.Errorf("diagnostics: %w", err)
	}
	tb, err := reg.Team(b)
	if err != nil {
		return PairReport{}, fmt.Errorf("diagnostics: %w", err)
	}

	shared := ta.Shared(tb)

	return PairReport{A: a, B: b, Compatible: len(shared) == 0, Shared: shared}, nil
}

// ExplainSequence checks every consecutive pair of seq. It fails on the
// first unknown team; it does not check that seq covers every team.
func ExplainSequence(reg *roster.Registry, seq []string) (SequenceReport, error) {
	if reg == nil {
		return SequenceReport{}, ErrRegistryNil
	}
	rep := SequenceReport{Sequence: append([]string(nil), seq...)}
	for _, id := range seq {
		if !reg.Has(id) {
			return SequenceReport{}, fmt.Errorf("diagnostics: %w: %q", roster.ErrUnknownTeam, id)
		}
	}
	for i := 0; i+1 < len(seq); i++ {
		p, err := ExplainPair(reg, seq[i], seq[i+1])
		if err != nil {
			return SequenceReport{}, err
		}
		if !p.Compatible {
			rep.Conflicts = append(rep.Conflicts, p)
		}
	}

	return rep, nil
}

// Conflicts lists every incompatible pair of distinct teams, ordered by the
// registry's declared order of A and then B. A nil registry has none.
func Conflicts(reg *roster.Registry) []PairReport {
	var out []PairReport
	if reg == nil {
		return nil
	}
	n := reg.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ta, tb := reg.At(i), reg.At(j)
			if shared := ta.Shared(tb); len(shared) > 0 {
				out = append(out, PairReport{A: ta.ID(), B: tb.ID(), Shared: shared})
			}
		}
	}

	return out
}

// Bottlenecks returns the performers who appear on more than one team, each
// with the teams they block from sharing a slot boundary, ordered by
// descending team count and then by name. A nil registry has none.
func Bottlenecks(reg *roster.Registry) []Performer {
	var out []Performer
	if reg == nil {
		return nil
	}
	for _, p := range reg.Performers() { // sorted by name
		if teams := reg.TeamsOf(p); len(teams) > 1 {
			out = append(out, Performer{Name: p, Teams: teams})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i].Teams) > len(out[j].Teams) })

	return out
}

// Performer is a performer together with the teams they belong to.
type Performer struct {
	Name  string   `json:"name" yaml:"name"`
	Teams []string `json:"teams" yaml:"teams"`
}
