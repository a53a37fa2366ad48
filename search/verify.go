package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/showorder/compat"
	"github.com/katalvlaran/showorder/constraint"
)

// ProblemKind classifies one defect found by Verify.
type ProblemKind string

const (
	ProblemLength    ProblemKind = "length"    // wrong number of slots
	ProblemUnknown   ProblemKind = "unknown"   // team absent from the registry
	ProblemDuplicate ProblemKind = "duplicate" // team appears twice
	ProblemMissing   ProblemKind = "missing"   // team never appears
	ProblemAdjacent  ProblemKind = "adjacent"  // consecutive teams share performers
	ProblemPin       ProblemKind = "pin"       // pinned slot holds another team
)

// Problem is a single setlist defect. Index is the 0-based slot involved
// (the first slot of the pair for ProblemAdjacent), or -1 when no slot applies.
type Problem struct {
	Kind   ProblemKind
	Index  int
	Detail string
}

// VerifyError lists every defect of a rejected setlist.
// It unwraps to ErrInvalidSetlist.
type VerifyError struct {
	Problems []Problem
}

func (e *VerifyError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = string(p.Kind) + ": " + p.Detail
	}

	return ErrInvalidSetlist.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match ErrInvalidSetlist.
func (e *VerifyError) Unwrap() error { return ErrInvalidSetlist }

// Verify checks seq against the three setlist invariants: it must be a
// permutation of all teams of g, every consecutive pair must be compatible,
// and every pin of m (nil means none) must hold. It reports every defect
// rather than stopping at the first one.
//
// Complexity: O(T + P + A·M) for T teams, P pins and A adjacency conflicts.
func Verify(seq []string, g *compat.Graph, m *constraint.Model) error {
	if g == nil {
		return ErrGraphNil
	}

	var probs []Problem
	n := g.Len()
	if len(seq) != n {
		probs = append(probs, Problem{
			Kind: ProblemLength, Index: -1,
			Detail: fmt.Sprintf("%d slots for %d teams", len(seq), n),
		})
	}

	seen := make(map[string]int, len(seq))
	idx := make([]int, len(seq)) // node index per slot, -1 if unknown
	for i, id := range seq {
		v, err := g.Index(id)
		if err != nil {
			idx[i] = -1
			probs = append(probs, Problem{Kind: ProblemUnknown, Index: i, Detail: fmt.Sprintf("%q", id)})
			continue
		}
		idx[i] = v
		if first, dup := seen[id]; dup {
			probs = append(probs, Problem{
				Kind: ProblemDuplicate, Index: i,
				Detail: fmt.Sprintf("%q at slots %d and %d", id, first+1, i+1),
			})
			continue
		}
		seen[id] = i
	}
	for _, id := range g.IDs() {
		if _, ok := seen[id]; !ok {
			probs = append(probs, Problem{Kind: ProblemMissing, Index: -1, Detail: fmt.Sprintf("%q", id)})
		}
	}

	reg := g.Registry()
	for i := 0; i+1 < len(seq); i++ {
		a, b := idx[i], idx[i+1]
		if a < 0 || b < 0 || a == b || g.CompatibleIdx(a, b) {
			continue
		}
		shared := reg.At(a).Shared(reg.At(b))
		probs = append(probs, Problem{
			Kind: ProblemAdjacent, Index: i,
			Detail: fmt.Sprintf("%q → %q share %s", seq[i], seq[i+1], strings.Join(shared, ", ")),
		})
	}

	if m != nil {
		for _, p := range m.Violations(seq) {
			got := "nothing"
			if p.Index < len(seq) {
				got = fmt.Sprintf("%q", seq[p.Index])
			}
			probs = append(probs, Problem{
				Kind: ProblemPin, Index: p.Index,
				Detail: fmt.Sprintf("slot %d requires %q, has %s", p.Index+1, p.Team, got),
			})
		}
	}

	if len(probs) > 0 {
		return &VerifyError{Problems: probs}
	}

	return nil
}
