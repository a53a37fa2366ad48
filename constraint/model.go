package constraint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/showorder/roster"
)

// New validates opts against reg and returns the resulting Model.
//
// Implementation:
//   - Stage 1: collect pins in option order; end teams receive index n-1.
//   - Stage 2: resolve every team (wrapped roster.ErrUnknownTeam).
//   - Stage 3: range-check every index (ErrPositionOutOfRange, which also
//     matches ErrConstraintConflict).
//   - Stage 4: detect index and team collisions (ErrConstraintConflict).
//
// Complexity: O(P log P) for P pins.
func New(reg *roster.Registry, opts ...Option) (*Model, error) {
	if reg == nil {
		return nil, ErrRegistryNil
	}

	var req request
	for _, opt := range opts {
		opt(&req)
	}
	n := reg.Len()
	pins := req.pins
	for _, id := range req.end {
		pins = append(pins, Pin{Index: n - 1, Team: id, Source: SourceEnd})
	}

	for _, p := range pins {
		if !reg.Has(p.Team) {
			return nil, fmt.Errorf("constraint: %s team: %w: %q", p.Source, roster.ErrUnknownTeam, p.Team)
		}
	}

	for _, p := range pins {
		if p.Index < 0 || p.Index >= n {
			return nil, fmt.Errorf("%w: %w: %s pin %d for %q outside [0,%d)",
				ErrConstraintConflict, ErrPositionOutOfRange, p.Source, p.Index, p.Team, n)
		}
	}

	m := &Model{
		n:      n,
		byPos:  make(map[int]string, len(pins)),
		byTeam: make(map[string]int, len(pins)),
	}
	for _, p := range pins {
		if other, ok := m.byPos[p.Index]; ok && other != p.Team {
			return nil, fmt.Errorf("%w: position %d requires both %q and %q", ErrConstraintConflict, p.Index, other, p.Team)
		}
		if at, ok := m.byTeam[p.Team]; ok && at != p.Index {
			return nil, fmt.Errorf("%w: %q required at positions %d and %d", ErrConstraintConflict, p.Team, at, p.Index)
		}
		if _, ok := m.byPos[p.Index]; ok {
			continue // identical duplicate
		}
		m.byPos[p.Index] = p.Team
		m.byTeam[p.Team] = p.Index
		m.pins = append(m.pins, p)
	}
	sort.Slice(m.pins, func(i, j int) bool { return m.pins[i].Index < m.pins[j].Index })

	return m, nil
}

// Len returns the team count the model was validated against.
func (m *Model) Len() int { return m.n }

// Count returns the number of pinned positions.
func (m *Model) Count() int { return len(m.pins) }

// At returns the team pinned at idx, if any.
func (m *Model) At(idx int) (string, bool) {
	id, ok := m.byPos[idx]

	return id, ok
}

// PinnedIndex returns the index team id is pinned to, if any.
func (m *Model) PinnedIndex(id string) (int, bool) {
	i, ok := m.byTeam[id]

	return i, ok
}

// Start returns the team pinned to the first slot, if any.
func (m *Model) Start() (string, bool) { return m.At(0) }

// End returns the team pinned to the last slot, if any.
func (m *Model) End() (string, bool) { return m.At(m.n - 1) }

// Positions returns a copy of the pins sorted by index.
func (m *Model) Positions() []Pin {
	out := make([]Pin, len(m.pins))
	copy(out, m.pins)

	return out
}

// Violations returns the pins not honoured by seq, in index order.
// A pin whose index lies beyond len(seq) counts as violated.
func (m *Model) Violations(seq []string) []Pin {
	var out []Pin
	for _, p := range m.pins {
		if p.Index >= len(seq) || seq[p.Index] != p.Team {
			out = append(out, p)
		}
	}

	return out
}

// Satisfied reports whether seq honours every pin.
func (m *Model) Satisfied(seq []string) bool { return len(m.Violations(seq)) == 0 }

// String renders the pins as 1-based slots, e.g. "1=go 8=xoxz 16=dope".
func (m *Model) String() string {
	if len(m.pins) == 0 {
		return "unconstrained"
	}
	parts := make([]string, len(m.pins))
	for i, p := range m.pins {
		parts[i] = fmt.Sprintf("%d=%s", p.Index+1, p.Team)
	}

	return strings.Join(parts, " ")
}
