package roster

import (
	"fmt"
	"sort"
	"strings"
)

// New builds a Registry from entries, keeping their order as the declared order.
//
// Validation:
//   - at least one entry (ErrEmptyRegistry);
//   - team IDs non-empty (ErrEmptyTeamID), unique (ErrDuplicateTeam) and
//     normalized (ErrNotNormalized);
//   - performer IDs normalized (ErrNotNormalized); blank members are skipped
//     and duplicates collapse.
//
// Complexity: O(T·M) for T teams of average roster size M.
func New(entries ...Entry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyRegistry
	}

	r := &Registry{
		order: make([]string, 0, len(entries)),
		index: make(map[string]int, len(entries)),
		teams: make(map[string]*Team, len(entries)),
	}
	for _, e := range entries {
		if e.Team == "" {
			return nil, ErrEmptyTeamID
		}
		if Normalize(e.Team) != e.Team {
			return nil, fmt.Errorf("%w: team %q", ErrNotNormalized, e.Team)
		}
		if _, dup := r.teams[e.Team]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTeam, e.Team)
		}

		members := make([]string, 0, len(e.Members))
		for _, m := range e.Members {
			if strings.TrimSpace(m) == "" {
				continue // blank cell, not a performer
			}
			if Normalize(m) != m {
				return nil, fmt.Errorf("%w: performer %q of team %q", ErrNotNormalized, m, e.Team)
			}
			members = append(members, m)
		}

		r.index[e.Team] = len(r.order)
		r.order = append(r.order, e.Team)
		r.teams[e.Team] = newTeam(e.Team, members)
	}

	return r, nil
}

// FromMap builds a Registry from a plain map. Map iteration order is random,
// so the declared order becomes the lexicographic order of team IDs.
func FromMap(m map[string][]string) (*Registry, error) {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, Entry{Team: id, Members: m[id]})
	}

	return New(entries...)
}

// Len returns the number of teams.
func (r *Registry) Len() int { return len(r.order) }

// IDs returns a copy of the team IDs in declared order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// Has reports whether id names a team in the Registry.
func (r *Registry) Has(id string) bool {
	_, ok := r.teams[id]

	return ok
}

// Team returns the team with the given id or a wrapped ErrUnknownTeam.
func (r *Registry) Team(id string) (*Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTeam, id)
	}

	return t, nil
}

// Index returns the declared position of id, or a wrapped ErrUnknownTeam.
func (r *Registry) Index(id string) (int, error) {
	i, ok := r.index[id]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownTeam, id)
	}

	return i, nil
}

// At returns the team at declared position i. It panics if i is out of range,
// like a slice index would.
func (r *Registry) At(i int) *Team { return r.teams[r.order[i]] }

// Performers returns every distinct performer across all rosters, sorted.
func (r *Registry) Performers() []string {
	seen := make(map[string]struct{})
	for _, t := range r.teams {
		for _, m := range t.members {
			seen[m] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)

	return out
}

// TeamsOf returns, in declared order, the teams that performer p belongs to.
func (r *Registry) TeamsOf(p string) []string {
	var out []string
	for _, id := range r.order {
		if r.teams[id].Has(p) {
			out = append(out, id)
		}
	}

	return out
}
