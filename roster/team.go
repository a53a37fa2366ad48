package roster

import "sort"

// newTeam builds a Team from already-validated, normalized members.
func newTeam(id string, members []string) *Team {
	t := &Team{id: id, set: make(map[string]struct{}, len(members))}
	for _, m := range members {
		if _, dup := t.set[m]; dup {
			continue
		}
		t.set[m] = struct{}{}
		t.members = append(t.members, m)
	}
	sort.Strings(t.members)

	return t
}

// ID returns the team identifier.
func (t *Team) ID() string { return t.id }

// Size returns the number of distinct performers on the roster.
func (t *Team) Size() int { return len(t.members) }

// Members returns a sorted copy of the roster.
func (t *Team) Members() []string {
	out := make([]string, len(t.members))
	copy(out, t.members)

	return out
}

// Has reports whether performer p is on the roster.
func (t *Team) Has(p string) bool {
	_, ok := t.set[p]

	return ok
}

// Shared returns the sorted performers that appear on both rosters.
// The result is nil when the rosters are disjoint.
// Complexity: O(min(|t|, |o|)).
func (t *Team) Shared(o *Team) []string {
	small, large := t, o
	if len(large.members) < len(small.members) {
		small, large = large, small
	}
	var out []string
	for _, m := range small.members { // sorted walk keeps the output sorted
		if large.Has(m) {
			out = append(out, m)
		}
	}

	return out
}

// Disjoint reports whether the two rosters share no performer.
// An empty roster is disjoint from every roster.
func (t *Team) Disjoint(o *Team) bool {
	small, large := t, o
	if len(large.members) < len(small.members) {
		small, large = large, small
	}
	for _, m := range small.members {
		if large.Has(m) {
			return false
		}
	}

	return true
}
