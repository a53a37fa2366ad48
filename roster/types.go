package roster

import "errors"

// Sentinel errors for registry construction and lookup.
var (
	// ErrEmptyRegistry indicates that a Registry was requested with no teams.
	ErrEmptyRegistry = errors.New("roster: registry has no teams")

	// ErrEmptyTeamID indicates a team whose identifier is the empty string.
	ErrEmptyTeamID = errors.New("roster: team ID is empty")

	// ErrDuplicateTeam indicates two entries sharing one team identifier.
	ErrDuplicateTeam = errors.New("roster: duplicate team")

	// ErrNotNormalized indicates an identifier that has not been normalized.
	ErrNotNormalized = errors.New("roster: identifier is not normalized")

	// ErrUnknownTeam indicates a lookup of a team absent from the Registry.
	// Callers receive it wrapped with the offending identifier.
	ErrUnknownTeam = errors.New("roster: unknown team")

	// ErrMalformedCSV indicates tabular input that cannot be read as rosters.
	ErrMalformedCSV = errors.New("roster: malformed csv")
)

// Entry is the raw input for one team: its identifier and performer list.
// Members may contain duplicates and blank strings; both are dropped.
type Entry struct {
	Team    string
	Members []string
}

// Team is a named group with a fixed roster of performers.
// A Team is immutable once built by New.
type Team struct {
	id      string
	members []string            // sorted, unique
	set     map[string]struct{} // membership index over members
}

// Registry maps team identifiers to Teams and remembers the declared order.
type Registry struct {
	order []string         // declared order of team IDs
	index map[string]int   // team ID → position in order
	teams map[string]*Team // team ID → Team
}
