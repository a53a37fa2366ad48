// Package roster owns the team → performer mapping that every other showorder
// package reads from.
//
// What:
//
//   - Team: a normalized identifier plus an immutable, de-duplicated roster of
//     performer identifiers (possibly empty).
//   - Registry: the read-only collection of Teams with a declared order. The
//     declared order (insertion order, or CSV column order) is the canonical
//     iteration order used downstream for deterministic output.
//   - Normalize: the identifier normalization applied at the input boundary
//     (lowercase, trimmed, periods dropped, whitespace runs → "_").
//   - LoadCSV: ragged column-per-team tables, blank cells ignored.
//
// Invariants:
//
//   - Team IDs are unique, non-empty and already normalized.
//   - Performer IDs are non-empty and normalized; blank cells never become
//     performers.
//   - A Registry holds at least one team and is never mutated after New
//     returns, so it may be shared between goroutines without locking.
//
// Errors:
//
//   - ErrEmptyRegistry    no teams supplied.
//   - ErrEmptyTeamID      a team identifier is empty.
//   - ErrDuplicateTeam    two teams normalize to the same identifier.
//   - ErrNotNormalized    an identifier differs from Normalize(identifier).
//   - ErrUnknownTeam      lookup of an identifier absent from the Registry.
//   - ErrMalformedCSV     the tabular input cannot be interpreted.
package roster
