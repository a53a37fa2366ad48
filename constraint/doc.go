// Package constraint models the fixed-position requirements of a setlist:
// an optional opening team, an optional closing team, and any number of
// teams pinned to interior slots.
//
// A start team is stored as a pin at index 0 and an end team as a pin at
// index team_count-1, so the search engine only ever consults one
// position → team map. New validates the whole request eagerly, before any
// search work happens:
//
//   - every referenced team must exist (wrapped roster.ErrUnknownTeam, naming
//     the identifier); lookups are checked before anything else so a missing
//     start team is always reported as a lookup failure;
//   - every index must lie in [0, team_count) (ErrPositionOutOfRange, a
//     kind of ErrConstraintConflict);
//   - no index may demand two different teams and no team may be pinned to
//     two different indices (ErrConstraintConflict). Repeating an identical
//     pin, e.g. WithStart("go") together with WithPosition(0, "go"), is fine.
//
// A Model is immutable after New and safe to share.
package constraint
