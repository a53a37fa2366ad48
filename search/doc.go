// Package search enumerates every valid setlist of a compatibility graph
// under a constraint model, lazily and in a deterministic order.
//
// What:
//
//	A setlist is a permutation of all teams in which every pair of
//	consecutive teams is compatible (disjoint rosters) and every pinned
//	position holds its pinned team. Enumerator produces each such setlist
//	exactly once and nothing else.
//
// How:
//
//	Depth-first backtracking, one position per level, with forward checking:
//
//	 1. Position i pinned to T: T is the only candidate, provided it is not
//	    already placed and is compatible with the team at i-1.
//	 2. Otherwise: every unplaced, unpinned team compatible with the team at
//	    i-1 (vacuous at i = 0) and, if i+1 is pinned to U, compatible with U.
//	 3. Place a candidate, descend, undo on return, try the next candidate.
//	 4. At i == team_count the ordering is complete and is emitted.
//	 5. An empty candidate list abandons the branch.
//
//	The recursion is kept on an explicit frame stack (one candidate cursor per
//	depth) rather than the goroutine stack, so Next can return a setlist and
//	resume the traversal exactly where it stopped on the following call.
//
// Ordering policies (WithOrdering) change the emission order only:
//
//   - OrderDeclared  registry order (default).
//   - OrderDegree    fewest compatible teams first, ties by registry order.
//   - OrderDynamic   fewest still-unplaced compatible teams first, recomputed
//     at every step, ties by registry order.
//
// Cancellation:
//
//	Stop calling Next (or break out of a range over All) at any time; the
//	enumerator holds no goroutines, files or locks. WithContext additionally
//	aborts a long exhaustive search; Err then reports ctx.Err().
//
// Complexity:
//
//	Worst case O(T!) placements for T teams; forward checking bounds the
//	branching factor by the graph degree. There is deliberately no global
//	feasibility pre-check: infeasible inputs are discovered by exhaustion
//	and yield an empty sequence, never an error.
//
// Errors:
//
//   - ErrGraphNil            graph is nil.
//   - ErrModelMismatch       model validated against a different team count.
//   - ErrUnsupportedOrdering unknown Ordering value.
//   - ErrBadLimit            negative limit.
//   - ErrInvalidSetlist      Verify found a defect (also raised by strict mode).
//   - context errors         through Err when WithContext is cancelled.
package search
