// Package compat derives the team compatibility graph from a roster.Registry.
//
// Two distinct teams are compatible, and may therefore perform back to back,
// iff their rosters are disjoint. The graph is undirected, has no self loops,
// and is a pure function of the Registry it was built from.
//
// Representation:
//
//	Nodes are indexed by the Registry's declared order. Each node owns one
//	bitset row (Set) whose bit j is set iff node j is compatible with it.
//	Rows make the two hot queries of the search engine O(1) and O(T/64):
//	CompatibleIdx(i, j) and RemainingDegree(i, placed).
//
// Complexity:
//
//   - Build: Time O(T²·M) for T teams of average roster size M, Space O(T²/64).
//   - CompatibleIdx: O(1). Neighbors: O(T).
//
// Concurrency:
//
//	A Graph is never mutated after Build returns; concurrent reads from
//	independent search invocations need no locking.
package compat
