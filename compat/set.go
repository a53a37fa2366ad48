package compat

import "math/bits"

const wordBits = 64

// Set is a fixed-capacity bitset over node indices.
type Set []uint64

// NewSet returns an empty Set able to hold indices in [0, n).
func NewSet(n int) Set { return make(Set, (n+wordBits-1)/wordBits) }

// Has reports whether i is in the set.
func (s Set) Has(i int) bool { return s[i/wordBits]&(1<<(uint(i)%wordBits)) != 0 }

// Add inserts i.
func (s Set) Add(i int) { s[i/wordBits] |= 1 << (uint(i) % wordBits) }

// Remove deletes i.
func (s Set) Remove(i int) { s[i/wordBits] &^= 1 << (uint(i) % wordBits) }

// Count returns the number of members.
func (s Set) Count() int {
	c := 0
	for _, w := range s {
		c += bits.OnesCount64(w)
	}

	return c
}

// CountAndNot returns |s \ other| without allocating. Both sets must share capacity.
func (s Set) CountAndNot(other Set) int {
	c := 0
	for k, w := range s {
		c += bits.OnesCount64(w &^ other[k])
	}

	return c
}

// Indices returns the members in ascending order.
func (s Set) Indices() []int {
	out := make([]int, 0, s.Count())
	for k, w := range s {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, k*wordBits+tz)
			w &= w - 1 // clear lowest set bit
		}
	}

	return out
}
