package compat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/showorder/compat"
)

func TestSet_Basics(t *testing.T) {
	s := compat.NewSet(70)
	assert.Len(t, s, 2)
	assert.Equal(t, 0, s.Count())

	for _, i := range []int{0, 5, 63, 64, 69} {
		s.Add(i)
	}
	assert.True(t, s.Has(63))
	assert.True(t, s.Has(64))
	assert.False(t, s.Has(1))
	assert.Equal(t, 5, s.Count())
	assert.Equal(t, []int{0, 5, 63, 64, 69}, s.Indices())

	s.Remove(63)
	s.Remove(1) // absent: no-op
	assert.Equal(t, []int{0, 5, 64, 69}, s.Indices())

	other := compat.NewSet(70)
	other.Add(5)
	other.Add(69)
	assert.Equal(t, 2, s.CountAndNot(other))
}
