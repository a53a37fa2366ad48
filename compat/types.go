package compat

import (
	"errors"

	"github.com/katalvlaran/showorder/roster"
)

// ErrRegistryNil is returned when Build receives a nil Registry.
var ErrRegistryNil = errors.New("compat: registry is nil")

// Edge is one compatible pair. A precedes B in declared order.
type Edge struct {
	A string
	B string
}

// Graph is the immutable compatibility graph of a Registry.
type Graph struct {
	reg    *roster.Registry
	ids    []string // declared order
	rows   []Set    // rows[i] has bit j set iff i and j are compatible
	degree []int    // popcount of rows[i]
	edges  int      // number of undirected edges
}
