package constraint

import "errors"

// Sentinel errors returned by New.
var (
	// ErrConstraintConflict indicates an internally contradictory request.
	ErrConstraintConflict = errors.New("constraint: conflicting constraints")

	// ErrPositionOutOfRange indicates a pin outside [0, team_count). It is
	// always reported together with ErrConstraintConflict.
	ErrPositionOutOfRange = errors.New("constraint: position out of range")

	// ErrRegistryNil indicates New was called without a Registry.
	ErrRegistryNil = errors.New("constraint: registry is nil")
)

// Source records which option produced a pin; it only feeds error messages.
type Source string

const (
	SourceStart    Source = "start"
	SourceEnd      Source = "end"
	SourcePosition Source = "position"
)

// Pin requires Team to occupy Index (0-based) in every accepted setlist.
type Pin struct {
	Index  int
	Team   string
	Source Source
}

// Option adds a requirement to the request being built by New.
type Option func(*request)

// request accumulates options in call order before validation.
type request struct {
	pins []Pin
	end  []string // end teams wait for the team count before they get an index
}

// Model is the validated set of fixed-position requirements.
type Model struct {
	n      int
	byPos  map[int]string
	byTeam map[string]int
	pins   []Pin // sorted by Index
}
