package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrGraphNil is returned when New receives a nil graph.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrModelMismatch indicates a constraint model validated for another registry.
	ErrModelMismatch = errors.New("search: constraint model does not match graph")

	// ErrUnsupportedOrdering indicates an unknown Ordering value.
	ErrUnsupportedOrdering = errors.New("search: unsupported ordering")

	// ErrBadLimit indicates a negative limit.
	ErrBadLimit = errors.New("search: limit must be non-negative")

	// ErrInvalidSetlist indicates an ordering that breaks a setlist invariant.
	ErrInvalidSetlist = errors.New("search: invalid setlist")
)

// Setlist is one complete performance order, first slot first.
type Setlist []string

// String renders the setlist as "a → b → c".
func (s Setlist) String() string { return strings.Join(s, " → ") }

// Ordering selects the candidate iteration order at each position.
type Ordering int

const (
	OrderDeclared Ordering = iota // registry order
	OrderDegree                   // static: fewest compatible teams first
	OrderDynamic                  // per step: fewest unplaced compatible teams first
)

var orderingNames = map[Ordering]string{
	OrderDeclared: "declared",
	OrderDegree:   "degree",
	OrderDynamic:  "dynamic",
}

// String returns the configuration name of o.
func (o Ordering) String() string {
	if s, ok := orderingNames[o]; ok {
		return s
	}

	return fmt.Sprintf("Ordering(%d)", int(o))
}

// ParseOrdering maps a configuration name back to an Ordering.
func ParseOrdering(s string) (Ordering, error) {
	for o, name := range orderingNames {
		if name == s {
			return o, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedOrdering, s)
}

// Option configures an Enumerator.
type Option func(*Options)

// Options holds the Enumerator configuration.
type Options struct {
	// Ctx aborts the search when done; defaults to context.Background().
	Ctx context.Context

	// Ordering is the candidate iteration policy; defaults to OrderDeclared.
	Ordering Ordering

	// Limit stops the enumeration after this many setlists; 0 means no limit.
	Limit int

	// Strict re-verifies each setlist before emitting it.
	Strict bool

	// Logger receives debug events; defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultOptions returns Background context, declared ordering, no limit,
// no strict validation and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Ordering: OrderDeclared,
		Limit:    0,
		Strict:   false,
		Logger:   zap.NewNop(),
	}
}

// Stats counts search work done so far.
type Stats struct {
	// Placements is the number of times a team was placed on the partial order.
	Placements int

	// DeadEnds is the number of positions that had no admissible candidate.
	DeadEnds int

	// Emitted is the number of setlists produced.
	Emitted int
}
