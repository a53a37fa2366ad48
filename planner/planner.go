// Package planner is the programmatic entry point of showorder. It owns one
// immutable Registry and its compatibility graph, and exposes the two
// operations operators need: generating valid setlists under a constraint
// request, and explaining why two teams may or may not be adjacent.
//
// Validation (unknown teams, conflicting pins) happens before any search
// work; an empty result from GenerateValidSetlists is a legitimate answer
// meaning "over-constrained", never an error.
package planner

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/showorder/compat"
	"github.com/katalvlaran/showorder/constraint"
	"github.com/katalvlaran/showorder/diagnostics"
	"github.com/katalvlaran/showorder/roster"
	"github.com/katalvlaran/showorder/search"
)

// ErrRegistryNil is returned when New receives a nil Registry.
var ErrRegistryNil = errors.New("planner: registry is nil")

// Request lists the optional constraints of one generation call.
// Positions are 0-based; Start and End may be empty.
type Request struct {
	Start     string
	End       string
	Positions map[int]string
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger handed to every search; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// Planner generates and checks setlists for one Registry.
// It is safe for concurrent use; each call gets its own Enumerator.
type Planner struct {
	reg *roster.Registry
	g   *compat.Graph
	log *zap.Logger
}

// New builds the compatibility graph of reg and returns a Planner over it.
func New(reg *roster.Registry, opts ...Option) (*Planner, error) {
	if reg == nil {
		return nil, ErrRegistryNil
	}
	p := &Planner{reg: reg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}

	g, err := compat.Build(reg)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	p.g = g
	p.log.Debug("compatibility graph built",
		zap.Int("teams", g.Len()),
		zap.Int("compatible_pairs", g.EdgeCount()),
		zap.Float64("density", g.Density()),
		zap.Strings("isolated", g.Isolated()))

	return p, nil
}

// Registry returns the underlying Registry.
func (p *Planner) Registry() *roster.Registry { return p.reg }

// Graph returns the compatibility graph.
func (p *Planner) Graph() *compat.Graph { return p.g }

// Constraints validates req into a constraint.Model.
func (p *Planner) Constraints(req Request) (*constraint.Model, error) {
	return constraint.New(p.reg,
		constraint.WithStart(req.Start),
		constraint.WithEnd(req.End),
		constraint.WithPositions(req.Positions),
	)
}

// GenerateValidSetlists validates req and returns a lazy enumerator of every
// setlist satisfying it, in deterministic order.
//
// Errors (all returned before any search work):
//   - wrapped roster.ErrUnknownTeam naming a missing team;
//   - constraint.ErrConstraintConflict, also matched by out-of-range pins
//     (constraint.ErrPositionOutOfRange);
//   - search option errors.
func (p *Planner) GenerateValidSetlists(req Request, opts ...search.Option) (*search.Enumerator, error) {
	m, err := p.Constraints(req)
	if err != nil {
		return nil, err
	}
	all := append([]search.Option{search.WithLogger(p.log)}, opts...)

	return search.New(p.g, m, all...)
}

// ExplainPair reports whether teams a and b may perform back to back and,
// if not, which performers they share.
func (p *Planner) ExplainPair(a, b string) (diagnostics.PairReport, error) {
	return diagnostics.ExplainPair(p.reg, a, b)
}

// Verify checks a proposed order against the setlist invariants and req.
// It returns nil for a valid setlist, a *search.VerifyError listing every
// defect otherwise, or a constraint error if req itself is invalid.
func (p *Planner) Verify(seq []string, req Request) error {
	m, err := p.Constraints(req)
	if err != nil {
		return err
	}

	return search.Verify(seq, p.g, m)
}
