package search

import (
	"fmt"
	"iter"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/showorder/compat"
	"github.com/katalvlaran/showorder/constraint"
)

// ctxCheckMask makes the context check run once every 1024 placements.
const ctxCheckMask = 1023

// frame is one level of the explicit DFS stack: the admissible candidates
// for a position and the cursor of the next one to try.
type frame struct {
	cands []int
	next  int
}

// Enumerator lazily produces the valid setlists of one graph/model pair.
// It is not safe for concurrent use; create one Enumerator per consumer.
type Enumerator struct {
	g     *compat.Graph
	model *constraint.Model
	opts  Options
	log   *zap.Logger
	n     int

	fixed []int // position → pinned node, or -1
	pinAt []int // node → pinned position, or -1
	order []int // static candidate order

	path   []int
	placed compat.Set
	stack  []frame
	bufs   [][]int // per-depth candidate buffers reused across frames

	started bool
	done    bool
	err     error
	stats   Stats
}

// New prepares an Enumerator over g honouring m. A nil m means no pins.
// No search work happens until the first call to Next.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrModelMismatch if m was validated for a different team count or
//     names a team that g does not contain.
//   - ErrUnsupportedOrdering, ErrBadLimit for invalid options.
func New(g *compat.Graph, m *constraint.Model, opts ...Option) (*Enumerator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if _, ok := orderingNames[o.Ordering]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOrdering, o.Ordering)
	}
	if o.Limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLimit, o.Limit)
	}

	n := g.Len()
	e := &Enumerator{
		g:      g,
		model:  m,
		opts:   o,
		log:    o.Logger,
		n:      n,
		fixed:  make([]int, n),
		pinAt:  make([]int, n),
		path:   make([]int, 0, n),
		placed: compat.NewSet(n),
		stack:  make([]frame, 0, n),
		bufs:   make([][]int, n),
	}
	for i := range e.fixed {
		e.fixed[i] = -1
		e.pinAt[i] = -1
	}

	if m != nil {
		if m.Len() != n {
			return nil, fmt.Errorf("%w: model has %d slots, graph has %d teams", ErrModelMismatch, m.Len(), n)
		}
		for _, p := range m.Positions() {
			v, err := g.Index(p.Team)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrModelMismatch, err)
			}
			e.fixed[p.Index] = v
			e.pinAt[v] = p.Index
		}
	}

	e.order = staticOrder(g, o.Ordering)

	return e, nil
}

// staticOrder returns node indices in declared order, or by ascending degree
// for OrderDegree. The sort is stable so ties keep declared order.
func staticOrder(g *compat.Graph, ord Ordering) []int {
	order := make([]int, g.Len())
	for i := range order {
		order[i] = i
	}
	if ord == OrderDegree {
		sort.SliceStable(order, func(a, b int) bool {
			return g.DegreeIdx(order[a]) < g.DegreeIdx(order[b])
		})
	}

	return order
}

// Next returns the next valid setlist, or false once the sequence is over.
// After false, Err distinguishes exhaustion (nil) from cancellation or a
// strict-validation failure.
func (e *Enumerator) Next() (Setlist, bool) {
	if e.done {
		return nil, false
	}
	if e.opts.Limit > 0 && e.stats.Emitted >= e.opts.Limit {
		e.finish("limit")
		return nil, false
	}
	if !e.started {
		e.started = true
		e.log.Debug("setlist search started",
			zap.Int("teams", e.n),
			zap.Stringer("ordering", e.opts.Ordering),
			zap.Int("pins", e.pinCount()),
			zap.Int("limit", e.opts.Limit))
		if err := e.opts.Ctx.Err(); err != nil {
			e.err = err
			e.finish("cancelled")
			return nil, false
		}
		e.push(0)
	}

	for len(e.stack) > 0 {
		depth := len(e.stack) - 1
		f := &e.stack[depth]

		// Undo the choice made at this depth before trying the next candidate.
		if len(e.path) > depth {
			e.unplace()
		}
		if f.next == len(f.cands) {
			e.stack = e.stack[:depth]
			continue
		}
		c := f.cands[f.next]
		f.next++
		e.place(c)

		if e.stats.Placements&ctxCheckMask == 0 {
			if err := e.opts.Ctx.Err(); err != nil {
				e.err = err
				e.finish("cancelled")
				return nil, false
			}
		}

		if len(e.path) == e.n {
			s := e.materialize()
			if e.opts.Strict {
				if err := Verify(s, e.g, e.model); err != nil {
					e.err = err
					e.finish("invalid")
					return nil, false
				}
			}
			e.stats.Emitted++

			return s, true
		}
		e.push(len(e.path))
	}

	e.finish("exhausted")

	return nil, false
}

// All adapts the enumerator to a range-over-func sequence. Breaking out of
// the loop leaves the enumerator resumable by a later Next or All.
func (e *Enumerator) All() iter.Seq[Setlist] {
	return func(yield func(Setlist) bool) {
		for {
			s, ok := e.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Collect drains the remaining setlists into a slice.
func (e *Enumerator) Collect() ([]Setlist, error) {
	var out []Setlist
	for s := range e.All() {
		out = append(out, s)
	}

	return out, e.err
}

// Count drains the remaining setlists and returns how many there were.
func (e *Enumerator) Count() (int, error) {
	c := 0
	for range e.All() {
		c++
	}

	return c, e.err
}

// Err returns the error that ended the enumeration, if any. Exhausting the
// search space, including finding nothing at all, is not an error.
func (e *Enumerator) Err() error { return e.err }

// Stats returns a snapshot of the work done so far.
func (e *Enumerator) Stats() Stats { return e.stats }

// push expands position pos and stacks a frame for it; a position without
// admissible candidates is a dead end and gets no frame.
func (e *Enumerator) push(pos int) {
	cands := e.candidates(pos)
	if len(cands) == 0 {
		e.stats.DeadEnds++
		return
	}
	e.stack = append(e.stack, frame{cands: cands})
}

// candidates fills the reusable buffer of depth pos with the admissible
// teams for that position, in the configured order.
func (e *Enumerator) candidates(pos int) []int {
	buf := e.bufs[pos][:0]
	prev := -1
	if pos > 0 {
		prev = e.path[pos-1]
	}

	if t := e.fixed[pos]; t >= 0 {
		if e.placed.Has(t) {
			return nil
		}
		if prev >= 0 && !e.g.CompatibleIdx(prev, t) {
			return nil
		}
		buf = append(buf, t)
		e.bufs[pos] = buf

		return buf
	}

	next := -1
	if pos+1 < e.n {
		next = e.fixed[pos+1]
	}
	for _, c := range e.order {
		if e.placed.Has(c) || e.pinAt[c] >= 0 {
			continue
		}
		if prev >= 0 && !e.g.CompatibleIdx(prev, c) {
			continue
		}
		if next >= 0 && !e.g.CompatibleIdx(c, next) {
			continue
		}
		buf = append(buf, c)
	}
	if e.opts.Ordering == OrderDynamic && len(buf) > 1 {
		sort.SliceStable(buf, func(a, b int) bool {
			return e.g.RemainingDegree(buf[a], e.placed) < e.g.RemainingDegree(buf[b], e.placed)
		})
	}
	e.bufs[pos] = buf

	return buf
}

func (e *Enumerator) place(c int) {
	e.path = append(e.path, c)
	e.placed.Add(c)
	e.stats.Placements++
}

func (e *Enumerator) unplace() {
	last := len(e.path) - 1
	e.placed.Remove(e.path[last])
	e.path = e.path[:last]
}

func (e *Enumerator) materialize() Setlist {
	s := make(Setlist, len(e.path))
	for i, v := range e.path {
		s[i] = e.g.ID(v)
	}

	return s
}

func (e *Enumerator) pinCount() int {
	if e.model == nil {
		return 0
	}

	return e.model.Count()
}

// finish marks the sequence as over and logs a summary once.
func (e *Enumerator) finish(reason string) {
	if e.done {
		return
	}
	e.done = true
	e.stack = nil
	e.log.Debug("setlist search finished",
		zap.String("reason", reason),
		zap.Int("emitted", e.stats.Emitted),
		zap.Int("placements", e.stats.Placements),
		zap.Int("dead_ends", e.stats.DeadEnds),
		zap.Error(e.err))
}
