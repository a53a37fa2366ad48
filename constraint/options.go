package constraint

import "sort"

// WithStart pins team to the first slot. An empty id means "no start team".
func WithStart(id string) Option {
	return func(r *request) {
		if id != "" {
			r.pins = append(r.pins, Pin{Index: 0, Team: id, Source: SourceStart})
		}
	}
}

// WithEnd pins team to the last slot. An empty id means "no end team".
func WithEnd(id string) Option {
	return func(r *request) {
		if id != "" {
			r.end = append(r.end, id)
		}
	}
}

// WithPosition pins team to the 0-based slot idx.
func WithPosition(idx int, id string) Option {
	return func(r *request) {
		r.pins = append(r.pins, Pin{Index: idx, Team: id, Source: SourcePosition})
	}
}

// WithPositions pins every idx → team entry of m. Entries are applied in
// ascending index order so validation errors are reproducible.
func WithPositions(m map[int]string) Option {
	return func(r *request) {
		idx := make([]int, 0, len(m))
		for i := range m {
			idx = append(idx, i)
		}
		sort.Ints(idx)
		for _, i := range idx {
			r.pins = append(r.pins, Pin{Index: i, Team: m[i], Source: SourcePosition})
		}
	}
}
