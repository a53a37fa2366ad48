package search

import (
	"context"

	"go.uber.org/zap"
)

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrdering selects the candidate ordering policy.
func WithOrdering(ord Ordering) Option {
	return func(o *Options) { o.Ordering = ord }
}

// WithLimit stops after n setlists; 0 disables the limit.
func WithLimit(n int) Option {
	return func(o *Options) { o.Limit = n }
}

// WithStrictValidation re-checks every emitted setlist with Verify and stops
// the enumeration with ErrInvalidSetlist on the first defect.
func WithStrictValidation() Option {
	return func(o *Options) { o.Strict = true }
}

// WithLogger routes debug events to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
