// Package logging builds the zap loggers used by showorder.
//
// Library packages accept a *zap.Logger through their options and default to
// Nop, so they stay silent unless the caller opts in. The CLI builds its
// logger here: JSON production output at Info, or Debug when requested;
// development mode switches to the human-readable console encoder.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction.
type Options struct {
	// Debug lowers the level to Debug.
	Debug bool

	// Development selects the console encoder with caller and stack traces.
	Development bool

	// OutputPaths overrides the sinks; defaults to stderr.
	OutputPaths []string
}

// New returns a logger configured by o.
func New(o Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if o.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if o.Debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if len(o.OutputPaths) > 0 {
		cfg.OutputPaths = o.OutputPaths
	}
	cfg.DisableStacktrace = !o.Development

	return cfg.Build()
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger { return zap.NewNop() }
