package lca

import (
	"fmt"
	"log/slog"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName names the tracer used when WithTracer is not given.
const instrumentationName = "github.com/katalvlaran/lvlca/lca"

// Option configures an Engine. An invalid Option is recorded and surfaced
// as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the immutable configuration of an Engine.
type Options struct {
	// Logger receives Debug records for resolved and rejected queries.
	Logger *slog.Logger

	// Metrics, if non-nil, records every LCA call.
	Metrics *Metrics

	// Tracer starts one span per LCA and Batch call.
	Tracer trace.Tracer

	// CyclePolicy decides which cycles reject a rootless query.
	CyclePolicy CyclePolicy

	// TieBreak orders common ancestors in rootless mode.
	TieBreak TieBreak

	// MaxVisits, if > 0, bounds the nodes any single walk may expand.
	MaxVisits int

	// Concurrency bounds the goroutines Batch runs at once.
	Concurrency int

	err error
}

// DefaultOptions returns the slog default logger, the global otel tracer,
// no metrics, CycleThrough, TieBreakMinSum, no visit budget, and
// GOMAXPROCS batch workers.
func DefaultOptions() Options {
	return Options{
		Logger:      slog.Default(),
		Tracer:      otel.Tracer(instrumentationName),
		CyclePolicy: CycleThrough,
		TieBreak:    TieBreakMinSum,
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records queries into m. A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithTracer sets the tracer. A nil tracer has no effect.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithCyclePolicy selects CycleThrough or CycleReachable.
func WithCyclePolicy(p CyclePolicy) Option {
	return func(o *Options) {
		if p != CycleThrough && p != CycleReachable {
			o.err = fmt.Errorf("%w: unknown cycle policy %d", ErrOptionViolation, p)
			return
		}
		o.CyclePolicy = p
	}
}

// WithTieBreak selects TieBreakMinSum or TieBreakSecond.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		if t != TieBreakMinSum && t != TieBreakSecond {
			o.err = fmt.Errorf("%w: unknown tie-break %d", ErrOptionViolation, t)
			return
		}
		o.TieBreak = t
	}
}

// WithMaxVisits bounds the nodes any single walk may expand.
// n == 0 disables the budget, n < 0 is an ErrOptionViolation.
func WithMaxVisits(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisits cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisits = n
	}
}

// WithConcurrency bounds Batch parallelism; n must be at least 1.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Concurrency must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Concurrency = n
	}
}
