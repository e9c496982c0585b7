package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Color is the visitation state of a vertex during one walk.
type Color uint8

const (
	White Color = iota // White: the vertex has not been visited yet.
	Gray               // Gray: the vertex is on the current DFS stack.
	Black              // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrNextNil is returned when Walk receives a nil neighbor function.
	ErrNextNil = errors.New("dfs: neighbor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrVisitLimit is returned when a walk discovers more vertices than MaxVisits allows.
	ErrVisitLimit = errors.New("dfs: visit limit exceeded")

	// ErrStopWalk may be returned by any hook to end the walk early without error.
	ErrStopWalk = errors.New("dfs: stop walk")
)

// Option configures optional behavior of a walk.
// Hooks are typed by the vertex type of the walk; a mismatch surfaces
// as ErrOptionViolation when the walk starts.
type Option func(*Options)

// Options holds configurable parameters for a walk.
type Options struct {
	// Ctx allows cancellation or timeouts; checked once per stack step.
	Ctx context.Context

	// MaxVisits, if > 0, aborts the walk with ErrVisitLimit once more
	// than MaxVisits vertices have been discovered.
	MaxVisits int

	onVisit    any // func(N) error, pre-order
	onExit     any // func(N) error, post-order
	onBackEdge any // func(from, to N) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no hooks or limits.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the Context for the walk. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxVisits bounds the number of discovered vertices.
// n == 0 disables the bound, n < 0 is an ErrOptionViolation.
func WithMaxVisits(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisits cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisits = n
	}
}

// WithOnVisit installs fn as a pre-order hook, called when a vertex turns Gray.
func WithOnVisit[N comparable](fn func(id N) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithOnExit installs fn as a post-order hook, called when a vertex turns Black.
func WithOnExit[N comparable](fn func(id N) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onExit = fn
		}
	}
}

// WithOnBackEdge installs fn, called for every edge from→to whose target is Gray.
// Each such edge closes a cycle; a self-loop is a back edge with from == to.
func WithOnBackEdge[N comparable](fn func(from, to N) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onBackEdge = fn
		}
	}
}

// hooks is the typed view of Options for one walk; nil means absent.
type hooks[N comparable] struct {
	onVisit    func(N) error
	onExit     func(N) error
	onBackEdge func(N, N) error
}

// resolveHooks asserts the stored hooks against N.
func resolveHooks[N comparable](o Options) (hooks[N], error) {
	var (
		h    hooks[N]
		zero N
		ok   bool
	)
	if o.onVisit != nil {
		if h.onVisit, ok = o.onVisit.(func(N) error); !ok {
			return h, fmt.Errorf("%w: OnVisit hook does not take %T", ErrOptionViolation, zero)
		}
	}
	if o.onExit != nil {
		if h.onExit, ok = o.onExit.(func(N) error); !ok {
			return h, fmt.Errorf("%w: OnExit hook does not take %T", ErrOptionViolation, zero)
		}
	}
	if o.onBackEdge != nil {
		if h.onBackEdge, ok = o.onBackEdge.(func(N, N) error); !ok {
			return h, fmt.Errorf("%w: OnBackEdge hook does not take %T", ErrOptionViolation, zero)
		}
	}

	return h, nil
}

// Result captures the outcome of a depth-first walk.
type Result[N comparable] struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []N

	// Depth maps each discovered vertex to its depth in the DFS tree.
	Depth map[N]int

	// Parent maps each vertex to the vertex from which it was first discovered.
	// The start vertex does not appear in this map.
	Parent map[N]N

	// BackEdges counts edges that landed on a Gray vertex.
	BackEdges int

	colors map[N]Color
}

// Color returns the state of id when the walk ended; undiscovered vertices are White.
func (r *Result[N]) Color(id N) Color {
	return r.colors[id]
}
