package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent from a core.Graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNextNil is returned when Walk receives a nil neighbor function.
	ErrNextNil = errors.New("bfs: neighbor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrVisitLimit is returned when a walk dequeues more vertices than MaxVisits allows.
	ErrVisitLimit = errors.New("bfs: visit limit exceeded")

	// ErrNoPath is returned by PathTo for a vertex the walk never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures a walk via functional arguments.
// Hooks are typed by the vertex type of the walk they are passed to;
// a hook whose vertex type does not match is recorded and surfaced
// as ErrOptionViolation when the walk starts, like any other bad option.
type Option func(*Options)

// Options holds parameters and callbacks that customize a walk.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per dequeue.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxVisits, if > 0, aborts the walk with ErrVisitLimit once more
	// than MaxVisits vertices have been dequeued.
	MaxVisits int

	// onEnqueue, onVisit, filter hold func values typed by the walk's vertex type.
	onEnqueue any
	onVisit   any
	filter    any

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context,
// no depth or visit limit, and no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxVisits bounds the number of dequeued vertices.
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

// WithOnEnqueue registers a callback to run when a vertex is first discovered.
func WithOnEnqueue[N comparable](fn func(id N, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit[N comparable](fn func(id N, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithFilterNeighbor skips the edge curr→neighbor when fn returns false.
// It is called for every edge, including edges into already seen vertices.
func WithFilterNeighbor[N comparable](fn func(curr, neighbor N) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// hooks is the typed view of Options for one walk.
type hooks[N comparable] struct {
	onEnqueue func(N, int)
	onVisit   func(N, int) error
	filter    func(N, N) bool
}

// resolveHooks asserts the stored hooks against N, defaulting absent ones to no-ops.
func resolveHooks[N comparable](o Options) (hooks[N], error) {
	h := hooks[N]{
		onEnqueue: func(N, int) {},
		onVisit:   func(N, int) error { return nil },
		filter:    func(_, _ N) bool { return true },
	}
	var zero N
	if o.onEnqueue != nil {
		fn, ok := o.onEnqueue.(func(N, int))
		if !ok {
			return h, fmt.Errorf("%w: OnEnqueue hook does not take %T", ErrOptionViolation, zero)
		}
		h.onEnqueue = fn
	}
	if o.onVisit != nil {
		fn, ok := o.onVisit.(func(N, int) error)
		if !ok {
			return h, fmt.Errorf("%w: OnVisit hook does not take %T", ErrOptionViolation, zero)
		}
		h.onVisit = fn
	}
	if o.filter != nil {
		fn, ok := o.filter.(func(N, N) bool)
		if !ok {
			return h, fmt.Errorf("%w: FilterNeighbor hook does not take %T", ErrOptionViolation, zero)
		}
		h.filter = fn
	}

	return h, nil
}

// Result holds the outcome of a walk:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex to its distance (in edges) from the start.
//   - Parent: map from vertex to its predecessor in the BFS tree; the start has none.
type Result[N comparable] struct {
	Start  N
	Order  []N
	Depth  map[N]int
	Parent map[N]N
}

// Reached reports whether id was discovered by the walk.
func (r *Result[N]) Reached(id N) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the shortest path from the start vertex to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	// fill backwards; Depth gives the exact length
	path := make([]N, d+1)
	cur := dest
	for i := d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
