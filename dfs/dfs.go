package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlca/core"
)

// frame is one entry of the explicit DFS stack: a Gray vertex and
// the cursor into its neighbor list.
type frame[N comparable] struct {
	id   N
	nbrs []N
	next int
}

// walker encapsulates state during one walk.
type walker[N comparable] struct {
	next   func(N) []N
	opts   Options
	hooks  hooks[N]
	stack  []frame[N]
	visits int
	res    *Result[N]
}

// Walk performs an iterative depth-first walk from start, expanding each vertex with next.
// One color map is shared by the whole walk, so every vertex is discovered at most once
// and the walk terminates on cyclic input. Returns the Result, or an error if aborted by
// the context, the visit limit, or a hook. A hook returning ErrStopWalk ends the walk
// with a nil error.
func Walk[N comparable](start N, next func(N) []N, opts ...Option) (*Result[N], error) {
	if next == nil {
		return nil, ErrNextNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	h, err := resolveHooks[N](o)
	if err != nil {
		return nil, err
	}

	w := &walker[N]{
		next:  next,
		opts:  o,
		hooks: h,
		stack: make([]frame[N], 0, 16),
		res: &Result[N]{
			Order:  make([]N, 0, 16),
			Depth:  make(map[N]int, 16),
			Parent: make(map[N]N, 16),
			colors: make(map[N]Color, 16),
		},
	}

	if err = w.run(start); err != nil && !errors.Is(err, ErrStopWalk) {
		return w.res, err
	}

	return w.res, nil
}

// DFS walks g forward (along Successors) from startID.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result[string], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	return Walk(startID, g.Successors, opts...)
}

// run drives the explicit stack until it empties or something aborts.
func (w *walker[N]) run(start N) error {
	if err := w.discover(start, 0); err != nil {
		return err
	}
	ctx := w.opts.Ctx
	for len(w.stack) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.nbrs) {
			id := top.id
			w.stack = w.stack[:len(w.stack)-1]
			if err := w.finish(id); err != nil {
				return err
			}
			continue
		}

		nbr := top.nbrs[top.next]
		top.next++
		switch w.res.colors[nbr] {
		case White:
			w.res.Parent[nbr] = top.id
			if err := w.discover(nbr, len(w.stack)); err != nil {
				return err
			}
		case Gray:
			w.res.BackEdges++
			if w.hooks.onBackEdge != nil {
				if err := w.hooks.onBackEdge(top.id, nbr); err != nil {
					return fmt.Errorf("dfs: OnBackEdge hook for %v→%v: %w", top.id, nbr, err)
				}
			}
		}
	}

	return nil
}

// discover turns id Gray, runs the pre-order hook, and pushes its frame.
func (w *walker[N]) discover(id N, depth int) error {
	w.visits++
	if w.opts.MaxVisits > 0 && w.visits > w.opts.MaxVisits {
		return fmt.Errorf("%w: %d", ErrVisitLimit, w.opts.MaxVisits)
	}
	w.res.colors[id] = Gray
	w.res.Depth[id] = depth
	if w.hooks.onVisit != nil {
		if err := w.hooks.onVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", id, err)
		}
	}
	w.stack = append(w.stack, frame[N]{id: id, nbrs: w.next(id)})

	return nil
}

// finish turns id Black, runs the post-order hook, and records finish order.
func (w *walker[N]) finish(id N) error {
	w.res.colors[id] = Black
	if w.hooks.onExit != nil {
		if err := w.hooks.onExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
