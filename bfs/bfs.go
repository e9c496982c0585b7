package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlca/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[N comparable] struct {
	id    N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	next   func(N) []N
	opts   Options
	hooks  hooks[N]
	ctx    context.Context
	queue  []queueItem[N]
	head   int
	visits int
	res    *Result[N]
}

// Walk runs breadth-first search from start, expanding each vertex with next.
// Passing a core.Graph's Successors walks edges forward, Predecessors walks
// them backward. Returns ErrNextNil, ErrOptionViolation for bad options,
// ErrVisitLimit, the context error on cancellation, or a wrapped OnVisit error.
// The partial Result is returned alongside any error raised mid-walk.
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
		ctx:   o.Ctx,
		queue: make([]queueItem[N], 0, 16),
		res: &Result[N]{
			Start:  start,
			Order:  make([]N, 0, 16),
			Depth:  make(map[N]int, 16),
			Parent: make(map[N]N, 16),
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// BFS walks g forward (along Successors) from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// otherwise whatever Walk returns.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result[string], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	return Walk(startID, g.Successors, opts...)
}

// enqueue marks id discovered at depth d, calls OnEnqueue, and adds it to the queue.
func (w *walker[N]) enqueue(id N, d int) {
	w.res.Depth[id] = d
	w.hooks.onEnqueue(id, d)
	w.queue = append(w.queue, queueItem[N]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		w.visits++
		if w.opts.MaxVisits > 0 && w.visits > w.opts.MaxVisits {
			return fmt.Errorf("%w: %d", ErrVisitLimit, w.opts.MaxVisits)
		}
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.hooks.onVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) {
	nextDepth := item.depth + 1
	for _, nbr := range w.next(item.id) {
		if !w.hooks.filter(item.id, nbr) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if _, seen := w.res.Depth[nbr]; !seen {
			w.res.Parent[nbr] = item.id
			w.enqueue(nbr, nextDepth)
		}
	}
}
