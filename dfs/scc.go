package dfs

import (
	"errors"
	"fmt"
)

// tarjan holds the index bookkeeping of one strongly connected components pass.
type tarjan[N comparable] struct {
	next    func(N) []N
	opts    Options
	hooks   hooks[N]
	frames  []frame[N]
	index   map[N]int
	low     map[N]int
	onStack map[N]bool
	stack   []N
	counter int
	comps   [][]N
}

// Components returns the strongly connected components reachable from starts
// along next. It is Tarjan's algorithm driven by an explicit stack, so deep
// chains do not grow the goroutine stack.
//
// Components come out in reverse topological order of the condensation: no
// component has an edge into one listed after it. Members keep the order in
// which they left the Tarjan stack. OnVisit and OnExit hooks run as in Walk;
// OnBackEdge is ignored.
func Components[N comparable](starts []N, next func(N) []N, opts ...Option) ([][]N, error) {
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

	t := &tarjan[N]{
		next:    next,
		opts:    o,
		hooks:   h,
		index:   make(map[N]int, 16),
		low:     make(map[N]int, 16),
		onStack: make(map[N]bool, 16),
	}
	for _, s := range starts {
		if _, seen := t.index[s]; seen {
			continue
		}
		if err = t.run(s); err != nil {
			if errors.Is(err, ErrStopWalk) {
				return t.comps, nil
			}
			return t.comps, err
		}
	}

	return t.comps, nil
}

func (t *tarjan[N]) run(start N) error {
	if err := t.discover(start); err != nil {
		return err
	}
	ctx := t.opts.Ctx
	for len(t.frames) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		top := &t.frames[len(t.frames)-1]
		if top.next < len(top.nbrs) {
			w := top.nbrs[top.next]
			top.next++
			if _, seen := t.index[w]; !seen {
				if err := t.discover(w); err != nil {
					return err
				}
			} else if t.onStack[w] {
				t.low[top.id] = min(t.low[top.id], t.index[w])
			}
			continue
		}

		v := top.id
		t.frames = t.frames[:len(t.frames)-1]
		if len(t.frames) > 0 {
			p := t.frames[len(t.frames)-1].id
			t.low[p] = min(t.low[p], t.low[v])
		}
		if t.hooks.onExit != nil {
			if err := t.hooks.onExit(v); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
			}
		}
		if t.low[v] == t.index[v] {
			t.pop(v)
		}
	}

	return nil
}

// discover assigns id its index and pushes it on both stacks.
func (t *tarjan[N]) discover(id N) error {
	t.counter++
	if t.opts.MaxVisits > 0 && t.counter > t.opts.MaxVisits {
		return fmt.Errorf("%w: %d", ErrVisitLimit, t.opts.MaxVisits)
	}
	t.index[id] = t.counter
	t.low[id] = t.counter
	t.stack = append(t.stack, id)
	t.onStack[id] = true
	if t.hooks.onVisit != nil {
		if err := t.hooks.onVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", id, err)
		}
	}
	t.frames = append(t.frames, frame[N]{id: id, nbrs: t.next(id)})

	return nil
}

// pop closes the component rooted at v.
func (t *tarjan[N]) pop(v N) {
	var comp []N
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[w] = false
		comp = append(comp, w)
		if w == v {
			break
		}
	}
	t.comps = append(t.comps, comp)
}
