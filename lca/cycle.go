package lca

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/lvlca/dfs"
)

// HasCycleThrough reports whether n lies on a cycle of parent edges.
// A self-loop counts. O(V+E) time, O(V) memory.
func (e *Engine[N]) HasCycleThrough(ctx context.Context, n N) (bool, error) {
	q := e.newQuery(ctx)

	return q.cycleThrough(n)
}

// FindCycle returns a cycle among the ancestors of n as a closed sequence
// [v0, parent of v0, ..., v0], or nil when the ancestors form a partial order.
func (e *Engine[N]) FindCycle(ctx context.Context, n N) ([]N, error) {
	q := e.newQuery(ctx)
	cycle, err := dfs.FindCycle(n, e.parents, q.dfsOpts()...)

	return cycle, q.budget(err)
}

func (q *query[N]) cycleThrough(n N) (bool, error) {
	on, err := dfs.CycleThrough(n, q.e.parents, q.dfsOpts()...)

	return on, q.budget(err)
}

// rejectedByCycle applies the engine's CyclePolicy to one queried node.
func (q *query[N]) rejectedByCycle(n N) (bool, error) {
	var (
		bad bool
		err error
	)
	switch q.e.opts.CyclePolicy {
	case CycleReachable:
		bad, err = dfs.CycleReachable(n, q.e.parents, q.dfsOpts()...)
		err = q.budget(err)
	default:
		bad, err = q.cycleThrough(n)
	}
	if err != nil || !bad {
		return false, err
	}

	q.e.debug(q.ctx, "lca query rejected",
		slog.Any("node", n),
		slog.String("reason", ReasonCycle.String()),
		slog.String("policy", q.e.opts.CyclePolicy.String()),
	)

	return true, nil
}
