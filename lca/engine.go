package lca

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/lvlca/bfs"
	"github.com/katalvlaran/lvlca/dfs"
)

// Engine answers lowest-common-ancestor queries over a borrowed, read-only Graph.
// It holds only configuration, so one Engine may serve concurrent calls
// whenever the Graph permits concurrent reads.
type Engine[N cmp.Ordered] struct {
	g    Graph[N]
	opts Options
}

// New builds an Engine over g. Returns ErrGraphNil for a nil g and
// ErrOptionViolation for an invalid Option.
func New[N cmp.Ordered](g Graph[N], opts ...Option) (*Engine[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Engine[N]{g: g, opts: o}, nil
}

// Find is the one-shot form of Engine.LCA: it returns the answer node and
// whether one was found.
func Find[N cmp.Ordered](g Graph[N], node1, node2 N, mode Mode[N], opts ...Option) (N, bool, error) {
	var zero N
	e, err := New(g, opts...)
	if err != nil {
		return zero, false, err
	}
	ans, err := e.LCA(context.Background(), node1, node2, mode)
	if err != nil {
		return zero, false, err
	}

	return ans.Node, ans.Found, nil
}

// LCA resolves the lowest common ancestor of node1 and node2 under mode.
// Cycles, disconnection, and unreachable nodes yield an Answer with
// Found == false and a Reason. Errors are reserved for the context and
// the visit budget.
func (e *Engine[N]) LCA(ctx context.Context, node1, node2 N, mode Mode[N]) (ans Answer[N], err error) {
	start := time.Now()
	q := &query[N]{e: e}

	ctx, span := e.opts.Tracer.Start(ctx, "lca.Engine.LCA")
	defer span.End()
	q.ctx = ctx

	defer func() {
		e.opts.Metrics.observe(mode.String(), ans.Reason, err, time.Since(start), q.visited)
	}()

	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("lca.mode", mode.String()),
			attribute.String("lca.node1", fmt.Sprint(node1)),
			attribute.String("lca.node2", fmt.Sprint(node2)),
		)
		if root, ok := mode.Root(); ok {
			span.SetAttributes(attribute.String("lca.root", fmt.Sprint(root)))
		}
	}

	if err = ctx.Err(); err == nil {
		if root, ok := mode.Root(); ok {
			ans, err = q.rooted(root, node1, node2)
		} else {
			ans, err = q.rootless(node1, node2)
		}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, classifyError(err))
		return Answer[N]{}, err
	}

	if span.IsRecording() {
		span.SetAttributes(
			attribute.Bool("lca.found", ans.Found),
			attribute.String("lca.reason", ans.Reason.String()),
			attribute.Int("lca.cost1", ans.Cost1),
			attribute.Int("lca.cost2", ans.Cost2),
			attribute.Int("lca.visited", q.visited),
		)
		if ans.Found {
			span.SetAttributes(attribute.String("lca.node", fmt.Sprint(ans.Node)))
		}
	}
	span.SetStatus(codes.Ok, "")

	e.debug(ctx, "lca resolved",
		slog.String("mode", mode.String()),
		slog.Any("node1", node1),
		slog.Any("node2", node2),
		slog.Bool("found", ans.Found),
		slog.Any("lca", ans.Node),
		slog.String("reason", ans.Reason.String()),
		slog.Int("cost1", ans.Cost1),
		slog.Int("cost2", ans.Cost2),
		slog.Int("visited", q.visited),
	)

	return ans, nil
}

// debug logs at Debug level when the logger has it enabled.
func (e *Engine[N]) debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	if !e.opts.Logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	e.opts.Logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// query carries the state of one LCA call.
type query[N cmp.Ordered] struct {
	e       *Engine[N]
	ctx     context.Context
	visited int
}

// newQuery starts a query outside LCA, for the standalone Engine operations.
func (e *Engine[N]) newQuery(ctx context.Context) *query[N] {
	return &query[N]{e: e, ctx: ctx}
}

// walk runs a breadth-first walk with the query's context and budget.
func (q *query[N]) walk(start N, next func(N) []N, opts ...bfs.Option) (*bfs.Result[N], error) {
	base := []bfs.Option{
		bfs.WithContext(q.ctx),
		bfs.WithMaxVisits(q.e.opts.MaxVisits),
	}
	res, err := bfs.Walk(start, next, append(base, opts...)...)
	if res != nil {
		q.visited += len(res.Order)
	}

	return res, q.budget(err)
}

// dfsOpts returns the depth-first options shared by the query's walks.
func (q *query[N]) dfsOpts() []dfs.Option {
	return []dfs.Option{
		dfs.WithContext(q.ctx),
		dfs.WithMaxVisits(q.e.opts.MaxVisits),
		dfs.WithOnVisit(func(N) error {
			q.visited++
			return nil
		}),
	}
}

// budget maps walk visit limits onto ErrVisitBudgetExceeded.
func (q *query[N]) budget(err error) error {
	if errors.Is(err, bfs.ErrVisitLimit) || errors.Is(err, dfs.ErrVisitLimit) {
		return fmt.Errorf("%w: more than %d nodes in one walk", ErrVisitBudgetExceeded, q.e.opts.MaxVisits)
	}

	return err
}
