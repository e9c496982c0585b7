package lca

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Batch resolves queries concurrently, at most WithConcurrency at a time,
// over the same read-only graph. Results keep the order of queries and carry
// per-query errors. The returned error is ctx's error when ctx ended before
// the batch finished; queries that never ran report it too.
func (e *Engine[N]) Batch(ctx context.Context, queries []Query[N]) ([]Result[N], error) {
	ctx, span := e.opts.Tracer.Start(ctx, "lca.Engine.Batch",
		trace.WithAttributes(
			attribute.Int("lca.batch_size", len(queries)),
			attribute.Int("lca.concurrency", e.opts.Concurrency),
		),
	)
	defer span.End()

	results := make([]Result[N], len(queries))
	if len(queries) == 0 {
		span.SetStatus(codes.Ok, "")
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Concurrency)
	for i, qu := range queries {
		results[i].Query = qu
		if err := gctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			results[i].Answer, results[i].Err = e.LCA(gctx, qu.Node1, qu.Node2, qu.Mode)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, classifyError(err))
		return results, err
	}
	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, classifyError(err))
		return results, err
	}
	span.SetStatus(codes.Ok, "")

	return results, nil
}
