package lca

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvlca/bfs"
)

// Ancestors returns every node backward-reachable from n, n itself at cost 0,
// each recorded once with its minimal hop cost. Terminates on any graph.
func (e *Engine[N]) Ancestors(ctx context.Context, n N) (AncestorSet[N], error) {
	q := e.newQuery(ctx)
	res, err := q.walk(n, e.parents)
	if err != nil {
		return AncestorSet[N]{}, err
	}

	return AncestorSet[N]{costs: res.Depth}, nil
}

// PathToAncestor returns a shortest backward path n, parent, ..., ancestor.
// ok is false when ancestor is not backward-reachable from n.
func (e *Engine[N]) PathToAncestor(ctx context.Context, n, ancestor N) ([]N, bool, error) {
	q := e.newQuery(ctx)
	res, err := q.walk(n, e.parents)
	if err != nil {
		return nil, false, err
	}
	path, err := res.PathTo(ancestor)
	if errors.Is(err, bfs.ErrNoPath) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return path, true, nil
}
