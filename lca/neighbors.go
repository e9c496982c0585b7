package lca

import "cmp"

// Forward returns the children of n, each one unit-cost step away.
// Unknown nodes have none. Parallel edges are collapsed.
func (e *Engine[N]) Forward(n N) []PathRecord[N] {
	return steps(e.children(n))
}

// Backward returns the parents of n, each one unit-cost step away.
func (e *Engine[N]) Backward(n N) []PathRecord[N] {
	return steps(e.parents(n))
}

// children is the forward next-function handed to walks.
func (e *Engine[N]) children(n N) []N {
	return dedup(e.g.Successors(n))
}

// parents is the backward next-function handed to walks.
func (e *Engine[N]) parents(n N) []N {
	return dedup(e.g.Predecessors(n))
}

func steps[N cmp.Ordered](ns []N) []PathRecord[N] {
	if len(ns) == 0 {
		return nil
	}
	out := make([]PathRecord[N], len(ns))
	for i, n := range ns {
		out[i] = PathRecord[N]{Node: n, Cost: 1}
	}

	return out
}

// dedup drops repeated neighbors, keeping first occurrences in order.
// The input is never modified.
func dedup[N comparable](ns []N) []N {
	if len(ns) < 2 {
		return ns
	}
	seen := make(map[N]struct{}, len(ns))
	out := make([]N, 0, len(ns))
	for _, n := range ns {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out
}
