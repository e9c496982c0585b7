package lca

import (
	"cmp"
	"errors"
	"log/slog"

	"github.com/katalvlaran/lvlca/bfs"
	"github.com/katalvlaran/lvlca/dfs"
)

// errPruned ends a walk once its outcome is known.
var errPruned = errors.New("lca: pruned")

// candidate is a common ancestor with its hop costs from both queried nodes.
type candidate[N cmp.Ordered] struct {
	node   N
	d1, d2 int
}

// better reports whether a beats b under t.
func better[N cmp.Ordered](t TieBreak, a, b candidate[N]) bool {
	if t == TieBreakSecond {
		if a.d2 != b.d2 {
			return a.d2 < b.d2
		}
		if a.d1 != b.d1 {
			return a.d1 < b.d1
		}
		return cmp.Less(a.node, b.node)
	}

	if sa, sb := a.d1+a.d2, b.d1+b.d2; sa != sb {
		return sa < sb
	}
	if ma, mb := max(a.d1, a.d2), max(b.d1, b.d2); ma != mb {
		return ma < mb
	}
	return cmp.Less(a.node, b.node)
}

// rootless resolves a query by ancestor-set comparison.
func (q *query[N]) rootless(n1, n2 N) (Answer[N], error) {
	for i, n := range [2]N{n1, n2} {
		if i == 1 && n2 == n1 {
			break
		}
		bad, err := q.rejectedByCycle(n)
		if err != nil {
			return Answer[N]{}, err
		}
		if bad {
			return Answer[N]{Reason: ReasonCycle}, nil
		}
	}
	if n1 == n2 {
		return Answer[N]{Node: n1, Found: true}, nil
	}

	first, err := q.walk(n1, q.e.parents)
	if err != nil {
		return Answer[N]{}, err
	}
	second, err := q.walk(n2, q.e.parents)
	if err != nil {
		return Answer[N]{}, err
	}

	common := make(map[N]candidate[N])
	order := make([]N, 0, len(second.Order))
	for _, n := range second.Order {
		if d1, ok := first.Depth[n]; ok {
			common[n] = candidate[N]{node: n, d1: d1, d2: second.Depth[n]}
			order = append(order, n)
		}
	}
	if len(common) == 0 {
		q.e.debug(q.ctx, "lca query rejected",
			slog.Any("node1", n1),
			slog.Any("node2", n2),
			slog.String("reason", ReasonDisconnected.String()),
		)
		return Answer[N]{Reason: ReasonDisconnected}, nil
	}

	lowest, err := q.lowest(common, order)
	if err != nil {
		return Answer[N]{}, err
	}
	var (
		best  candidate[N]
		found bool
	)
	for _, n := range lowest {
		c := common[n]
		if !found || better(q.e.opts.TieBreak, c, best) {
			best, found = c, true
		}
	}

	return Answer[N]{Node: best.node, Found: true, Cost1: best.d1, Cost2: best.d2}, nil
}

// lowest keeps the common ancestors that have no common ancestor strictly below them.
// The common set is closed under ancestors, so these are the members of the sink
// components of the subgraph it induces; on a cycle the whole ring stays.
func (q *query[N]) lowest(common map[N]candidate[N], order []N) ([]N, error) {
	below := func(n N) []N {
		var out []N
		for _, c := range q.e.children(n) {
			if _, ok := common[c]; ok {
				out = append(out, c)
			}
		}
		return out
	}
	comps, err := dfs.Components(order, below, q.dfsOpts()...)
	if err = q.budget(err); err != nil {
		return nil, err
	}

	comp := make(map[N]int, len(common))
	for i, members := range comps {
		for _, n := range members {
			comp[n] = i
		}
	}
	sink := make([]bool, len(comps))
	for i := range sink {
		sink[i] = true
	}
	for _, n := range order {
		for _, c := range below(n) {
			if comp[c] != comp[n] {
				sink[comp[n]] = false
				break
			}
		}
	}

	out := make([]N, 0, len(order))
	for _, n := range order {
		if sink[comp[n]] {
			out = append(out, n)
		}
	}

	return out, nil
}

// rooted resolves a query by comparing shortest forward paths from root.
func (q *query[N]) rooted(root, n1, n2 N) (Answer[N], error) {
	tree, err := q.walk(root, q.e.children)
	if err != nil {
		return Answer[N]{}, err
	}

	// a node behind root is unreachable, not on a cycle through it
	if n1 != n2 {
		for _, n := range [2]N{n1, n2} {
			if !tree.Reached(n) {
				continue
			}
			back, err := q.returnsTo(n, root)
			if err != nil {
				return Answer[N]{}, err
			}
			if back {
				q.e.debug(q.ctx, "lca query rejected",
					slog.Any("node", n),
					slog.Any("root", root),
					slog.String("reason", ReasonCycleToRoot.String()),
				)
				return Answer[N]{Reason: ReasonCycleToRoot}, nil
			}
		}
	}

	p1, err1 := tree.PathTo(n1)
	p2, err2 := tree.PathTo(n2)
	if err1 != nil || err2 != nil {
		q.e.debug(q.ctx, "lca query rejected",
			slog.Any("node1", n1),
			slog.Any("node2", n2),
			slog.Any("root", root),
			slog.String("reason", ReasonUnreachable.String()),
		)
		return Answer[N]{Reason: ReasonUnreachable}, nil
	}

	// both paths start at root, so the common prefix is never empty
	i := 1
	for i < len(p1) && i < len(p2) && p1[i] == p2[i] {
		i++
	}

	return Answer[N]{Node: p1[i-1], Found: true, Cost1: len(p1) - i, Cost2: len(p2) - i}, nil
}

// returnsTo reports whether a forward walk of one or more edges from n reaches root.
func (q *query[N]) returnsTo(n, root N) (bool, error) {
	var hit bool
	_, err := q.walk(n, q.e.children,
		bfs.WithFilterNeighbor(func(_, nbr N) bool {
			if nbr == root {
				hit = true
			}
			return true
		}),
		bfs.WithOnVisit(func(N, int) error {
			if hit {
				return errPruned
			}
			return nil
		}),
	)
	if err != nil && !errors.Is(err, errPruned) {
		return false, err
	}

	return hit, nil
}
