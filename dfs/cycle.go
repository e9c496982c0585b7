package dfs

// CycleThrough reports whether start lies on a cycle of next-edges,
// i.e. some walk of one or more edges from start returns to start.
// Start stays Gray for the whole walk, so any edge into it is a back edge.
// The walk stops at the first such edge.
func CycleThrough[N comparable](start N, next func(N) []N, opts ...Option) (bool, error) {
	var found bool
	opts = append(opts[:len(opts):len(opts)], WithOnBackEdge(func(_, to N) error {
		if to == start {
			found = true
			return ErrStopWalk
		}
		return nil
	}))
	if _, err := Walk(start, next, opts...); err != nil {
		return false, err
	}

	return found, nil
}

// CycleReachable reports whether any cycle is reachable from start.
// The walk stops at the first back edge.
func CycleReachable[N comparable](start N, next func(N) []N, opts ...Option) (bool, error) {
	cycle, err := FindCycle(start, next, opts...)
	if err != nil {
		return false, err
	}

	return cycle != nil, nil
}

// FindCycle returns the first cycle reachable from start as a closed sequence
// [v0, v1, ..., v0] following next-edges, or nil if the reachable part is acyclic.
// v0 is the Gray vertex the closing back edge lands on.
func FindCycle[N comparable](start N, next func(N) []N, opts ...Option) ([]N, error) {
	var from, to N
	var hit bool
	opts = append(opts[:len(opts):len(opts)], WithOnBackEdge(func(f, t N) error {
		from, to, hit = f, t, true
		return ErrStopWalk
	}))
	res, err := Walk(start, next, opts...)
	if err != nil {
		return nil, err
	}
	if !hit {
		return nil, nil
	}

	// climb the DFS tree from the back edge's source up to its Gray target
	rev := []N{to, from}
	for cur := from; cur != to; {
		cur = res.Parent[cur]
		rev = append(rev, cur)
	}
	cycle := make([]N, len(rev))
	for i, v := range rev {
		cycle[len(rev)-1-i] = v
	}

	return cycle, nil
}
