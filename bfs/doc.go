// Package bfs provides breadth-first search over any neighbor function,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Walk is generic over the vertex type: the caller supplies next(v) []v.
//     With a core.Graph, pass g.Successors to walk parent → child and
//     g.Predecessors to walk child → parent (ancestor discovery).
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Hooks: OnEnqueue (first discovery), OnVisit (may abort with an error),
//     FilterNeighbor (sees every edge, including edges into seen vertices).
//   - Honors MaxDepth (d>0) and MaxVisits (n>0) limits.
//
// Determinism
//
//	Neighbors are enqueued in the order next returns them. core.Graph returns
//	them sorted, so visit order and BFS-tree parents are reproducible.
//
// Complexity (V = reached vertices, E = edges among them)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.Walk("leaf", g.Predecessors,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxVisits(10_000),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//	path, err := res.PathTo("root")
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound  (BFS convenience on *core.Graph only)
//   - ErrNextNil             nil neighbor function.
//   - ErrOptionViolation     negative limits, or a hook typed for another vertex type.
//   - ErrVisitLimit          MaxVisits exceeded.
//   - ctx.Err()              cancellation, checked once per dequeue.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
