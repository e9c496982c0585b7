// Package dfs implements an iterative depth-first walk with White/Gray/Black
// marking over any neighbor function, plus cycle helpers built on back edges.
//
// What:
//
//   - Walk(start, next, opts...): explores as far as possible along each branch
//     before backtracking, using an explicit stack (deep chains cannot overflow
//     the goroutine stack) and one color map for the whole walk.
//   - DFS(g, startID, opts...): Walk over a core.Graph along Successors.
//   - Hooks: OnVisit (pre-order, Gray), OnExit (post-order, Black),
//     OnBackEdge (edge into a Gray vertex, i.e. a closed cycle).
//   - CycleThrough: does start itself lie on a cycle?
//   - CycleReachable / FindCycle: is any cycle reachable from start, and which?
//   - Components: strongly connected components reachable from a set of starts
//     (Tarjan), emitted sinks first.
//
// Walking g.Predecessors instead of g.Successors answers the same questions
// for the ancestor direction.
//
// Complexity:
//
//   - Time:   O(V + E) for V reached vertices and E edges among them.
//   - Memory: O(V) for the stack, color, depth and parent maps.
//
// Errors:
//
//   - ErrGraphNil, ErrStartVertexNotFound  (DFS convenience only)
//   - ErrNextNil            nil neighbor function.
//   - ErrOptionViolation    negative MaxVisits, or a hook typed for another vertex type.
//   - ErrVisitLimit         MaxVisits exceeded.
//   - ctx.Err()             cancellation, checked once per stack step.
//   - any error returned by a hook, wrapped. ErrStopWalk ends the walk cleanly.
package dfs
