// Package lca answers lowest-common-ancestor queries over graphs that are
// meant to be rooted trees or forests but may not be: cycles, diamond merges,
// several roots, and disconnected parts are all handled, either with a correct
// answer or with a safe "not found" that carries a Reason.
//
// The engine borrows any host graph through the Graph interface
// (Successors = parent → child, Predecessors = child → parent).
// *core.Graph satisfies Graph[string].
//
// Modes
//
// The caller picks the mode explicitly, it is never inferred:
//
//   - Rootless: reject queried nodes caught by the CyclePolicy, collect the
//     ancestors of node1 with hop costs, walk backward from node2, keep the
//     common nodes with no common node below them, and pick the one that wins
//     the TieBreak. No common node → ReasonDisconnected.
//   - Rooted(root): take shortest forward paths root → node1 and root → node2
//     (ReasonUnreachable if missing), reject when a reached node walks forward
//     back to root (ReasonCycleToRoot), and answer with the last node of their
//     longest common prefix.
//
// lca(x, x) is x unless x is rejected by the cycle policy (rootless) or is not
// reachable from the root (rooted).
//
// Usage
//
//	e, err := lca.New[string](g,
//	    lca.WithMetrics(lca.NewMetrics(prometheus.DefaultRegisterer)),
//	    lca.WithMaxVisits(100_000),
//	)
//	ans, err := e.LCA(ctx, "8", "4", lca.Rootless[string]())
//	if err == nil && ans.Found {
//	    fmt.Println(ans.Node) // 4
//	}
//
// Errors
//
// Graph shape never produces an error. Errors are ErrGraphNil and
// ErrOptionViolation from New, and ErrVisitBudgetExceeded or the context's
// error from a query.
//
// Observability
//
// Each LCA and Batch call opens an OpenTelemetry span (global tracer unless
// WithTracer), records into optional Prometheus Metrics, and logs at Debug
// level through log/slog.
package lca
