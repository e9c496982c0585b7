// Package lvlca answers lowest-common-ancestor queries over hierarchies that
// are supposed to be rooted trees or forests but may not be.
//
// Packages:
//
//	core/     thread-safe directed multigraph with string vertex IDs (the reference host graph)
//	bfs/      generic breadth-first walk: unit-cost shortest paths, parent links, hooks
//	dfs/      generic depth-first walk with White/Gray/Black marking and cycle finding
//	lca/      the Engine: rootless and rooted LCA, ancestor sets, batches, metrics, tracing
//	builder/  deterministic hierarchy generators (trees, chains, rings, random DAGs)
//	fixture/  YAML graph fixtures with expected answers, used by the test suites
//	examples/ runnable scenarios
//
// Quick start:
//
//	g := core.NewGraph(core.WithDirected(true))
//	_, _ = g.AddEdge("animal", "mammal", 0)
//	_, _ = g.AddEdge("animal", "bird", 0)
//	_, _ = g.AddEdge("mammal", "bat", 0)
//	node, ok, err := lca.Find[string](g, "bat", "bird", lca.Rootless[string]())
//	// node == "animal", ok == true
//
// Malformed shapes never panic and never return errors: the answer is
// "not found" together with a lca.Reason.
package lvlca
