// Package builder generates deterministic hierarchy fixtures on top of core.Graph:
// chains, stars, complete k-ary trees, directed rings, and seeded random trees
// and DAGs with extra parents (diamond merges).
//
// Every constructor adds parent → child edges to a directed graph, numbering
// vertices 0..n-1 through the configured ID scheme; vertex 0 is the root of
// every hierarchy shape. Constructors share that ID space, so composing them
// in one BuildGraph call overlays shapes on the same vertices, e.g. a Tree plus
// a Cycle(3) gives a tree whose top three vertices form a cycle.
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithDirected(true)},
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.RandomDAG(100, 2),
//	)
//
// Option constructors panic on meaningless inputs (nil ID scheme, nil RNG).
// Constructors never panic; they return the sentinels of errors.go wrapped
// with the constructor name.
package builder
