package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvlca/bfs"
	"github.com/katalvlaran/lvlca/core"
)

// ExampleWalk climbs from a leaf to every ancestor, nearest first.
func ExampleWalk() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("animal", "mammal", 0)
	_, _ = g.AddEdge("animal", "bird", 0)
	_, _ = g.AddEdge("mammal", "bat", 0)
	_, _ = g.AddEdge("flyer", "bat", 0)

	res, err := bfs.Walk("bat", g.Predecessors)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range res.Order {
		fmt.Println(id, res.Depth[id])
	}
	// Output:
	// bat 0
	// flyer 1
	// mammal 1
	// animal 2
}

// ExampleResult_PathTo finds the fewest-hop route between two vertices.
func ExampleResult_PathTo() {
	g := core.NewGraph()
	// Route1: A–B–C–D–K (4 hops)
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "D", 0)
	_, _ = g.AddEdge("D", "K", 0)
	// Route2: A–E–F–K (3 hops)
	_, _ = g.AddEdge("A", "E", 0)
	_, _ = g.AddEdge("E", "F", 0)
	_, _ = g.AddEdge("F", "K", 0)

	res, _ := bfs.BFS(g, "A")
	path, _ := res.PathTo("K")
	fmt.Println(path)
	// Output:
	// [A E F K]
}
