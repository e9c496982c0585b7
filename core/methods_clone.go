// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries over nextEdgeID so textual edge IDs stay monotonic on the copy.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: configuration, vertices, edges and both
// adjacency indexes. Vertex Metadata maps are shared, not copied.
//
// Callers that must not observe concurrent mutation during a long query can run
// the query on a Clone instead of the live graph.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := &Graph{
		directed:      g.directed,
		weighted:      g.weighted,
		allowMulti:    g.allowMulti,
		allowLoops:    g.allowLoops,
		allowMixed:    g.allowMixed,
		vertices:      make(map[string]*Vertex, len(g.vertices)),
		edges:         make(map[string]*Edge, len(g.edges)),
		adjacencyList: make(map[string]map[string]map[string]struct{}, len(g.vertices)),
		incoming:      make(map[string]map[string]map[string]struct{}, len(g.vertices)),
	}
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
		clone.incoming[id] = make(map[string]map[string]struct{})
	}
	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		clone.edges[eid] = ne
		linkEdge(clone, ne)
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// Edge IDs resume from "e1".
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	g.incoming = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
}
