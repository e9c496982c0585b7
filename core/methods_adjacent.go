// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Successors, Predecessors) and index helpers.
// Determinism:
//   - Neighbors() sorts by edge creation order.
//   - NeighborIDs(), Successors(), Predecessors() return unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks (in that order).
//   - linkEdge/unlinkEdge are called only under the muEdgeAdj write lock.

package core

import "sort"

// Neighbors returns every edge that can be traversed out of id: directed edges with
// e.From == id and every incident undirected edge. Self-loops appear once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			if e := g.edges[eid]; !e.IsNil() {
				out = append(out, e)
			}
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs reachable from id by one edge,
// sorted lexicographically ascending. Errors are those of Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	return g.Successors(id), nil
}

// Successors returns the children of id (forward neighbors), unique and sorted.
// Unknown or empty IDs yield nil: an unknown vertex simply has no neighbors.
//
// Complexity: O(d log d).
func (g *Graph) Successors(id string) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedKeys(g.adjacencyList[id])
}

// Predecessors returns the parents of id (backward neighbors), unique and sorted.
// Unknown or empty IDs yield nil.
//
// Complexity: O(d log d) via the reverse index.
func (g *Graph) Predecessors(id string) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedKeys(g.incoming[id])
}

// sortedKeys returns the keys of non-empty buckets in lex order, or nil.
func sortedKeys(m map[string]map[string]struct{}) []string {
	if len(m) == 0 {
		return nil
	}
	ids := make([]string, 0, len(m))
	for id, bucket := range m {
		if len(bucket) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// linkEdge records e in the forward and reverse indexes; undirected non-loop
// edges are mirrored so both endpoints see each other in both directions.
func linkEdge(g *Graph, e *Edge) {
	addToIndex(g.adjacencyList, e.From, e.To, e.ID)
	addToIndex(g.incoming, e.To, e.From, e.ID)
	if !e.Directed && e.From != e.To {
		addToIndex(g.adjacencyList, e.To, e.From, e.ID)
		addToIndex(g.incoming, e.From, e.To, e.ID)
	}
}

// unlinkEdge removes e from both indexes, pruning buckets that become empty.
func unlinkEdge(g *Graph, e *Edge) {
	removeFromIndex(g.adjacencyList, e.From, e.To, e.ID)
	removeFromIndex(g.incoming, e.To, e.From, e.ID)
	if !e.Directed && e.From != e.To {
		removeFromIndex(g.adjacencyList, e.To, e.From, e.ID)
		removeFromIndex(g.incoming, e.From, e.To, e.ID)
	}
}

func addToIndex(idx map[string]map[string]map[string]struct{}, a, b, eid string) {
	if idx[a] == nil {
		idx[a] = make(map[string]map[string]struct{})
	}
	if idx[a][b] == nil {
		idx[a][b] = make(map[string]struct{})
	}
	idx[a][b][eid] = struct{}{}
}

func removeFromIndex(idx map[string]map[string]map[string]struct{}, a, b, eid string) {
	bucket := idx[a][b]
	if bucket == nil {
		return
	}
	delete(bucket, eid)
	if len(bucket) == 0 {
		delete(idx[a], b)
	}
}
