// Package core provides the thread-safe in-memory Graph that hosts ancestor queries.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in "mixed" graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are stored, never interpreted
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - O(degree) neighbor enumeration in both directions via two nested-map indexes:
//     adjacencyList[from][to][edgeID] and incoming[to][from][edgeID]
//   - Collision-free atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+indexes (muEdgeAdj)
//
// Direction convention used by the lca package:
//
//	forward  (Successors)   parent → child
//	backward (Predecessors) child  → parent
//
// *Graph satisfies lca.Graph[string]: Successors and Predecessors never fail and
// return nil for unknown vertices, which the engine reads as "no neighbors".
//
// Core Methods:
//
//	AddVertex(id) error                      // O(1)
//	HasVertex(id) bool                       // O(1)
//	RemoveVertex(id) error                   // O(deg(v))
//	AddEdge(from,to,weight,opts...) (id,err) // O(1) amortized
//	RemoveEdge(edgeID) error                 // O(1)
//	HasEdge(from,to) bool                    // O(1)
//	Neighbors(id) ([]*Edge, error)           // O(d·log d)
//	NeighborIDs(id) ([]string, error)        // O(d·log d)
//	Successors(id) []string                  // O(d·log d)
//	Predecessors(id) []string                // O(d·log d)
//	Degree(id) (in, out int, err error)      // O(1)
//	Vertices() []string, Edges() []*Edge     // sorted snapshots
//	Clone() *Graph, Clear()
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – non-zero weight on unweighted graph
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed mode
package core
