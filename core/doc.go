// Package core provides a thread-safe, in-memory undirected simple graph with
// string vertex identifiers. It is the graph collaborator consumed by the
// forcing, labeling, bfs and solver packages.
//
// The Graph G = (V,E) guarantees:
//
//   - Undirected edges stored as mirrored adjacency sets:
//     adjacency[u][v] and adjacency[v][u].
//   - Simple graphs only: self-loops are rejected with ErrLoopNotAllowed and
//     a repeated AddEdge(u,v) is a no-op.
//   - Deterministic iteration: Vertices(), NeighborIDs(), Edges() and
//     AdjacencyList() all return sorted results.
//   - Separate sync.RWMutex for vertices (muVert) and adjacency (muAdj),
//     always acquired in that order.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1)
//	HasVertex(id string) bool           // O(1)
//	RemoveVertex(id string) error       // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(u, v string) error          // O(1), creates missing endpoints
//	RemoveEdge(u, v string) error       // O(1)
//	HasEdge(u, v string) bool           // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // O(d·log d), sorted
//	AdjacencyList() map[string][]string      // O(V+E)
//	Vertices() []string                      // O(V·log V)
//	Edges() []Edge                           // O(E·log E)
//	Degree(id string) (int, error)           // O(1)
//	VertexCount() int / EdgeCount() int      // O(1)
//
//	// Views
//	Clone() *Graph
//	InducedSubgraph(g, keep) *Graph
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrLoopNotAllowed - AddEdge(v, v).
package core
