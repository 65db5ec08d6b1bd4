// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph/Edge declarations, sentinel errors and the NewGraph constructor.
// Policy:
//   - The graph is undirected and simple: no self-loops, no parallel edges.
//   - Vertex identifiers are non-empty strings; they must stay stable for the
//     lifetime of the graph because algorithms use them as set keys.
// Concurrency:
//   - muVert guards the vertex catalogue, muAdj guards adjacency.
//   - Lock order is always muVert -> muAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; graphs here are simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected edge reported in canonical orientation (From < To).
type Edge struct {
	From string
	To   string
}

// Graph is an undirected simple graph with string vertex identifiers.
//
// The zero value is not usable; call NewGraph.
type Graph struct {
	muVert sync.RWMutex // guards vertices
	muAdj  sync.RWMutex // guards adjacency and edgeCount

	vertices map[string]struct{}

	// adjacency[u][v] exists iff {u,v} is an edge; mirrored for both endpoints.
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]struct{}),
	}
}
