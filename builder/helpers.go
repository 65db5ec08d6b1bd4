// SPDX-License-Identifier: MIT
// Package: knightsliars/builder
//
// helpers.go: shared emission helpers for constructors. Each helper wraps
// core errors with the constructor's method tag so callers see
// "<Method>: AddEdge(u–v): <core sentinel>".

package builder

import (
	"fmt"

	"github.com/katalvlaran/knightsliars/core"
)

// centerVertexID is the fixed hub ID used by Star and Wheel.
const centerVertexID = "Center"

// addIndexedVertices inserts cfg.idFn(0..n-1) in ascending order and returns the IDs.
func addIndexedVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// connect adds the undirected edge u–v with method context on failure.
func connect(g *core.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s): %w", method, u, v, err)
	}

	return nil
}
