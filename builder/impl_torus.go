// SPDX-License-Identifier: MIT
// Package: knightsliars/builder
//
// impl_torus.go: Torus(rows, cols): periodic 2D grid.
//
// Contract:
//   • rows ≥ 3 and cols ≥ 3 (else ErrTooFewVertices). Smaller sizes would
//     create parallel edges or loops after wrapping, which a simple graph forbids.
//   • IDs "r,c"; every vertex has degree 4.
//   • Edges: for each (r,c) in row-major order, (r+1 mod rows, c) then (r, c+1 mod cols).
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/knightsliars/core"
)

const (
	methodTorus = "Torus"
	minTorusDim = 3
)

// Torus returns a Constructor that builds the rows×cols torus grid.
func Torus(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minTorusDim || cols < minTorusDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodTorus, rows, cols, minTorusDim, ErrTooFewVertices)
		}

		return buildLattice(g, methodTorus, []int{rows, cols}, []bool{true, true})
	}
}
