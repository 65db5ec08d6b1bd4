// SPDX-License-Identifier: MIT
// Package: knightsliars/builder
//
// impl_triangular.go: Triangular(rows, cols): triangular lattice on a
// rows×cols box.
//
// Canonical model:
//   • The orthogonal grid plus one diagonal per square, (r,c)–(r+1,c+1).
//     Interior vertices have degree 6; boundary vertices lower degrees.
//   • IDs "r,c" (row-major).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Grid edges first (see Grid), then diagonals in row-major order.
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/knightsliars/core"
)

const methodTriangular = "Triangular"

// Triangular returns a Constructor that builds a triangular lattice.
func Triangular(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodTriangular, rows, cols, minGridDim, ErrTooFewVertices)
		}

		if err := buildLattice(g, methodTriangular, []int{rows, cols}, nil); err != nil {
			return err
		}
		for r := 0; r+1 < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				if err := connect(g, methodTriangular, CoordID(r, c), CoordID(r+1, c+1)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
