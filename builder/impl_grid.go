// SPDX-License-Identifier: MIT
// Package: knightsliars/builder
//
// impl_grid.go: Grid(rows, cols) and the d-dimensional Lattice(dims...).
//
// Canonical model:
//   • Orthogonal lattice: each vertex is joined to its +1 neighbour along
//     every axis (4-neighbourhood in 2D).
//   • Vertex IDs use the fixed coordinate scheme CoordID(i,j,...) = "i,j,...".
//     This is a deliberate exception to cfg.idFn so positions stay explicit.
//
// Contract:
//   • At least one dimension, each ≥ 1 (else ErrTooFewVertices).
//   • Vertices are added in row-major order (last axis fastest).
//   • For each vertex, edges are emitted along axis 0, 1, ... in order.
//
// Complexity:
//   • Time: O(N·d) where N = Π dims. Space: O(d) scratch.

package builder

import (
	"fmt"

	"github.com/katalvlaran/knightsliars/core"
)

const (
	methodGrid    = "Grid"
	methodLattice = "Lattice"
	minGridDim    = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid with IDs "r,c".
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		return buildLattice(g, methodGrid, []int{rows, cols}, nil)
	}
}

// Lattice returns a Constructor that builds the d-dimensional grid
// dims[0]×dims[1]×...; IDs are "i,j,k,...".
func Lattice(dims ...int) Constructor {
	shape := append([]int(nil), dims...)

	return func(g *core.Graph, cfg builderConfig) error {
		if len(shape) == 0 {
			return fmt.Errorf("%s: no dimensions: %w", methodLattice, ErrTooFewVertices)
		}
		for axis, d := range shape {
			if d < minGridDim {
				return fmt.Errorf("%s: dims[%d]=%d < min=%d: %w",
					methodLattice, axis, d, minGridDim, ErrTooFewVertices)
			}
		}

		return buildLattice(g, methodLattice, shape, nil)
	}
}

// buildLattice emits the vertices and axis edges of a box lattice. When wrap
// is non-nil, wrap[axis] joins the last layer back to the first along that axis.
func buildLattice(g *core.Graph, method string, shape []int, wrap []bool) error {
	return walkLattice(shape, func(pos []int) error {
		u := CoordID(pos...)
		if err := g.AddVertex(u); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, u, err)
		}
		return nil
	}, func(pos []int) error {
		u := CoordID(pos...)
		next := make([]int, len(pos))
		for axis := range shape {
			copy(next, pos)
			next[axis]++
			if next[axis] == shape[axis] {
				if wrap == nil || !wrap[axis] {
					continue
				}
				next[axis] = 0
			}
			if err := connect(g, method, u, CoordID(next...)); err != nil {
				return err
			}
		}
		return nil
	})
}

// walkLattice runs addVertex over every position in row-major order, then
// addEdges over every position in the same order. Two passes keep vertex
// insertion complete before any edge references a later coordinate.
func walkLattice(shape []int, addVertex, addEdges func(pos []int) error) error {
	for _, fn := range []func([]int) error{addVertex, addEdges} {
		if fn == nil {
			continue
		}
		pos := make([]int, len(shape))
		for {
			if err := fn(pos); err != nil {
				return err
			}
			// Odometer increment, last axis fastest.
			axis := len(shape) - 1
			for axis >= 0 {
				pos[axis]++
				if pos[axis] < shape[axis] {
					break
				}
				pos[axis] = 0
				axis--
			}
			if axis < 0 {
				break
			}
		}
	}

	return nil
}
