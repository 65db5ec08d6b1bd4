// SPDX-License-Identifier: MIT
// Package: knightsliars/builder
//
// impl_empty.go - implementation of Empty(n) constructor.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewVertices); n == 0 is a valid no-op.
//   - Adds vertices via cfg.idFn in ascending index order; emits no edges.
//
// Complexity: O(n) time, O(n) space for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/knightsliars/core"
)

const (
	methodEmpty   = "Empty"
	minEmptyNodes = 0
)

// Empty returns a Constructor that adds n isolated vertices.
func Empty(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minEmptyNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEmpty, n, minEmptyNodes, ErrTooFewVertices)
		}
		_, err := addIndexedVertices(g, cfg, methodEmpty, n)

		return err
	}
}
