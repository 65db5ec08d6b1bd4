// SPDX-License-Identifier: MIT
// Package: knightsliars/builder
//
// id_fn.go: vertex ID schemes.
//
// Index-based topologies name vertices through an IDFn; coordinate
// topologies use the fixed "i,j,..." scheme (CoordID / ParseCoordID) so that
// render and config code can recover positions from IDs.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// coordSep separates coordinates inside a lattice vertex ID.
const coordSep = ","

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// The returned IDFn panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// CoordID renders lattice coordinates as "i,j,k".
func CoordID(coords ...int) string {
	var b strings.Builder
	for i, c := range coords {
		if i > 0 {
			b.WriteString(coordSep)
		}
		b.WriteString(strconv.Itoa(c))
	}

	return b.String()
}

// ParseCoordID is the inverse of CoordID.
//
// Errors:
//   - ErrBadCoordID: empty ID or a non-integer component.
func ParseCoordID(id string) ([]int, error) {
	if id == "" {
		return nil, fmt.Errorf("ParseCoordID(%q): %w", id, ErrBadCoordID)
	}
	parts := strings.Split(id, coordSep)
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("ParseCoordID(%q): %w", id, ErrBadCoordID)
		}
		out[i] = v
	}

	return out, nil
}
