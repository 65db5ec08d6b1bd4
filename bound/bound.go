// Package bound evaluates the closed-form estimate of the maximum number
// of red vertices (knights) on a d-dimensional grid.
//
// For interval sizes s₁…s_d the estimate is
//
//	2/3 · Π(sᵢ−2) + 2/(3d) · Σᵢ Π_{j≠i}(sⱼ−2)
//
// i.e. two thirds of the interior plus a boundary correction. It is exact
// on small square grids (4×4 → 4, 5×5 → 8) and gives the leading term
// 2/3·n^d for large grids.
package bound

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDimensions is returned when no sizes are given.
	ErrNoDimensions = errors.New("bound: no dimensions")

	// ErrDimensionTooSmall is returned for a size below 2.
	ErrDimensionTooSmall = errors.New("bound: dimension must be at least 2")
)

const minSize = 2

// GridBound returns the estimate for a grid with the given interval sizes.
func GridBound(sizes ...int) (float64, error) {
	d := len(sizes)
	if d == 0 {
		return 0, fmt.Errorf("GridBound: %w", ErrNoDimensions)
	}
	inner := make([]float64, d)
	for i, s := range sizes {
		if s < minSize {
			return 0, fmt.Errorf("GridBound: sizes[%d]=%d: %w", i, s, ErrDimensionTooSmall)
		}
		inner[i] = float64(s - minSize)
	}

	volume := 2.0 / 3.0
	for _, v := range inner {
		volume *= v
	}

	faces := 0.0
	for i := range inner {
		p := 1.0
		for j, v := range inner {
			if j != i {
				p *= v
			}
		}
		faces += p
	}

	return volume + 2.0/(3.0*float64(d))*faces, nil
}
