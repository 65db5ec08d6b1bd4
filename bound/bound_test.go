package bound_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightsliars/bound"
)

func TestGridBound(t *testing.T) {
	tests := []struct {
		sizes []int
		want  float64
	}{
		{[]int{2, 2}, 0},
		{[]int{3, 3}, 4.0 / 3.0},
		{[]int{4, 4}, 4},
		{[]int{5, 5}, 8},
		{[]int{10}, 6},
		{[]int{4, 6}, 2.0/3.0*8 + 1.0/3.0*(4+2)},
		{[]int{3, 3, 3}, 2.0/3.0 + 2.0/9.0*3},
	}
	for _, tc := range tests {
		got, err := bound.GridBound(tc.sizes...)
		require.NoError(t, err)
		require.InDelta(t, tc.want, got, 1e-9, "sizes %v", tc.sizes)
	}
}

func TestGridBound_LeadingTerm(t *testing.T) {
	got, err := bound.GridBound(800, 800, 800)
	require.NoError(t, err)
	lead := 2.0 / 3.0 * 800 * 800 * 800
	require.InEpsilon(t, lead, got, 0.01)
	require.Less(t, got, lead)
}

func TestGridBound_Errors(t *testing.T) {
	_, err := bound.GridBound()
	require.ErrorIs(t, err, bound.ErrNoDimensions)
	require.ErrorContains(t, err, "GridBound")

	_, err = bound.GridBound(5, 1)
	require.ErrorIs(t, err, bound.ErrDimensionTooSmall)
}

func ExampleGridBound() {
	v, _ := bound.GridBound(5, 5)
	fmt.Printf("%.2f\n", v)
	// Output:
	// 8.00
}
