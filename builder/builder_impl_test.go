// Package builder_test contains functional tests for all Constructor
// implementations, verifying topology, counts, degree profiles and errors.
package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightsliars/builder"
	"github.com/katalvlaran/knightsliars/core"
)

// degreeHistogram maps degree -> number of vertices with that degree.
func degreeHistogram(t *testing.T, g *core.Graph) map[int]int {
	t.Helper()

	hist := make(map[int]int)
	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		require.NoError(t, err)
		hist[d]++
	}

	return hist
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ctor     builder.Constructor
		wantV    int
		wantE    int
		wantHist map[int]int
		check    func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Empty(3)", ctor: builder.Empty(3),
			wantV: 3, wantE: 0, wantHist: map[int]int{0: 3},
		},
		{
			name: "Empty(0)", ctor: builder.Empty(0),
			wantV: 0, wantE: 0, wantHist: map[int]int{},
		},
		{
			name: "Path(3)", ctor: builder.Path(3),
			wantV: 3, wantE: 2, wantHist: map[int]int{1: 2, 2: 1},
			check: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge("0", "1"))
				require.True(t, g.HasEdge("1", "2"))
				require.False(t, g.HasEdge("0", "2"))
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5),
			wantV: 5, wantE: 5, wantHist: map[int]int{2: 5},
			check: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge("4", "0"), "ring must close")
			},
		},
		{
			name: "Star(4)", ctor: builder.Star(4),
			wantV: 4, wantE: 3, wantHist: map[int]int{3: 1, 1: 3},
			check: func(t *testing.T, g *core.Graph) {
				for _, leaf := range []string{"1", "2", "3"} {
					require.True(t, g.HasEdge("Center", leaf))
				}
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5),
			wantV: 5, wantE: 8, wantHist: map[int]int{3: 4, 4: 1},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4),
			wantV: 4, wantE: 6, wantHist: map[int]int{3: 4},
		},
		{
			name: "Grid(2,2)", ctor: builder.Grid(2, 2),
			wantV: 4, wantE: 4, wantHist: map[int]int{2: 4},
			check: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge("0,0", "0,1"))
				require.True(t, g.HasEdge("0,0", "1,0"))
				require.False(t, g.HasEdge("0,0", "1,1"))
			},
		},
		{
			name: "Grid(3,4)", ctor: builder.Grid(3, 4),
			wantV: 12, wantE: 17, wantHist: map[int]int{2: 4, 3: 6, 4: 2},
		},
		{
			name: "Lattice(2,2,2)", ctor: builder.Lattice(2, 2, 2),
			wantV: 8, wantE: 12, wantHist: map[int]int{3: 8},
			check: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge("0,0,0", "0,0,1"))
				require.True(t, g.HasEdge("1,1,0", "1,1,1"))
			},
		},
		{
			name: "Lattice(4)", ctor: builder.Lattice(4),
			wantV: 4, wantE: 3, wantHist: map[int]int{1: 2, 2: 2},
		},
		{
			name: "Torus(3,4)", ctor: builder.Torus(3, 4),
			wantV: 12, wantE: 24, wantHist: map[int]int{4: 12},
			check: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge("2,0", "0,0"), "row wrap")
				require.True(t, g.HasEdge("0,3", "0,0"), "column wrap")
			},
		},
		{
			name: "Triangular(3,3)", ctor: builder.Triangular(3, 3),
			wantV: 9, wantE: 16, wantHist: map[int]int{2: 2, 3: 2, 4: 4, 6: 1},
			check: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge("0,0", "1,1"))
				require.False(t, g.HasEdge("0,1", "1,0"))
			},
		},
		{
			name: "RandomSparse_p1(4)", ctor: builder.RandomSparse(4, 1.0),
			wantV: 4, wantE: 6, wantHist: map[int]int{3: 4},
		},
		{
			name: "RandomSparse_p0(4)", ctor: builder.RandomSparse(4, 0.0),
			wantV: 4, wantE: 0, wantHist: map[int]int{0: 4},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.VertexCount(), "vertex count")
			require.Equal(t, tc.wantE, g.EdgeCount(), "edge count")
			require.Equal(t, tc.wantHist, degreeHistogram(t, g), "degree histogram")
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

// TestBuilders_Errors checks parameter validation and sentinel wrapping.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Empty(-1)", builder.Empty(-1), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Lattice()", builder.Lattice(), builder.ErrTooFewVertices},
		{"Lattice(3,0)", builder.Lattice(3, 0), builder.ErrTooFewVertices},
		{"Torus(2,5)", builder.Torus(2, 5), builder.ErrTooFewVertices},
		{"Triangular(3,0)", builder.Triangular(3, 0), builder.ErrTooFewVertices},
		{"RandomSparse(3,1.5)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(3,0.5) no rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := builder.BuildGraph(nil, tc.ctor)
			require.Nil(t, g)
			require.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

// TestBuilders_Composition verifies constructors compose on one graph and
// that ID schemes keep them apart.
func TestBuilders_Composition(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSymbNumb("v")},
		builder.Path(3),
		builder.Grid(2, 2),
	)
	require.NoError(t, err)
	require.Equal(t, 7, g.VertexCount())
	require.True(t, g.HasEdge("v0", "v1"))
	require.True(t, g.HasEdge("0,0", "1,0"))

	require.NoError(t, builder.Apply(g, builder.Empty(2), builder.WithSymbNumb("iso")))
	require.True(t, g.HasVertex("iso1"))
	require.ErrorIs(t, builder.Apply(nil, builder.Empty(1)), builder.ErrConstructFailed)
}

// TestRandomSparse_Deterministic verifies equal seeds give equal graphs.
func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g
	}

	a, b := build(42), build(42)
	require.Equal(t, a.Edges(), b.Edges())
	require.Equal(t, 30, a.VertexCount())
}

// TestFromGraph verifies copying an external graph, including isolated vertices.
func TestFromGraph(t *testing.T) {
	src, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)
	require.NoError(t, src.AddVertex("lonely"))

	g, err := builder.BuildGraph(nil, builder.FromGraph(src))
	require.NoError(t, err)
	require.Equal(t, src.Vertices(), g.Vertices())
	require.Equal(t, src.Edges(), g.Edges())

	_, err = builder.BuildGraph(nil, builder.FromGraph(nil))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}
