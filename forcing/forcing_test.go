package forcing_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/knightsliars/builder"
	"github.com/katalvlaran/knightsliars/core"
	"github.com/katalvlaran/knightsliars/forcing"
)

func mustBuild(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()

	g, err := builder.BuildGraph(bopts, cons...)
	require.NoError(t, err)

	return g
}

// ClosureSuite covers the scenario graphs with known closures.
type ClosureSuite struct {
	suite.Suite
}

func TestClosureSuite(t *testing.T) {
	suite.Run(t, new(ClosureSuite))
}

func (s *ClosureSuite) closure(g forcing.Graph) *forcing.Result {
	res, err := forcing.Closure(g)
	s.Require().NoError(err)
	s.Require().NotNil(res.Forced)
	s.Require().Len(res.Sizes, res.Steps)

	return res
}

func (s *ClosureSuite) TestEmptyGraph() {
	res := s.closure(core.NewGraph())
	s.Equal(0, res.Forced.Len())
	s.Equal(0, res.Steps)
}

func (s *ClosureSuite) TestEdgeless() {
	res := s.closure(mustBuild(s.T(), nil, builder.Empty(5)))
	s.Equal(0, res.Forced.Len())
	s.Equal(0, res.Steps)
}

func (s *ClosureSuite) TestStarOddCentre() {
	g := mustBuild(s.T(), nil, builder.Star(4))
	res := s.closure(g)
	s.Equal(g.Vertices(), res.Forced.Sorted())
	s.Equal(1, res.Steps)
	s.Equal([]int{4}, res.Sizes)
}

func (s *ClosureSuite) TestGrid2x2() {
	res := s.closure(mustBuild(s.T(), nil, builder.Grid(2, 2)))
	s.Equal(0, res.Forced.Len())
	s.Equal(0, res.Steps)
}

func (s *ClosureSuite) TestPath3() {
	res := s.closure(mustBuild(s.T(), nil, builder.Path(3)))
	s.Equal([]string{"0", "1", "2"}, res.Forced.Sorted())
	s.Equal(2, res.Steps)
	s.Equal([]int{2, 3}, res.Sizes)
}

// Even cycles have no odd vertex to seed from.
func (s *ClosureSuite) TestCycle() {
	res := s.closure(mustBuild(s.T(), nil, builder.Cycle(6)))
	s.Equal(0, res.Forced.Len())
}

// Grid 3×3: the four border midpoints have degree 3 and seed the
// propagation; the centre sees 4 of 4 forced, corners see 2 of 2.
func (s *ClosureSuite) TestGrid3x3() {
	g := mustBuild(s.T(), nil, builder.Grid(3, 3))
	res := s.closure(g)
	s.Equal(g.Vertices(), res.Forced.Sorted())
	s.Equal(2, res.Steps)
	s.Equal([]int{4, 9}, res.Sizes)
}

// Torus: every vertex has degree 4, nothing is forced.
func (s *ClosureSuite) TestTorus() {
	res := s.closure(mustBuild(s.T(), nil, builder.Torus(4, 5)))
	s.Equal(0, res.Forced.Len())
}

// A disjoint union: P3 is forced, the isolated vertex never is.
func (s *ClosureSuite) TestIsolatedVertexStaysFree() {
	g := mustBuild(s.T(), []builder.BuilderOption{builder.WithSymbNumb("p")}, builder.Path(3))
	s.Require().NoError(g.AddVertex("iso"))

	res := s.closure(g)
	s.Equal([]string{"p0", "p1", "p2"}, res.Forced.Sorted())
	s.False(res.Forced.Contains("iso"))
}

// TestClosure_Properties checks monotonicity, the fixed-point property,
// the |V| step bound and idempotence on several topologies.
func TestClosure_Properties(t *testing.T) {
	graphs := map[string]*core.Graph{
		"grid5x7":      mustBuild(t, nil, builder.Grid(5, 7)),
		"grid6x6":      mustBuild(t, nil, builder.Grid(6, 6)),
		"triangular":   mustBuild(t, nil, builder.Triangular(5, 6)),
		"lattice3d":    mustBuild(t, nil, builder.Lattice(3, 3, 4)),
		"wheel":        mustBuild(t, nil, builder.Wheel(7)),
		"random":       mustBuild(t, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(40, 0.1)),
		"random_dense": mustBuild(t, []builder.BuilderOption{builder.WithSeed(2)}, builder.RandomSparse(25, 0.4)),
	}

	for name, g := range graphs {
		g := g
		t.Run(name, func(t *testing.T) {
			var iterates []forcing.Set
			cur := forcing.NewSet()
			for {
				next, err := forcing.Step(g, cur)
				require.NoError(t, err)
				require.True(t, cur.IsSubsetOf(next), "monotonicity")
				if next.Equal(cur) {
					break
				}
				iterates = append(iterates, next)
				cur = next
			}

			res, err := forcing.Closure(g)
			require.NoError(t, err)
			require.True(t, res.Forced.Equal(cur), "Closure agrees with manual iteration")
			require.Equal(t, len(iterates), res.Steps)
			require.LessOrEqual(t, res.Steps, g.VertexCount())

			for _, v := range res.Forced.Sorted() {
				require.True(t, g.HasVertex(v), "forced ⊆ V")
			}

			fixed, err := forcing.IsFixedPoint(g, res.Forced)
			require.NoError(t, err)
			require.True(t, fixed)

			again, err := forcing.Step(g, res.Forced)
			require.NoError(t, err)
			require.True(t, again.Equal(res.Forced))

			second, err := forcing.Closure(g)
			require.NoError(t, err)
			if diff := cmp.Diff(res.Forced.Sorted(), second.Forced.Sorted()); diff != "" {
				t.Fatalf("Closure not idempotent (-first +second):\n%s", diff)
			}
		})
	}
}

// TestStep_Snapshot verifies that Step evaluates every vertex against the
// input set and never mutates it. With F={a,c} on the star b–{a,c,d},
// b qualifies (2·2 > 3) but d does not yet see b as forced; an in-place
// update visiting b before d would also add d.
func TestStep_Snapshot(t *testing.T) {
	g := core.NewGraph()
	for _, leaf := range []string{"a", "c", "d"} {
		require.NoError(t, g.AddEdge("b", leaf))
	}
	f := forcing.NewSet("a", "c")

	next, err := forcing.Step(g, f)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, next.Sorted())
	require.Equal(t, []string{"a", "c"}, f.Sorted(), "input untouched")

	next, err = forcing.Step(g, next)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c", "d"}, next.Sorted())
}

// TestStep_EmptySeedUsesParity checks the base case ignores majority.
func TestStep_EmptySeedUsesParity(t *testing.T) {
	g := mustBuild(t, nil, builder.Path(4))

	next, err := forcing.Step(g, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"0", "3"}, next.Sorted())
}

// TestClosure_OnStepHook records the hook calls.
func TestClosure_OnStepHook(t *testing.T) {
	g := mustBuild(t, nil, builder.Path(3))

	var steps []int
	var added [][]string
	_, err := forcing.Closure(g, forcing.WithOnStep(func(step int, ids []string) {
		steps = append(steps, step)
		added = append(added, ids)
	}))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, steps)
	require.Equal(t, [][]string{{"0", "2"}, {"1"}}, added)

	require.Panics(t, func() { forcing.WithOnStep(nil) })
}

// failingGraph lists a vertex it cannot expand.
type failingGraph struct{}

func (failingGraph) Vertices() []string { return []string{"a"} }
func (failingGraph) NeighborIDs(string) ([]string, error) {
	return nil, core.ErrVertexNotFound
}

func TestErrors(t *testing.T) {
	_, err := forcing.Closure(nil)
	require.ErrorIs(t, err, forcing.ErrGraphNil)
	_, err = forcing.Step(nil, nil)
	require.ErrorIs(t, err, forcing.ErrGraphNil)
	_, err = forcing.IsFixedPoint(nil, nil)
	require.ErrorIs(t, err, forcing.ErrGraphNil)

	_, err = forcing.Closure(failingGraph{})
	require.True(t, errors.Is(err, forcing.ErrNeighbors))
}

func TestSet(t *testing.T) {
	s := forcing.NewSet("b", "a")
	c := s.Clone()
	c["z"] = struct{}{}

	require.Equal(t, 2, s.Len())
	require.True(t, s.Contains("a"))
	require.False(t, s.Contains("z"))
	require.True(t, s.IsSubsetOf(c))
	require.False(t, c.IsSubsetOf(s))
	require.False(t, s.Equal(c))
	require.True(t, s.Equal(forcing.NewSet("a", "b")))
	require.Equal(t, []string{"a", "b"}, s.Sorted())
}
