package labeling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightsliars/builder"
	"github.com/katalvlaran/knightsliars/core"
	"github.com/katalvlaran/knightsliars/forcing"
	"github.com/katalvlaran/knightsliars/labeling"
)

func mustBuild(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()

	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(t, err)

	return g
}

func TestCheck_Rules(t *testing.T) {
	tests := []struct {
		name      string
		g         *core.Graph
		red       []string
		wantValid bool
		wantRules map[string]labeling.Rule
	}{
		{
			name: "path all blue", g: mustBuild(t, builder.Path(3)),
			wantValid: true,
		},
		{
			name: "path red middle", g: mustBuild(t, builder.Path(3)), red: []string{"1"},
			wantRules: map[string]labeling.Rule{"1": labeling.RuleRedUnbalanced},
		},
		{
			name: "star red centre", g: mustBuild(t, builder.Star(4)), red: []string{"Center"},
			wantRules: map[string]labeling.Rule{"Center": labeling.RuleOddDegreeRed},
		},
		{
			name: "isolated must be red", g: mustBuild(t, builder.Empty(2)), red: []string{"0"},
			wantRules: map[string]labeling.Rule{"1": labeling.RuleBlueBalanced},
		},
		{
			name: "isolated all red", g: mustBuild(t, builder.Empty(2)), red: []string{"1", "0", "1"},
			wantValid: true,
		},
		{
			name: "cycle half red", g: mustBuild(t, builder.Cycle(4)), red: []string{"0", "1"},
			wantRules: map[string]labeling.Rule{
				"2": labeling.RuleBlueBalanced,
				"3": labeling.RuleBlueBalanced,
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rep, err := labeling.Check(tc.g, tc.red)
			require.NoError(t, err)
			require.Equal(t, tc.wantValid, rep.Valid)

			got := make(map[string]labeling.Rule, len(rep.Violations))
			for _, v := range rep.Violations {
				got[v.Vertex] = v.Rule
				require.NotEmpty(t, v.String())
			}
			if tc.wantRules == nil {
				tc.wantRules = map[string]labeling.Rule{}
			}
			require.Equal(t, tc.wantRules, got)
		})
	}
}

func TestCheck_ReportRedSortedDeduplicated(t *testing.T) {
	rep, err := labeling.Check(mustBuild(t, builder.Empty(3)), []string{"2", "0", "2", "1"})
	require.NoError(t, err)
	require.True(t, rep.Valid)
	require.Equal(t, []string{"0", "1", "2"}, rep.Red)
}

func TestCheck_Errors(t *testing.T) {
	_, err := labeling.Check(nil, nil)
	require.ErrorIs(t, err, labeling.ErrGraphNil)
	require.ErrorContains(t, err, "Check")

	_, err = labeling.Check(mustBuild(t, builder.Path(2)), []string{"nope"})
	require.ErrorIs(t, err, labeling.ErrUnknownVertex)
}

// TestForcedVerticesAreBlue enumerates every labeling of small graphs and
// checks that no valid labeling colours a forced vertex red.
func TestForcedVerticesAreBlue(t *testing.T) {
	graphs := map[string]*core.Graph{
		"grid2x3":    mustBuild(t, builder.Grid(2, 3)),
		"grid3x3":    mustBuild(t, builder.Grid(3, 3)),
		"path5":      mustBuild(t, builder.Path(5)),
		"cycle6":     mustBuild(t, builder.Cycle(6)),
		"wheel6":     mustBuild(t, builder.Wheel(6)),
		"triangular": mustBuild(t, builder.Triangular(2, 4)),
		"lattice":    mustBuild(t, builder.Lattice(2, 2, 3)),
	}

	for name, g := range graphs {
		g := g
		t.Run(name, func(t *testing.T) {
			res, err := forcing.Closure(g)
			require.NoError(t, err)

			vs := g.Vertices()
			require.LessOrEqual(t, len(vs), 16)
			valid := 0
			for mask := 0; mask < 1<<len(vs); mask++ {
				var red []string
				for i, v := range vs {
					if mask&(1<<i) != 0 {
						red = append(red, v)
					}
				}
				rep, err := labeling.Check(g, red)
				require.NoError(t, err)
				if !rep.Valid {
					continue
				}
				valid++
				for _, v := range red {
					require.False(t, res.Forced.Contains(v), "forced %s is red in a valid labeling", v)
				}
			}
			// All-blue is valid on graphs without isolated vertices.
			require.Positive(t, valid)
		})
	}
}
