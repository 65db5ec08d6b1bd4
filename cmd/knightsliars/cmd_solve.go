package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightsliars/bound"
	"github.com/katalvlaran/knightsliars/config"
	"github.com/katalvlaran/knightsliars/render"
	"github.com/katalvlaran/knightsliars/solver"
)

func newSolveCmd(gf *globalFlags) *cobra.Command {
	var (
		formulation string
		red, blue   []string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Maximise the number of red vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gf.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("formulation") {
				cfg.Solver.Formulation = formulation
				if err = cfg.Validate(); err != nil {
					return err
				}
			}
			g, err := buildGraph(cfg)
			if err != nil {
				return err
			}

			opts := cfg.Solver.SolverOptions()
			opts = append(opts, solver.WithRed(red...), solver.WithBlue(blue...))
			sol, err := solver.NewPBSolver().Solve(cmd.Context(), g, opts...)
			if err != nil {
				return err
			}
			glog.Infof("solve %s %v: %s, %d red", cfg.Lattice.Kind, cfg.Lattice.Dims, sol.Status, sol.Objective)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "status: %s\n", sol.Status)
			if sol.Red == nil {
				return nil
			}
			fmt.Fprintf(out, "red: %d/%d\n", sol.Objective, g.VertexCount())
			if cfg.Lattice.Kind == config.KindGrid || cfg.Lattice.Kind == config.KindLattice {
				if b, err := bound.GridBound(cfg.Lattice.Dims...); err == nil {
					fmt.Fprintf(out, "bound: %.2f\n", b)
				}
			}
			if rows, cols, ok := cfg.Lattice.IsPlanar(); ok && cfg.Output.Plot {
				fmt.Fprint(out, render.TextPlot(rows, cols, sol.Red))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&formulation, "formulation", "", "standard or alternative (overrides config)")
	// IDs such as "1,2" contain commas: repeat the flag instead of splitting.
	cmd.Flags().StringArrayVar(&red, "red", nil, "vertex ID fixed red (repeatable)")
	cmd.Flags().StringArrayVar(&blue, "blue", nil, "vertex ID fixed blue (repeatable)")

	return cmd
}
