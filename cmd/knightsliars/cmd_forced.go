package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightsliars/forcing"
	"github.com/katalvlaran/knightsliars/render"
)

func newForcedCmd(gf *globalFlags) *cobra.Command {
	var showSteps bool

	cmd := &cobra.Command{
		Use:   "forced",
		Short: "Compute the vertices forced blue by propagation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gf.load(cmd)
			if err != nil {
				return err
			}
			g, err := buildGraph(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var opts []forcing.Option
			if showSteps {
				opts = append(opts, forcing.WithOnStep(func(step int, added []string) {
					fmt.Fprintf(out, "step %d: +%d %v\n", step, len(added), added)
				}))
			}
			res, err := forcing.Closure(g, opts...)
			if err != nil {
				return err
			}
			glog.Infof("forced closure on %s %v: %d vertices", cfg.Lattice.Kind, cfg.Lattice.Dims, res.Forced.Len())

			fmt.Fprintf(out, "forced: %d/%d vertices in %d steps\n", res.Forced.Len(), g.VertexCount(), res.Steps)
			if rows, cols, ok := cfg.Lattice.IsPlanar(); ok && cfg.Output.Plot {
				fmt.Fprint(out, render.TextPlot(rows, cols, res.Forced.Sorted()))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&showSteps, "steps", false, "print the vertices added at each step")

	return cmd
}
