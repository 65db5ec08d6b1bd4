package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightsliars/builder"
	"github.com/katalvlaran/knightsliars/config"
	"github.com/katalvlaran/knightsliars/core"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	kind       string
	dims       []int
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}

	root := &cobra.Command{
		Use:   "knightsliars",
		Short: "Knights-and-liars labelings on lattices",
		Long: `knightsliars labels graph vertices red (knight) or blue (liar) so that
every red vertex has exactly as many red as blue neighbours and no blue
vertex has that balance. It computes the vertices forced blue by
propagation, maximises the number of red vertices, checks labelings and
evaluates the closed-form grid bound.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog reads its flags from the standard flag set.
			return flag.CommandLine.Parse(nil)
		},
	}
	root.PersistentFlags().StringVar(&gf.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&gf.kind, "kind", "", "lattice kind (overrides config)")
	root.PersistentFlags().IntSliceVar(&gf.dims, "dims", nil, "lattice dimensions, e.g. --dims 10,10 (overrides config)")
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	root.AddCommand(
		newForcedCmd(gf),
		newSolveCmd(gf),
		newCheckCmd(gf),
		newBoundCmd(),
		newConfigCmd(),
	)

	return root
}

// load reads the config file and applies flag overrides.
func (gf *globalFlags) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(gf.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("kind") {
		cfg.Lattice.Kind = gf.kind
	}
	if cmd.Flags().Changed("dims") {
		cfg.Lattice.Dims = append([]int(nil), gf.dims...)
	}
	if err = cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrDimsArity) && cmd.Flags().Changed("kind") && !cmd.Flags().Changed("dims") {
			return config.Config{}, fmt.Errorf("--kind %s needs --dims: %w", gf.kind, err)
		}
		return config.Config{}, err
	}

	return cfg, nil
}

// buildGraph builds the configured lattice.
func buildGraph(cfg config.Config) (*core.Graph, error) {
	con, err := cfg.Lattice.Constructor()
	if err != nil {
		return nil, err
	}
	g, err := builder.BuildGraph(nil, con)
	if err != nil {
		return nil, fmt.Errorf("build %s %v: %w", cfg.Lattice.Kind, cfg.Lattice.Dims, err)
	}

	return g, nil
}
