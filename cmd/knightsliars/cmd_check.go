package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightsliars/labeling"
)

var errInvalidLabeling = errors.New("labeling is invalid")

func newCheckCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [RED_VERTEX...]",
		Short: "Check a labeling; the listed vertices are red, all others blue",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gf.load(cmd)
			if err != nil {
				return err
			}
			g, err := buildGraph(cfg)
			if err != nil {
				return err
			}
			rep, err := labeling.Check(g, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if rep.Valid {
				fmt.Fprintf(out, "valid: %d red\n", len(rep.Red))
				return nil
			}
			for _, v := range rep.Violations {
				fmt.Fprintln(out, v)
			}

			return fmt.Errorf("%w: %d violations", errInvalidLabeling, len(rep.Violations))
		},
	}
}
