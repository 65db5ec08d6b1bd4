package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightsliars/bound"
)

func newBoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bound DIM...",
		Short: "Evaluate the closed-form red-vertex estimate for a grid",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes := make([]int, len(args))
			for i, a := range args {
				v, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("dimension %q: %w", a, err)
				}
				sizes[i] = v
			}
			b, err := bound.GridBound(sizes...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", b)

			return nil
		},
	}
}
