package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) lengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "length [file]",
		Short: "Print the traversal length of a waypoint path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			l := in.Length()
			a.logger.Debug("measured path", zap.Int("points", len(in)), zap.Float64("length", l))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%g\n", l)
			return err
		},
	}
}
