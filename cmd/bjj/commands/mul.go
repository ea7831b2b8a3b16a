package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func mulCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mul [x] [y] [n]",
		Short: "Multiply a point by a non-negative scalar",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0], args[1])
			if err != nil {
				return err
			}
			n, err := parseInt(args[2])
			if err != nil {
				return err
			}

			res, err := curve.MulScalar(p, n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	return cmd
}
