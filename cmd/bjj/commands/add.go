package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [x1] [y1] [x2] [y2]",
		Short: "Add two points",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0], args[1])
			if err != nil {
				return err
			}
			q, err := parsePoint(args[2], args[3])
			if err != nil {
				return err
			}

			sum, err := curve.Add(p, q)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
	return cmd
}
