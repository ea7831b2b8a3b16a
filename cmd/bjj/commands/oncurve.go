package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func onCurveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oncurve [x] [y]",
		Short: "Check whether a point lies on Baby Jubjub",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), curve.IsOnCurve(p))
			return nil
		},
	}
	return cmd
}
