package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func inverseCmd() *cobra.Command {
	var modulus string

	cmd := &cobra.Command{
		Use:   "inverse [v]",
		Short: "Invert an integer modulo a prime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInt(args[0])
			if err != nil {
				return err
			}

			_, _, m := curve.Params()
			if modulus != "" {
				if m, err = parseInt(modulus); err != nil {
					return err
				}
				if m.Sign() <= 0 {
					return fmt.Errorf("modulus must be positive, got %s", m)
				}
			}

			x, err := inverter.Inverse(v, m)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), x)
			return nil
		},
	}

	cmd.Flags().StringVarP(&modulus, "modulus", "m", "", "prime modulus (default: Baby Jubjub field prime)")
	return cmd
}
