package commands

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/babyjubjub/bjj"
	"github.com/f3rmion/babyjubjub/field"
)

var (
	inverterName string
	inverter     field.Inverter
	curve        *bjj.Curve
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bjj",
		Short:         "Baby Jubjub point arithmetic",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			inv, err := field.InverterByName(inverterName)
			if err != nil {
				return err
			}
			inverter = inv
			curve = bjj.BabyJubjubWithInverter(inv)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&inverterName, "inverter", "euclid",
		fmt.Sprintf("modular inverse strategy %v", field.InverterNames()))

	root.AddCommand(addCmd(), mulCmd(), inverseCmd(), onCurveCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

// parseInt accepts decimal, or hex with a 0x prefix, optionally negative.
// Leading zeros are decimal, not octal.
func parseInt(s string) (*big.Int, error) {
	digits, base := s, 10
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits, base = digits[2:], 16
	}
	if digits == "" || strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		return nil, fmt.Errorf("invalid integer %q", s)
	}

	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

func parsePoint(xs, ys string) (bjj.Point, error) {
	x, err := parseInt(xs)
	if err != nil {
		return bjj.Point{}, err
	}
	y, err := parseInt(ys)
	if err != nil {
		return bjj.Point{}, err
	}
	return bjj.Point{X: x, Y: y}, nil
}
