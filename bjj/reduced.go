package bjj

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/f3rmion/babyjubjub/field"
)

// gnark-crypto represents Baby Jubjub in reduced twisted Edwards form
// (a = -1). The two forms are related by x' = -f*x, y' = y.
var scalingFactor = mustInt("6360561867910373094066688120553762416144456282423235903351243436111059670888")

// negScaling is -f mod q and negScalingInv its inverse.
var negScaling, negScalingInv *big.Int

func init() {
	q := fr.Modulus()
	negScaling = field.Reduce(new(big.Int).Neg(scalingFactor), q)

	inv, err := field.ModInverse(negScaling, q)
	if err != nil {
		panic("bjj: scaling factor is not invertible")
	}
	negScalingInv = inv
}

// ToReduced converts a Baby Jubjub point to gnark-crypto's reduced twisted
// Edwards representation.
func ToReduced(p Point) twistededwards.PointAffine {
	x := new(big.Int).Mul(p.X, negScaling)

	var out twistededwards.PointAffine
	out.X.SetBigInt(x)
	out.Y.SetBigInt(p.Y)
	return out
}

// FromReduced converts a gnark-crypto reduced twisted Edwards point back to
// Baby Jubjub coordinates.
func FromReduced(p *twistededwards.PointAffine) Point {
	x := p.X.BigInt(new(big.Int))
	x.Mul(x, negScalingInv)
	return Point{
		X: field.Reduce(x, fr.Modulus()),
		Y: p.Y.BigInt(new(big.Int)),
	}
}

func mustInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bjj: invalid integer constant " + s)
	}
	return v
}
