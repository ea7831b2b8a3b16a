package bjj

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/f3rmion/babyjubjub/field"
)

// ErrInvalidScalar is returned by [Curve.MulScalar] for nil or negative
// scalars.
var ErrInvalidScalar = errors.New("bjj: scalar must be non-negative")

var one = big.NewInt(1)

// Baby Jubjub constants. The field prime is the BN254 scalar field modulus.
var (
	coeffA = big.NewInt(168700)
	coeffD = big.NewInt(168696)
	prime  *big.Int

	// subgroupOrder is the order of the prime-order subgroup generated by
	// Base8. This is distinct from the field prime.
	subgroupOrder *big.Int

	generator Point
	base8     Point
)

func init() {
	prime = fr.Modulus()

	curve := twistededwards.GetEdwardsCurve()
	subgroupOrder = new(big.Int).Set(&curve.Order)

	generator = mustPoint(
		"995203441582195749578291179787384436505546430278305826713579947235728471134",
		"5472060717959818805561601436314318772137091100104008585924551046643952123905",
	)
	base8 = mustPoint(
		"5299619240641551281634865583518297030282874472190772894086521144482721001553",
		"16950150798460657717958625567821834550301663161624707787222815936182638968203",
	)
}

// Curve is a twisted Edwards curve a*x^2 + y^2 = 1 + d*x^2*y^2 over the
// prime field of order q.
//
// A Curve is immutable after construction and safe for concurrent use.
type Curve struct {
	a, d, q *big.Int
	inv     field.Inverter
}

// New returns a curve with coefficients a and d over the field of order q,
// using [field.DefaultInverter] for inversions. The arguments are copied.
//
// The parameters are not validated; malformed constants produce undefined
// results from Add and MulScalar.
func New(a, d, q *big.Int) *Curve {
	return NewWithInverter(a, d, q, field.DefaultInverter())
}

// NewWithInverter returns a curve like [New] that inverts denominators with
// inv instead of the default strategy. A nil inv selects the default.
func NewWithInverter(a, d, q *big.Int, inv field.Inverter) *Curve {
	if inv == nil {
		inv = field.DefaultInverter()
	}
	return &Curve{
		a:   new(big.Int).Set(a),
		d:   new(big.Int).Set(d),
		q:   new(big.Int).Set(q),
		inv: inv,
	}
}

// BabyJubjub returns the Baby Jubjub curve (a = 168700, d = 168696) over
// the BN254 scalar field.
func BabyJubjub() *Curve {
	return New(coeffA, coeffD, prime)
}

// BabyJubjubWithInverter returns the Baby Jubjub curve using inv for
// inversions.
func BabyJubjubWithInverter(inv field.Inverter) *Curve {
	return NewWithInverter(coeffA, coeffD, prime, inv)
}

// Params returns copies of the coefficients a, d and the field prime q.
func (c *Curve) Params() (a, d, q *big.Int) {
	return new(big.Int).Set(c.a), new(big.Int).Set(c.d), new(big.Int).Set(c.q)
}

// Add returns p + r using the twisted Edwards addition law:
//
//	x = (x1*y2 + y1*x2) / (1 + d*x1*x2*y1*y2)
//	y = (y1*y2 - a*x1*x2) / (1 - d*x1*x2*y1*y2)
//
// The formula is complete, so it also handles doubling (p == r) and the
// identity. Both result coordinates are in [0, q). An error wrapping
// [field.ErrNoInverse] is returned if a denominator vanishes, which does not
// happen for points on the curve.
func (c *Curve) Add(p, r Point) (Point, error) {
	xx := new(big.Int).Mul(p.X, r.X)
	yy := new(big.Int).Mul(p.Y, r.Y)
	dxy := new(big.Int).Mul(c.d, xx)
	dxy.Mul(dxy, yy)

	xNum := new(big.Int).Mul(p.X, r.Y)
	xNum.Add(xNum, new(big.Int).Mul(p.Y, r.X))
	xDen := new(big.Int).Add(one, dxy)

	yNum := new(big.Int).Mul(c.a, xx)
	yNum.Sub(yy, yNum)
	yDen := new(big.Int).Sub(one, dxy)

	x, err := c.div(xNum, xDen)
	if err != nil {
		return Point{}, fmt.Errorf("bjj: add: x denominator: %w", err)
	}
	y, err := c.div(yNum, yDen)
	if err != nil {
		return Point{}, fmt.Errorf("bjj: add: y denominator: %w", err)
	}
	return Point{X: x, Y: y}, nil
}

// div returns num/den in the field. den is reduced before inversion since
// the inverters are defined over canonical residues.
func (c *Curve) div(num, den *big.Int) (*big.Int, error) {
	inv, err := c.inv.Inverse(field.Reduce(den, c.q), c.q)
	if err != nil {
		return nil, err
	}
	return field.Reduce(new(big.Int).Mul(num, inv), c.q), nil
}

// MulScalar returns n*p computed by double-and-add over the bits of n,
// least significant first. MulScalar(p, 0) is the identity.
//
// Negative scalars are rejected with [ErrInvalidScalar].
func (c *Curve) MulScalar(p Point, n *big.Int) (Point, error) {
	if n == nil || n.Sign() < 0 {
		return Point{}, ErrInvalidScalar
	}

	var err error
	r := Identity()
	exp := p
	for i := 0; i < n.BitLen(); i++ {
		if n.Bit(i) == 1 {
			if r, err = c.Add(r, exp); err != nil {
				return Point{}, err
			}
		}
		if exp, err = c.Add(exp, exp); err != nil {
			return Point{}, err
		}
	}
	return r, nil
}

// Neg returns -p = (-x, y).
func (c *Curve) Neg(p Point) Point {
	return Point{
		X: field.Reduce(new(big.Int).Neg(p.X), c.q),
		Y: field.Reduce(p.Y, c.q),
	}
}

// Sub returns p - r.
func (c *Curve) Sub(p, r Point) (Point, error) {
	return c.Add(p, c.Neg(r))
}

// IsOnCurve reports whether p satisfies a*x^2 + y^2 = 1 + d*x^2*y^2 (mod q).
// Add and MulScalar do not call it; inputs to them are trusted.
func (c *Curve) IsOnCurve(p Point) bool {
	if !p.valid() {
		return false
	}
	x2 := new(big.Int).Mul(p.X, p.X)
	y2 := new(big.Int).Mul(p.Y, p.Y)

	lhs := new(big.Int).Mul(c.a, x2)
	lhs.Add(lhs, y2)

	rhs := new(big.Int).Mul(c.d, x2)
	rhs.Mul(rhs, y2)
	rhs.Add(rhs, one)

	return field.Reduce(lhs, c.q).Cmp(field.Reduce(rhs, c.q)) == 0
}

// Generator returns the Baby Jubjub generator of the full group.
func Generator() Point {
	return generator.Clone()
}

// Base8 returns 8*Generator, the generator of the prime-order subgroup.
func Base8() Point {
	return base8.Clone()
}

// Order returns the order of the subgroup generated by [Base8].
func Order() *big.Int {
	return new(big.Int).Set(subgroupOrder)
}
