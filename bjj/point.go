package bjj

import (
	"fmt"
	"math/big"
)

// Point is an affine point (X, Y). There is no point at infinity; the
// identity is (0, 1).
//
// The zero Point has nil coordinates and is not a valid point; Add and
// MulScalar return it only together with an error.
//
// Points are values. Curve methods never modify their arguments and always
// return points with freshly allocated coordinates, so a Point may be copied
// and shared freely as long as callers do not mutate X or Y in place.
type Point struct {
	X, Y *big.Int
}

// NewPoint returns the point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// Identity returns the neutral element (0, 1).
func Identity() Point {
	return Point{X: new(big.Int), Y: big.NewInt(1)}
}

// Clone returns a deep copy of p.
func (p Point) Clone() Point {
	return NewPoint(p.X, p.Y)
}

// Equal reports whether p and r have the same coordinates.
// Coordinates are compared as integers, not as field residues.
// A point with a nil coordinate equals nothing, not even itself.
func (p Point) Equal(r Point) bool {
	if !p.valid() || !r.valid() {
		return false
	}
	return p.X.Cmp(r.X) == 0 && p.Y.Cmp(r.Y) == 0
}

// IsIdentity reports whether p is (0, 1).
func (p Point) IsIdentity() bool {
	return p.valid() && p.X.Sign() == 0 && p.Y.Cmp(one) == 0
}

func (p Point) valid() bool {
	return p.X != nil && p.Y != nil
}

// String formats p as "x,y" in decimal.
func (p Point) String() string {
	return fmt.Sprintf("%s,%s", p.X, p.Y)
}

func mustPoint(x, y string) Point {
	px, ok := new(big.Int).SetString(x, 10)
	if !ok {
		panic("bjj: invalid point constant " + x)
	}
	py, ok := new(big.Int).SetString(y, 10)
	if !ok {
		panic("bjj: invalid point constant " + y)
	}
	return Point{X: px, Y: py}
}
