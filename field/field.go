package field

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	// ErrNoInverse is returned when the value is congruent to zero (or, for a
	// composite modulus, shares a factor with it) and has no inverse.
	ErrNoInverse = errors.New("field: no multiplicative inverse exists")

	// ErrUnsupportedModulus is returned by a strategy that only works over a
	// fixed modulus when asked to invert over a different one.
	ErrUnsupportedModulus = errors.New("field: unsupported modulus")
)

var one = big.NewInt(1)

// Reduce returns the canonical residue of v modulo m, in the range [0, m).
// Unlike big.Int.Rem, the result is never negative. m must be positive.
func Reduce(v, m *big.Int) *big.Int {
	r := new(big.Int).Rem(v, m)
	if r.Sign() < 0 {
		r.Add(r, m)
	}
	return r
}

// Inverter computes multiplicative inverses modulo m.
type Inverter interface {
	// Inverse returns x in [0, m) with v*x = 1 (mod m).
	// Returns ErrNoInverse if v = 0 (mod m).
	Inverse(v, m *big.Int) (*big.Int, error)
}

// InverterFunc adapts an ordinary function to the [Inverter] interface.
type InverterFunc func(v, m *big.Int) (*big.Int, error)

// Inverse calls f(v, m).
func (f InverterFunc) Inverse(v, m *big.Int) (*big.Int, error) {
	return f(v, m)
}

var (
	// Euclid inverts with the iterative extended Euclidean algorithm.
	Euclid Inverter = InverterFunc(inverseEuclid)

	// Fermat inverts by computing v^(m-2) mod m. The result is only
	// meaningful when m is prime.
	Fermat Inverter = InverterFunc(inverseFermat)

	// Stdlib inverts with big.Int.ModInverse.
	Stdlib Inverter = InverterFunc(inverseStdlib)

	// BN254 inverts with gnark-crypto's BN254 scalar field element. It
	// returns ErrUnsupportedModulus for any other modulus.
	BN254 Inverter = InverterFunc(inverseBN254)
)

// DefaultInverter returns the strategy used by [ModInverse] and by curves
// built without an explicit inverter: the extended Euclidean algorithm,
// the same as [Euclid].
func DefaultInverter() Inverter {
	return InverterFunc(inverseEuclid)
}

var inverters = map[string]Inverter{
	"euclid": Euclid,
	"fermat": Fermat,
	"stdlib": Stdlib,
	"bn254":  BN254,
}

// InverterByName returns the strategy registered under name.
func InverterByName(name string) (Inverter, error) {
	inv, ok := inverters[name]
	if !ok {
		return nil, fmt.Errorf("field: unknown inverter %q (want one of %v)", name, InverterNames())
	}
	return inv, nil
}

// InverterNames returns the registered strategy names in sorted order.
func InverterNames() []string {
	names := make([]string, 0, len(inverters))
	for name := range inverters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ModInverse returns the inverse of v modulo m using [DefaultInverter].
func ModInverse(v, m *big.Int) (*big.Int, error) {
	return inverseEuclid(v, m)
}

func inverseEuclid(v, m *big.Int) (*big.Int, error) {
	r1 := Reduce(v, m)
	if r1.Sign() == 0 {
		return nil, ErrNoInverse
	}

	// Invariant: t_i * v = r_i (mod m).
	r0 := new(big.Int).Set(m)
	t0, t1 := new(big.Int), big.NewInt(1)
	q := new(big.Int)
	for r1.Sign() != 0 {
		q.Quo(r0, r1)
		r0, r1 = r1, new(big.Int).Sub(r0, new(big.Int).Mul(q, r1))
		t0, t1 = t1, new(big.Int).Sub(t0, new(big.Int).Mul(q, t1))
	}

	// r0 is gcd(v, m).
	if r0.Cmp(one) != 0 {
		return nil, ErrNoInverse
	}
	return Reduce(t0, m), nil
}

func inverseFermat(v, m *big.Int) (*big.Int, error) {
	r := Reduce(v, m)
	if r.Sign() == 0 {
		return nil, ErrNoInverse
	}
	e := new(big.Int).Sub(m, big.NewInt(2))
	return r.Exp(r, e, m), nil
}

func inverseStdlib(v, m *big.Int) (*big.Int, error) {
	r := Reduce(v, m)
	if r.Sign() == 0 {
		return nil, ErrNoInverse
	}
	if r.ModInverse(r, m) == nil {
		return nil, ErrNoInverse
	}
	return r, nil
}

func inverseBN254(v, m *big.Int) (*big.Int, error) {
	if m.Cmp(fr.Modulus()) != 0 {
		return nil, ErrUnsupportedModulus
	}
	var e fr.Element
	e.SetBigInt(v)
	if e.IsZero() {
		return nil, ErrNoInverse
	}
	e.Inverse(&e)
	return e.BigInt(new(big.Int)), nil
}
