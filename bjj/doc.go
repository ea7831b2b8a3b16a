// Package bjj implements point arithmetic on the Baby Jubjub twisted Edwards
// curve.
//
// Baby Jubjub is a twisted Edwards curve defined over the scalar field of
// BN254 (also known as alt_bn128). It is commonly used in zero-knowledge
// proof systems and privacy-preserving applications.
//
// Coordinates and scalars are math/big integers, so every intermediate
// product is computed at full precision before it is reduced into the field
// with [field.Reduce]. Denominators are inverted with a [field.Inverter],
// selectable per curve.
//
// # Curve Parameters
//
// Baby Jubjub is defined by the equation:
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2
//
// where a = 168700 and d = 168696 over the BN254 scalar field.
//
// The curve has a prime-order subgroup of size:
//
//	2736030358979909402780800718157159386076813972158567259200215660948447373041
//
// # Usage
//
//	c := bjj.BabyJubjub()
//	p, err := c.MulScalar(bjj.Base8(), k)
//	if err != nil {
//		return err
//	}
//	sum, err := c.Add(p, bjj.Base8())
//
// Arbitrary twisted Edwards parameters can be supplied with [New] or
// [NewWithInverter].
//
// # Interoperability
//
// gnark-crypto stores the same curve in reduced form (a = -1). Use
// [ToReduced] and [FromReduced] to move points between the two.
//
// # Security
//
// This package performs no on-curve or subgroup checks on its inputs and is
// not constant time. Point encoding is left to callers.
package bjj
