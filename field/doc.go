// Package field provides the prime-field arithmetic used by the Baby Jubjub
// curve engine: reduction of arbitrary integers to their canonical residue
// and computation of multiplicative inverses.
//
// All functions operate on math/big integers at full precision and never
// mutate their arguments.
//
// # Reduction
//
// [Reduce] always returns a value in [0, m), including for negative inputs
// produced by subtraction:
//
//	r := field.Reduce(big.NewInt(-3), big.NewInt(7)) // r == 4
//
// # Inverse Strategies
//
// Several interchangeable [Inverter] implementations are provided so they can
// be compared against each other:
//
//   - [Euclid]: extended Euclidean algorithm (the default, see [DefaultInverter])
//   - [Fermat]: exponentiation by m-2, valid only for prime moduli
//   - [Stdlib]: math/big's ModInverse
//   - [BN254]: gnark-crypto's BN254 scalar field element, valid only for the
//     BN254 scalar field modulus
//
// Every strategy returns [ErrNoInverse] when the value is congruent to zero.
package field
