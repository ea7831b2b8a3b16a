// Package commands defines the bjj CLI, a thin calculator over the bjj and
// field packages.
//
// Commands
//
//   - add      Add two points
//   - mul      Multiply a point by a non-negative scalar
//   - inverse  Invert an integer modulo a prime
//   - oncurve  Check whether a point satisfies the curve equation
//
// Integers are read in decimal, or in hex with a 0x prefix. Points are
// printed as "x,y" in decimal.
package commands
