// Package group defines abstract interfaces for a prime-order elliptic
// curve group.
//
// This package provides three core interfaces:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of the group (points on an elliptic curve)
//   - [Group]: Factory and utility methods for creating scalars and points
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency. Operations
// like Add, Mul, and ScalarMult set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute a + b*c
//	result := g.NewScalar().Mul(b, c)
//	result = g.NewScalar().Add(a, result)
//
// Decoding and inversion return errors rather than panicking.
//
// # Base Point Multiplication
//
// [Group.ScalarBaseMult] computes s*G for the group generator G. It must
// agree exactly with the generic path:
//
//	a := g.ScalarBaseMult(s)
//	b := g.NewPoint().ScalarMult(s, g.Generator())
//	// a.Equal(b) is always true
//
// Implementations are free to answer it from precomputed tables. See the
// secp package for a secp256k1 implementation backed by the basemul table.
package group
