// Package secp provides a secp256k1 implementation of the [group.Group]
// interface.
//
// Field and curve arithmetic come from gnark-crypto's ecc/secp256k1
// package. Points are kept in Jacobian coordinates while computing and
// are converted to affine form only to encode or compare them.
//
// # Encoding
//
// Points encode to 33 bytes in the SEC1 compressed format: a prefix byte
// of 0x02 (even Y) or 0x03 (odd Y) followed by the big-endian X
// coordinate. The identity encodes as 33 zero bytes so every encoding has
// the same length. Scalars encode to 32 big-endian bytes.
//
// # Base Point Multiplication
//
// [Secp256k1.ScalarBaseMult] is answered from a [basemul.Table]. The zero
// value of Secp256k1 uses the process-wide [basemul.Default] table; use
// [New] to supply a table explicitly:
//
//	g := secp.New(basemul.NewTable())
//	pub := g.ScalarBaseMult(secret)
//
// # Security
//
// gnark-crypto documents its secp256k1 code as not constant time, and the
// table lookups leak the scalar bytes through memory access patterns. Do
// not use this package where timing side channels matter.
package secp
