package basemul

import (
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fr"
)

// ScalarSize is the size of a Scalar in bytes.
const ScalarSize = 32

// Scalar is a 256-bit multiplier in little-endian byte order: byte i
// selects the column of row i. Every byte pattern is accepted, values at
// or above the group order act modulo the order.
type Scalar [ScalarSize]byte

// ScalarFromElement returns the little-endian form of e.
func ScalarFromElement(e *fr.Element) Scalar {
	var s Scalar
	fr.LittleEndian.PutElement((*[fr.Bytes]byte)(&s), *e)
	return s
}

// ScalarFromBytes converts a 32-byte big-endian value into a Scalar
// without reducing it.
func ScalarFromBytes(be *[ScalarSize]byte) Scalar {
	var s Scalar
	for i := range s {
		s[i] = be[ScalarSize-1-i]
	}
	return s
}
