package secp

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/secp256k1"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
)

const (
	// PointSize is the size of an encoded point.
	PointSize = 1 + fp.Bytes

	formatCompressedEven byte = 0x02
	formatCompressedOdd  byte = 0x03
)

// encodeCompressed writes the SEC1 compressed form of a into a new slice.
func encodeCompressed(a *secp256k1.G1Affine) []byte {
	out := make([]byte, PointSize)
	if a.IsInfinity() {
		return out
	}

	x := a.X.Bytes()
	y := a.Y.Bytes()
	out[0] = formatCompressedEven
	if y[fp.Bytes-1]&1 == 1 {
		out[0] = formatCompressedOdd
	}
	copy(out[1:], x[:])
	return out
}

// decodeCompressed parses the output of encodeCompressed into a.
func decodeCompressed(a *secp256k1.G1Affine, data []byte) error {
	if len(data) != PointSize {
		str := fmt.Sprintf("malformed point: invalid length: %d", len(data))
		return makeError(ErrPointInvalidLen, str)
	}

	format := data[0]
	switch format {
	case 0:
		for _, b := range data[1:] {
			if b != 0 {
				return makeError(ErrPointInvalidFormat, "malformed point: non-zero identity encoding")
			}
		}
		a.SetInfinity()
		return nil
	case formatCompressedEven, formatCompressedOdd:
	default:
		str := fmt.Sprintf("malformed point: unknown format: %#02x", format)
		return makeError(ErrPointInvalidFormat, str)
	}

	var x, y fp.Element
	if err := x.SetBytesCanonical(data[1:]); err != nil {
		return makeError(ErrPointXTooBig, "malformed point: x >= field prime")
	}

	// y^2 = x^3 + 7
	_, b := secp256k1.CurveCoefficients()
	var rhs fp.Element
	rhs.Square(&x).Mul(&rhs, &x).Add(&rhs, &b)
	if y.Sqrt(&rhs) == nil {
		str := fmt.Sprintf("invalid point: x coordinate %x is not on the curve", data[1:])
		return makeError(ErrPointNotOnCurve, str)
	}

	yb := y.Bytes()
	if wantOdd := format == formatCompressedOdd; (yb[fp.Bytes-1]&1 == 1) != wantOdd {
		y.Neg(&y)
	}

	a.X, a.Y = x, y
	return nil
}
