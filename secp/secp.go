package secp

import (
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/secp256k1"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fr"
	"github.com/ozwaldorf/vanity-secp256k1/basemul"
	"github.com/ozwaldorf/vanity-secp256k1/group"
)

// ScalarSize is the size of an encoded scalar.
const ScalarSize = fr.Bytes

// Scalar represents an element of the secp256k1 scalar field.
// It implements [group.Scalar] by wrapping gnark-crypto's fr.Element, so
// every operation is already reduced modulo the group order.
type Scalar struct {
	inner fr.Element
}

// Add sets s to a + b (mod n) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b (mod n) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Sub(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Mul sets s to a * b (mod n) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Mul(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Negate sets s to -a (mod n) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.Neg(&a.(*Scalar).inner)
	return s
}

// Invert sets s to a^(-1) (mod n) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, makeError(ErrScalarZero, "cannot invert zero scalar")
	}
	s.inner.Inverse(&aScalar.inner)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(&a.(*Scalar).inner)
	return s
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

// SetBytes sets s from a 32-byte big-endian slice and returns s.
// Values at or above the group order are reduced.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != ScalarSize {
		str := fmt.Sprintf("malformed scalar: invalid length: %d", len(data))
		return nil, makeError(ErrScalarInvalidLen, str)
	}
	s.inner.SetBytes(data)
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equal(&b.(*Scalar).inner)
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// LittleEndian returns s in the byte order used by the basemul table.
func (s *Scalar) LittleEndian() basemul.Scalar {
	return basemul.ScalarFromElement(&s.inner)
}

func (s *Scalar) bigInt() *big.Int {
	return s.inner.BigInt(new(big.Int))
}

// Point represents a point on the secp256k1 curve.
// It implements [group.Point] by wrapping gnark-crypto's G1Jac.
//
// The identity element has Z = 0.
type Point struct {
	inner secp256k1.G1Jac
}

func newIdentity() *Point {
	return &Point{inner: basemul.Identity()}
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	p.inner = basemul.Combine(&a.(*Point).inner, &b.(*Point).inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	var negB secp256k1.G1Jac
	negB.Neg(&b.(*Point).inner)
	p.inner = basemul.Combine(&a.(*Point).inner, &negB)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	p.inner.Neg(&a.(*Point).inner)
	return p
}

// ScalarMult sets p to s * q and returns p. This is the generic
// variable-base path; it does not use the precomputed table.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	var r secp256k1.G1Jac
	r.ScalarMultiplication(&q.(*Point).inner, s.(*Scalar).bigInt())
	p.inner = r
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*Point).inner)
	return p
}

// Bytes returns the SEC1 compressed encoding of p.
func (p *Point) Bytes() []byte {
	a := p.Affine()
	return encodeCompressed(&a)
}

// SetBytes sets p from a SEC1 compressed encoding and returns p.
// Returns an error if the data does not represent a valid curve point.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	var a secp256k1.G1Affine
	if err := decodeCompressed(&a, data); err != nil {
		return nil, err
	}
	p.inner.FromAffine(&a)
	return p, nil
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*Point).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.inner.Z.IsZero()
}

// Affine returns p in affine coordinates.
func (p *Point) Affine() secp256k1.G1Affine {
	var a secp256k1.G1Affine
	a.FromJacobian(&p.inner)
	return a
}

// Secp256k1 implements [group.Group] for the secp256k1 curve.
//
// The zero value is ready to use and multiplies with [basemul.Default].
type Secp256k1 struct {
	table *basemul.Table

	// Parallel selects the parallel table combiner for ScalarBaseMult.
	Parallel bool
}

// New returns a Secp256k1 that multiplies the generator using t.
func New(t *basemul.Table) *Secp256k1 {
	return &Secp256k1{table: t}
}

// Table returns the table used by ScalarBaseMult.
func (g *Secp256k1) Table() *basemul.Table {
	if g.table == nil {
		return basemul.Default()
	}
	return g.table
}

// NewScalar returns a new scalar initialized to zero.
func (g *Secp256k1) NewScalar() group.Scalar {
	return new(Scalar)
}

// NewPoint returns a new point initialized to the identity element.
func (g *Secp256k1) NewPoint() group.Point {
	return newIdentity()
}

// Generator returns the standard secp256k1 base point.
func (g *Secp256k1) Generator() group.Point {
	gen, _ := secp256k1.Generators()
	return &Point{inner: gen}
}

// RandomScalar reads 32 bytes at a time from r until they encode a
// non-zero value below the group order, so the result is uniform in
// [1, n).
func (g *Secp256k1) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [ScalarSize]byte
	s := new(Scalar)
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		if err := s.inner.SetBytesCanonical(buf[:]); err != nil {
			continue
		}
		if !s.IsZero() {
			return s, nil
		}
	}
}

// ScalarBaseMult returns s * G using the precomputed table.
func (g *Secp256k1) ScalarBaseMult(s group.Scalar) group.Point {
	le := s.(*Scalar).LittleEndian()
	t := g.Table()
	if g.Parallel {
		return &Point{inner: t.MulParallel(&le)}
	}
	return &Point{inner: t.Mul(&le)}
}

// Order returns the order of the secp256k1 group as a big-endian byte
// slice.
func (g *Secp256k1) Order() []byte {
	return fr.Modulus().Bytes()
}
