package secp

import (
	"bytes"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/ozwaldorf/vanity-secp256k1/basemul"
	"github.com/ozwaldorf/vanity-secp256k1/group"
	"github.com/tmthrgd/go-hex"
)

var _ group.Group = (*Secp256k1)(nil)

const generatorHex = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

func scalarFromInt(t *testing.T, g group.Group, n int64) group.Scalar {
	t.Helper()
	buf := make([]byte, ScalarSize)
	new(big.Int).SetInt64(n).FillBytes(buf)
	s, err := g.NewScalar().SetBytes(buf)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestScalar(t *testing.T) {
	g := &Secp256k1{}

	t.Run("AddSub", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b, _ := g.RandomScalar(rand.Reader)

		sum := g.NewScalar().Add(a, b)
		diff := g.NewScalar().Sub(sum, b)

		if !diff.Equal(a) {
			t.Error("(a+b)-b != a")
		}
	})

	t.Run("MulInvert", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		aInv, err := g.NewScalar().Invert(a)
		if err != nil {
			t.Fatal(err)
		}

		product := g.NewScalar().Mul(a, aInv)
		if !product.Equal(scalarFromInt(t, g, 1)) {
			t.Error("a*a^-1 != 1")
		}
	})

	t.Run("InvertZeroFails", func(t *testing.T) {
		_, err := g.NewScalar().Invert(g.NewScalar())
		if !errors.Is(err, ErrScalarZero) {
			t.Errorf("expected ErrScalarZero, got %v", err)
		}
	})

	t.Run("Negate", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		negA := g.NewScalar().Negate(a)

		if !g.NewScalar().Add(a, negA).IsZero() {
			t.Error("a + (-a) != 0")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)

		restored, err := g.NewScalar().SetBytes(a.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equal(a) {
			t.Error("scalar bytes roundtrip failed")
		}
	})

	t.Run("SetBytesReduces", func(t *testing.T) {
		// n + 1 reduces to 1.
		n := new(big.Int).SetBytes(g.Order())
		buf := n.Add(n, big.NewInt(1)).FillBytes(make([]byte, ScalarSize))
		s, err := g.NewScalar().SetBytes(buf)
		if err != nil {
			t.Fatal(err)
		}
		if !s.Equal(scalarFromInt(t, g, 1)) {
			t.Error("n+1 did not reduce to 1")
		}
	})

	t.Run("SetBytesWrongLength", func(t *testing.T) {
		for _, n := range []int{0, 31, 33} {
			_, err := g.NewScalar().SetBytes(make([]byte, n))
			if !errors.Is(err, ErrScalarInvalidLen) {
				t.Errorf("len %d: expected ErrScalarInvalidLen, got %v", n, err)
			}
		}
	})

	t.Run("LittleEndian", func(t *testing.T) {
		s := scalarFromInt(t, g, 0x0102).(*Scalar)
		le := s.LittleEndian()
		if le[0] != 0x02 || le[1] != 0x01 || le[31] != 0 {
			t.Errorf("unexpected little-endian form %x", le)
		}
	})

	t.Run("RandomScalarNonZero", func(t *testing.T) {
		// A reader that first yields the order (rejected) and then zero
		// (rejected) before a valid value.
		var stream []byte
		stream = append(stream, g.Order()...)
		stream = append(stream, make([]byte, ScalarSize)...)
		one := make([]byte, ScalarSize)
		one[ScalarSize-1] = 1
		stream = append(stream, one...)

		s, err := g.RandomScalar(bytes.NewReader(stream))
		if err != nil {
			t.Fatal(err)
		}
		if !s.Equal(scalarFromInt(t, g, 1)) {
			t.Error("RandomScalar did not skip out of range values")
		}
	})

	t.Run("RandomScalarShortRead", func(t *testing.T) {
		if _, err := g.RandomScalar(bytes.NewReader([]byte{1, 2, 3})); err == nil {
			t.Error("expected error on short read")
		}
	})
}

func TestPoint(t *testing.T) {
	g := &Secp256k1{}

	t.Run("AddSub", func(t *testing.T) {
		s1, _ := g.RandomScalar(rand.Reader)
		s2, _ := g.RandomScalar(rand.Reader)
		P := g.NewPoint().ScalarMult(s1, g.Generator())
		Q := g.NewPoint().ScalarMult(s2, g.Generator())

		sum := g.NewPoint().Add(P, Q)
		diff := g.NewPoint().Sub(sum, Q)

		if !diff.Equal(P) {
			t.Error("(P+Q)-Q != P")
		}
	})

	t.Run("AddAliased", func(t *testing.T) {
		P := g.Generator()
		P.Add(P, P)
		want := g.NewPoint().ScalarMult(scalarFromInt(t, g, 2), g.Generator())
		if !P.Equal(want) {
			t.Error("P.Add(P, P) != 2P")
		}
	})

	t.Run("Negate", func(t *testing.T) {
		s, _ := g.RandomScalar(rand.Reader)
		P := g.NewPoint().ScalarMult(s, g.Generator())
		negP := g.NewPoint().Negate(P)

		if !g.NewPoint().Add(P, negP).IsIdentity() {
			t.Error("P + (-P) != identity")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		for i := 0; i < 32; i++ {
			s, _ := g.RandomScalar(rand.Reader)
			P := g.ScalarBaseMult(s)

			enc := P.Bytes()
			if len(enc) != PointSize {
				t.Fatalf("encoding has %d bytes", len(enc))
			}
			restored, err := g.NewPoint().SetBytes(enc)
			if err != nil {
				t.Fatal(err)
			}
			if !restored.Equal(P) {
				t.Fatal("point bytes roundtrip failed")
			}
			if !bytes.Equal(restored.Bytes(), enc) {
				t.Fatal("re-encoding differs")
			}
		}
	})

	t.Run("IdentityRoundtrip", func(t *testing.T) {
		enc := g.NewPoint().Bytes()
		if !bytes.Equal(enc, make([]byte, PointSize)) {
			t.Errorf("identity encodes to %x", enc)
		}
		P, err := g.NewPoint().SetBytes(enc)
		if err != nil {
			t.Fatal(err)
		}
		if !P.IsIdentity() {
			t.Error("decoded identity is not the identity")
		}
	})

	t.Run("GeneratorEncoding", func(t *testing.T) {
		if got := hex.EncodeToString(g.Generator().Bytes()); got != generatorHex {
			t.Errorf("generator encodes to %s", got)
		}
	})

	t.Run("IsIdentity", func(t *testing.T) {
		if !g.NewPoint().IsIdentity() {
			t.Error("new point should be identity")
		}
		if g.Generator().IsIdentity() {
			t.Error("generator should not be identity")
		}
	})
}

func TestPointDecodeErrors(t *testing.T) {
	g := &Secp256k1{}
	gen := g.Generator().Bytes()

	withPrefix := func(prefix byte) []byte {
		b := append([]byte(nil), gen...)
		b[0] = prefix
		return b
	}

	// p = 2^256 - 2^32 - 977, encoded as X.
	p, _ := hex.DecodeString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	// x = 5 gives x^3 + 7 = 132, which is not a square mod p.
	notOnCurve := make([]byte, PointSize)
	notOnCurve[0] = formatCompressedEven
	notOnCurve[PointSize-1] = 5

	tests := []struct {
		name string
		data []byte
		want ErrorKind
	}{
		{"empty", nil, ErrPointInvalidLen},
		{"short", gen[:PointSize-1], ErrPointInvalidLen},
		{"uncompressed prefix", withPrefix(0x04), ErrPointInvalidFormat},
		{"hybrid prefix", withPrefix(0x06), ErrPointInvalidFormat},
		{"dirty identity", withPrefix(0x00), ErrPointInvalidFormat},
		{"x equals prime", append([]byte{formatCompressedEven}, p...), ErrPointXTooBig},
		{"x not on curve", notOnCurve, ErrPointNotOnCurve},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := g.NewPoint().SetBytes(test.data)
			if !errors.Is(err, test.want) {
				t.Errorf("got %v, want %v", err, test.want)
			}
			var e Error
			if !errors.As(err, &e) {
				t.Errorf("error %v is not an Error", err)
			}
		})
	}
}

func TestScalarBaseMult(t *testing.T) {
	g := &Secp256k1{}
	par := &Secp256k1{Parallel: true}
	explicit := New(basemul.NewTable())

	t.Run("MatchesScalarMult", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			s, _ := g.RandomScalar(rand.Reader)
			want := g.NewPoint().ScalarMult(s, g.Generator())

			if got := g.ScalarBaseMult(s); !got.Equal(want) {
				t.Fatal("ScalarBaseMult != ScalarMult")
			}
			if got := par.ScalarBaseMult(s); !got.Equal(want) {
				t.Fatal("parallel ScalarBaseMult != ScalarMult")
			}
			if got := explicit.ScalarBaseMult(s); !got.Equal(want) {
				t.Fatal("ScalarBaseMult with explicit table != ScalarMult")
			}
		}
	})

	t.Run("Zero", func(t *testing.T) {
		if !g.ScalarBaseMult(g.NewScalar()).IsIdentity() {
			t.Error("0*G != identity")
		}
	})

	t.Run("One", func(t *testing.T) {
		P := g.ScalarBaseMult(scalarFromInt(t, g, 1))
		if got := hex.EncodeToString(P.Bytes()); got != generatorHex {
			t.Errorf("1*G encodes to %s", got)
		}
	})

	t.Run("Two", func(t *testing.T) {
		P := g.ScalarBaseMult(scalarFromInt(t, g, 2))
		want := g.NewPoint().Add(g.Generator(), g.Generator())
		if !P.Equal(want) {
			t.Error("2*G != G+G")
		}
	})

	t.Run("OrderMinusOne", func(t *testing.T) {
		s := g.NewScalar().Negate(scalarFromInt(t, g, 1))
		P := g.ScalarBaseMult(s)
		want := g.NewPoint().Negate(g.Generator())
		if !P.Equal(want) {
			t.Error("(n-1)*G != -G")
		}
	})

	t.Run("DefaultTable", func(t *testing.T) {
		if g.Table() != basemul.Default() {
			t.Error("zero value does not use the default table")
		}
	})
}
