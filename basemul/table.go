package basemul

import (
	"sync"

	"github.com/consensys/gnark-crypto/ecc/secp256k1"
)

const (
	// Rows is the number of table rows, one per scalar byte.
	Rows = ScalarSize
	// Cols is the number of table columns, one per byte value.
	Cols = 256

	// doublingsPerRow turns row i-1 into row i (2^8 = 256).
	doublingsPerRow = 8
)

// Table is the precomputed fixed-base table. The zero value is not usable,
// create one with NewTable.
type Table struct {
	rows [Rows][Cols]secp256k1.G1Affine
}

// Default returns a process-wide table, building it on first use.
var Default = sync.OnceValue(NewTable)

// NewTable builds the table for the secp256k1 generator.
//
// Row 0 is filled by repeated addition of G starting from the identity.
// Every following row is the previous one with each entry doubled eight
// times. Points stay in Jacobian form while they are computed and each row
// is converted to affine with a single batched inversion.
func NewTable() *Table {
	t := new(Table)
	_, g := secp256k1.Generators()

	row := make([]secp256k1.G1Jac, Cols)
	row[0] = Identity()
	for j := 0; j < Cols-1; j++ {
		row[j+1] = row[j]
		row[j+1].AddMixed(&g)
	}
	t.setRow(0, row)

	for i := 1; i < Rows; i++ {
		for j := range row {
			row[j].FromAffine(&t.rows[i-1][j])
			for k := 0; k < doublingsPerRow; k++ {
				row[j].DoubleAssign()
			}
		}
		t.setRow(i, row)
	}

	return t
}

func (t *Table) setRow(i int, row []secp256k1.G1Jac) {
	copy(t.rows[i][:], secp256k1.BatchJacobianToAffineG1(row))
}

// Entry returns the point stored at row, col, that is (col * 256^row) * G.
// The returned point belongs to the table and must not be modified.
func (t *Table) Entry(row, col int) *secp256k1.G1Affine {
	return &t.rows[row][col]
}

// Mul returns s*G in Jacobian coordinates.
func (t *Table) Mul(s *Scalar) secp256k1.G1Jac {
	var acc secp256k1.G1Jac
	acc.FromAffine(&t.rows[0][s[0]])
	for i := 1; i < Rows; i++ {
		acc.AddMixed(&t.rows[i][s[i]])
	}
	return acc
}
