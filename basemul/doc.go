// Package basemul implements fixed-base scalar multiplication for the
// secp256k1 group using a byte-indexed precomputed table.
//
// The table holds 32 rows of 256 affine points. Row i, column j stores
//
//	(j * 256^i) * G
//
// so for a scalar s with little-endian bytes s[0..31]
//
//	s*G = table[0][s[0]] + table[1][s[1]] + ... + table[31][s[31]]
//
// and a multiplication costs 31 mixed additions and no doublings.
//
// Build the table once with [NewTable], or use the process-wide [Default],
// and share it freely: it is never written after construction, so any
// number of goroutines may call [Table.Mul] and [Table.MulParallel]
// concurrently without locking.
//
// The combiners run in variable time. They must not be used where the
// scalar has to be protected from timing side channels.
package basemul
