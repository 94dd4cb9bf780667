package basemul

import (
	"runtime"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/secp256k1"
)

// Identity returns the neutral element of Combine.
func Identity() secp256k1.G1Jac {
	var p secp256k1.G1Jac
	p.X.SetOne()
	p.Y.SetOne()
	return p
}

// Combine returns a+b. It is associative and commutative with Identity as
// its neutral element, so partial sums may be folded in any grouping and
// order.
func Combine(a, b *secp256k1.G1Jac) secp256k1.G1Jac {
	r := *a
	r.AddAssign(b)
	return r
}

// Reduce folds points with Combine starting from Identity.
func Reduce(points ...secp256k1.G1Jac) secp256k1.G1Jac {
	acc := Identity()
	for i := range points {
		acc = Combine(&acc, &points[i])
	}
	return acc
}

// MulParallel returns s*G, splitting the lookups across GOMAXPROCS
// goroutines. The result equals Mul(s).
func (t *Table) MulParallel(s *Scalar) secp256k1.G1Jac {
	return t.MulParallelN(s, runtime.GOMAXPROCS(0))
}

// MulParallelN returns s*G, splitting the 32 rows into workers contiguous
// chunks summed concurrently. workers is clamped to [1, Rows].
func (t *Table) MulParallelN(s *Scalar, workers int) secp256k1.G1Jac {
	workers = max(1, min(workers, Rows))

	partials := make([]secp256k1.G1Jac, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		lo, hi := w*Rows/workers, (w+1)*Rows/workers
		go func() {
			defer wg.Done()
			acc := Identity()
			for i := lo; i < hi; i++ {
				acc.AddMixed(&t.rows[i][s[i]])
			}
			partials[w] = acc
		}()
	}
	wg.Wait()

	return Reduce(partials...)
}
