// SPDX-License-Identifier: MIT

package markov

import "github.com/katalvlaran/lvmarkov/matrix"

// DenseBackend is the default Backend, delegating to the kernels of package
// matrix (flat fast paths for *matrix.Dense, fixed summation order).
type DenseBackend struct{}

var _ Backend = DenseBackend{}

// Name implements Backend.
func (DenseBackend) Name() string { return "dense" }

// VecMul implements Backend via matrix.VecMat.
func (DenseBackend) VecMul(x []float64, m matrix.Matrix) ([]float64, error) {
	return matrix.VecMat(x, m)
}

// Mul implements Backend via matrix.Mul.
func (DenseBackend) Mul(a, b matrix.Matrix) (matrix.Matrix, error) {
	return matrix.Mul(a, b)
}

// Pow implements Backend via matrix.Pow (binary exponentiation).
func (DenseBackend) Pow(m matrix.Matrix, k int) (matrix.Matrix, error) {
	return matrix.Pow(m, k)
}
