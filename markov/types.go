// SPDX-License-Identifier: MIT

// Package markov: domain types shared by the chain, its backends and reporters.
package markov

import (
	"math"

	"github.com/katalvlaran/lvmarkov/matrix"
)

// DefaultSteps is the step count used when a caller does not choose one.
const DefaultSteps = 5

// StateVector is a probability distribution over the n states of a chain.
// Values handed out by a Chain are always fresh copies.
type StateVector []float64

// Len returns the number of states.
func (v StateVector) Len() int { return len(v) }

// Sum returns Σv, accumulated left to right.
func (v StateVector) Sum() float64 {
	s := matrix.ZeroSum
	for _, x := range v {
		s += x
	}

	return s
}

// Clone returns an independent copy (nil stays nil).
func (v StateVector) Clone() StateVector {
	if v == nil {
		return nil
	}
	out := make(StateVector, len(v))
	copy(out, v)

	return out
}

// MaxAbsDiff returns max_i |v[i]-o[i]| (L∞ distance).
// Vectors of different length are infinitely far apart.
func (v StateVector) MaxAbsDiff(o StateVector) float64 {
	if len(v) != len(o) {
		return math.Inf(1)
	}
	var d float64
	for i := range v {
		if x := math.Abs(v[i] - o[i]); x > d || math.IsNaN(x) {
			d = x
		}
	}

	return d
}

// IsDistribution reports whether every entry is in [0, 1] and the entries
// sum to 1, all within eps.
func (v StateVector) IsDistribution(eps float64) bool {
	return matrix.ValidateDistribution(v, matrix.WithEpsilon(math.Abs(eps))) == nil
}

// Backend is the numeric capability a Chain depends on.
// Implementations must not mutate their arguments.
type Backend interface {
	// Name identifies the backend in logs and configuration.
	Name() string

	// VecMul returns the row-vector product xᵀ·m.
	VecMul(x []float64, m matrix.Matrix) ([]float64, error)

	// Mul returns the matrix product a·b.
	Mul(a, b matrix.Matrix) (matrix.Matrix, error)

	// Pow returns mᵏ for k ≥ 0 (identity for k == 0).
	Pow(m matrix.Matrix, k int) (matrix.Matrix, error)
}
