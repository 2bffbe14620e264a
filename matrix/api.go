// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

import "math"

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: The neutral element of Pow (m⁰ = I).
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)). No custom loops.
// Complexity: O(rc).
//
// AI-Hints: Used by stochastic validation of transition matrices.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	cols := m.Cols()
	ones := make([]float64, cols)
	for j := 0; j < cols; j++ {
		ones[j] = 1.0
	}

	return MatVec(m, ones) // O(rc), kernel validates lengths
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything. Deterministic.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	const tag = "AllClose"
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(tag, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(tag, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, matrixErrorf(tag, ErrDimensionMismatch)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return sliceClose(da.data, db.data, rtol, atol), nil
		}
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}

// VecAllClose is AllClose for vectors of equal length.
// Returns ErrDimensionMismatch when lengths differ.
func VecAllClose(a, b []float64, rtol, atol float64) (bool, error) {
	if len(a) != len(b) {
		return false, matrixErrorf("VecAllClose", ErrDimensionMismatch)
	}

	return sliceClose(a, b, math.Abs(rtol), math.Abs(atol)), nil
}

// sliceClose is the shared flat loop; the negated comparison rejects NaN.
func sliceClose(a, b []float64, rtol, atol float64) bool {
	for idx := range a {
		if !(math.Abs(a[idx]-b[idx]) <= atol+rtol*math.Abs(b[idx])) {
			return false // early-exit on first violation
		}
	}

	return true
}
