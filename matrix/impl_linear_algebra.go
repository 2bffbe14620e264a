// SPDX-License-Identifier: MIT
// Package matrix provides universal products on any Matrix implementation:
// matrix multiplication, matrix-vector and vector-matrix products and
// integer powers. All functions perform strict fail-fast validation and
// return clear errors on dimension mismatches.
//
// Notes:
//   - *Dense operands unlock flat-slice fast paths; any other Matrix goes
//     through the bounds-checked At/Set fallback with the same loop order.
//   - All kernels use central validators and wrap via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul    = "Mul"
	opMatVec = "MatVec"
	opVecMat = "VecMat"
	opPow    = "Pow"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders; every C[i,j] accumulates over k ascending in both paths.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies,
//     which matters for the upper-triangular transition matrices of absorbing chains.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// VecMat computes the row-vector product y = xᵀ · m, i.e. y[j] = Σ_i x[i]·m[i,j].
// MAIN DESCRIPTION:
//   - The state update of a Markov chain: p(t+1) = p(t) · P.
//
// Implementation:
//   - Stage 1: validate m non-nil and len(x) == m.Rows().
//   - Stage 2: *Dense: i outer, j inner, so each y[j] accumulates over i
//     ascending (left to right); rows with x[i] == 0 are skipped.
//   - Stage 3: fallback: j outer, i inner; same per-component order.
//
// Returns:
//   - []float64 of length m.Cols(); x is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func VecMat(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)

	var i, j int
	var xv float64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < d.r; i++ {
			xv = x[i]
			if xv == 0 {
				continue // contributes nothing to any y[j]
			}
			base = i * d.c
			for j = 0; j < d.c; j++ {
				y[j] += xv * d.data[base+j]
			}
		}

		return y, nil
	}

	var mv float64
	var err error
	for j = 0; j < cols; j++ {
		y[j] = ZeroSum
		for i = 0; i < rows; i++ {
			xv = x[i]
			if xv == 0 {
				continue
			}
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opVecMat, err)
			}
			y[j] += xv * mv
		}
	}

	return y, nil
}

// Pow returns mᵏ for a square m and k ≥ 0.
// Implementation:
//   - Stage 1: validate square non-nil and k ≥ 0.
//   - Stage 2: k == 0 → identity; k == 1 → clone.
//   - Stage 3: binary exponentiation over the bits of k, least significant
//     first: z = m, m², m⁴, ...; result accumulates result·z on set bits.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNegativeExponent.
//
// Determinism:
//   - The multiplication sequence depends only on k.
//
// Complexity:
//   - Time O(n³ log k), Space O(n²).
func Pow(m Matrix, k int) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPow, ErrNegativeExponent)
	}
	if k == 0 {
		id, err := NewIdentity(m.Rows())
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}

		return id, nil
	}
	if k == 1 {
		return m.Clone(), nil
	}

	var (
		z, result Matrix
		err       error
	)
	for k > 0 {
		if z == nil {
			z = m
		} else if z, err = Mul(z, z); err != nil {
			return nil, matrixErrorf(opPow, err)
		}
		if k&1 == 1 {
			if result == nil {
				result = z.Clone()
			} else if result, err = Mul(result, z); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		k >>= 1
	}

	return result, nil
}
