// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/stochastic checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and still match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only ValidateRowStochastic allocates
//    (one row-sum vector).
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (use ValidateSquareNonNil otherwise).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects any NaN/±Inf element.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // in range by construction
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, i, j, ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateRowStochastic checks that m is square, every entry lies in [0, 1]
// and every row sums to 1 within eps (WithEpsilon, DefaultEpsilon otherwise).
//
// Implementation:
//   - Stage 1: NotNil → Square.
//   - Stage 2: fixed i→j scan for entries outside [-eps, 1+eps].
//   - Stage 3: RowSums and compare |sum-1| ≤ eps.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNotStochastic.
// Complexity: O(n²).
// AI-Hints: Use before treating a matrix as a Markov transition operator.
func ValidateRowStochastic(m Matrix, opts ...Option) error {
	const tag = "ValidateRowStochastic"
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf(tag, err)
	}
	eps := gatherOptions(opts...).eps

	var bad error
	visit := func(i, j int, v float64) bool {
		if v < -eps || v > 1+eps || math.IsNaN(v) {
			bad = denseErrorf(ctxAt, i, j, ErrNotStochastic)
			return false
		}
		return true
	}
	if d, ok := m.(*Dense); ok {
		d.Do(visit) // flat fast-path
	} else {
		var i, j int
		var v float64
	scan:
		for i = 0; i < m.Rows(); i++ {
			for j = 0; j < m.Cols(); j++ {
				v, _ = m.At(i, j)
				if !visit(i, j, v) {
					break scan
				}
			}
		}
	}
	if bad != nil {
		return validatorErrorf(tag, bad)
	}

	sums, err := RowSums(m)
	if err != nil {
		return validatorErrorf(tag, err)
	}
	for i, s := range sums {
		if math.Abs(s-1) > eps {
			return validatorErrorf(tag, fmt.Errorf("row %d sums to %g: %w", i, s, ErrNotStochastic))
		}
	}

	return nil
}

// ValidateDistribution checks that x is a probability vector: every entry in
// [0, 1] and Σx = 1 within eps.
// Errors: ErrNilMatrix (nil x), ErrNotStochastic.
// Complexity: O(n).
func ValidateDistribution(x []float64, opts ...Option) error {
	const tag = "ValidateDistribution"
	if x == nil {
		return validatorErrorf(tag, ErrNilMatrix)
	}
	eps := gatherOptions(opts...).eps
	sum := ZeroSum
	for i, v := range x {
		if v < -eps || v > 1+eps || math.IsNaN(v) {
			return validatorErrorf(tag, fmt.Errorf("entry %d = %g: %w", i, v, ErrNotStochastic))
		}
		sum += v
	}
	if math.Abs(sum-1) > eps {
		return validatorErrorf(tag, fmt.Errorf("sum %g: %w", sum, ErrNotStochastic))
	}

	return nil
}
