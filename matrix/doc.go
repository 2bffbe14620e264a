// Package matrix provides the dense linear-algebra primitives used by the
// Markov chain model: a row-major Dense matrix, centralized validators and
// the products a chain needs.
//
// The matrix package provides:
//
//   - Dense, a bounds-checked row-major implementation of Matrix.
//   - Mul (A·B), MatVec (A·x) and VecMat (xᵀ·A, row vector times matrix).
//   - Pow (Aᵏ by binary exponentiation, identity for k == 0).
//   - RowSums, AllClose and ValidateRowStochastic for transition matrices.
//
// All kernels use fixed loop orders, so the same inputs always produce the
// same bits. Errors are package sentinels (see errors.go) matched via errors.Is.
//
// See example_test.go for usage patterns.
package matrix
