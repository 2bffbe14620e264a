// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the products and validators.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmarkov/matrix"
)

// absorbing5 is the five-state transition matrix of the reference scenario:
// upper triangular, last state absorbing.
var absorbing5 = [][]float64{
	{0.4, 0.25, 0.20, 0.10, 0.05},
	{0, 0.45, 0.25, 0.20, 0.10},
	{0, 0, 0.3, 0.45, 0.25},
	{0, 0, 0, 0.35, 0.65},
	{0, 0, 0, 0, 1},
}

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustSet writes m[i,j] = v or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareClose asserts element-wise closeness of want and m via AllClose.
func CompareClose(t testing.TB, want [][]float64, m matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(MustRows(t, want), m, 0, atol)
	require.NoError(t, err)
	require.True(t, ok, "got\n%v", m)
}

// RandomStochastic returns an n×n row-stochastic *Dense with a fixed seed.
// Each row draws n uniforms and divides them by their sum.
func RandomStochastic(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	row := make([]float64, n)
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < n; j++ {
			row[j] = rng.Float64() + 1e-3
			sum += row[j]
		}
		for j = 0; j < n; j++ {
			MustSet(t, m, i, j, row[j]/sum)
		}
	}

	return m
}

// unitVec returns e_k of length n.
func unitVec(n, k int) []float64 {
	v := make([]float64, n)
	v[k] = 1

	return v
}
