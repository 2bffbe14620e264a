// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmarkov/matrix"
)

func TestMul_Basic(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{58, 64}, {139, 154}}, c, 0)
}

func TestMul_Errors(t *testing.T) {
	a := MustDense(t, 2, 3)
	_, err := matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestProducts_FallbackMatchesFastPath hides the concrete type of one operand
// and expects bitwise-identical results: both paths accumulate in the same order.
func TestProducts_FallbackMatchesFastPath(t *testing.T) {
	t.Parallel()
	p := RandomStochastic(t, 7, 99)
	q := RandomStochastic(t, 7, 100)

	fast, err := matrix.Mul(p, q)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{p}, q)
	require.NoError(t, err)
	require.Equal(t, fast.(*matrix.Dense).ToRows(), slow.(*matrix.Dense).ToRows())

	x := []float64{0.1, 0, 0.2, 0.3, 0, 0.25, 0.15}
	vf, err := matrix.VecMat(x, p)
	require.NoError(t, err)
	vs, err := matrix.VecMat(x, hide{p})
	require.NoError(t, err)
	require.Equal(t, vf, vs)

	mf, err := matrix.MatVec(p, x)
	require.NoError(t, err)
	ms, err := matrix.MatVec(hide{p}, x)
	require.NoError(t, err)
	require.Equal(t, mf, ms)
}

func TestMatVec(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := matrix.MatVec(m, []float64{1, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -1}, y)

	_, err = matrix.MatVec(m, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestVecMat(t *testing.T) {
	p := MustRows(t, absorbing5)

	// A unit vector selects the corresponding row.
	var k int
	for k = 0; k < 5; k++ {
		y, err := matrix.VecMat(unitVec(5, k), p)
		require.NoError(t, err)
		require.Equal(t, absorbing5[k], y, "row %d", k)
	}

	x := []float64{0.5, 0.5, 0, 0, 0}
	y, err := matrix.VecMat(x, p)
	require.NoError(t, err)
	ok, err := matrix.VecAllClose(y, []float64{0.2, 0.35, 0.225, 0.15, 0.075}, 0, 1e-15)
	require.NoError(t, err)
	require.True(t, ok, "%v", y)
	require.Equal(t, []float64{0.5, 0.5, 0, 0, 0}, x, "input must not be mutated")
}

func TestVecMat_Errors(t *testing.T) {
	p := MustDense(t, 4, 4)
	_, err := matrix.VecMat(make([]float64, 5), p)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.VecMat(make([]float64, 4), nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	// Non-square is fine as long as len(x) == Rows.
	r := MustRows(t, [][]float64{{1, 2, 3}})
	y, err := matrix.VecMat([]float64{2}, r)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, y)
}

func TestPow_ZeroAndOne(t *testing.T) {
	p := MustRows(t, absorbing5)

	id, err := matrix.Pow(p, 0)
	require.NoError(t, err)
	want, err := matrix.NewIdentity(5)
	require.NoError(t, err)
	require.Equal(t, want.ToRows(), id.(*matrix.Dense).ToRows())

	one, err := matrix.Pow(p, 1)
	require.NoError(t, err)
	require.Equal(t, absorbing5, one.(*matrix.Dense).ToRows())
	MustSet(t, one, 0, 0, 7)
	require.Equal(t, 0.4, MustAt(t, p, 0, 0), "Pow(m, 1) must be a copy")
}

func TestPow_MatchesRepeatedMul(t *testing.T) {
	t.Parallel()
	for _, m := range []matrix.Matrix{MustRows(t, absorbing5), RandomStochastic(t, 6, 7)} {
		acc, err := matrix.NewIdentity(m.Rows())
		require.NoError(t, err)
		var naive matrix.Matrix = acc
		var k int
		for k = 0; k <= 17; k++ {
			t.Run(fmt.Sprintf("n=%d/k=%d", m.Rows(), k), func(t *testing.T) {
				got, err := matrix.Pow(m, k)
				require.NoError(t, err)
				ok, err := matrix.AllClose(got, naive, 1e-12, 1e-12)
				require.NoError(t, err)
				require.True(t, ok, "Pow(m,%d)\n%v\nrepeated\n%v", k, got, naive)
			})
			naive, err = matrix.Mul(naive, m)
			require.NoError(t, err)
		}
	}
}

func TestPow_ReferenceScenario(t *testing.T) {
	p5, err := matrix.Pow(MustRows(t, absorbing5), 5)
	require.NoError(t, err)
	row, err := p5.(*matrix.Dense).Row(0)
	require.NoError(t, err)
	ok, err := matrix.VecAllClose(row, []float64{0.01024, 0.0410640625, 0.0515184375, 0.1209334375, 0.7762440625}, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok, "%v", row)
}

func TestPow_Errors(t *testing.T) {
	_, err := matrix.Pow(MustDense(t, 2, 2), -1)
	assert.ErrorIs(t, err, matrix.ErrNegativeExponent)
	_, err = matrix.Pow(MustDense(t, 2, 3), 2)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Pow(nil, 2)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
