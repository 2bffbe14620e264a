// SPDX-License-Identifier: MIT

// Package gonumbackend implements markov.Backend on top of gonum's dense
// matrices (gonum.org/v1/gonum/mat), as an alternative to the package's
// own kernels. Results are converted back to *matrix.Dense so the rest of
// the module never sees gonum types.
package gonumbackend

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmarkov/markov"
	"github.com/katalvlaran/lvmarkov/matrix"
)

// Name is the identifier used in configuration and logs.
const Name = "gonum"

// Backend is a stateless markov.Backend. The zero value is ready to use.
type Backend struct{}

var _ markov.Backend = Backend{}

// New returns a Backend.
func New() Backend { return Backend{} }

// Name implements markov.Backend.
func (Backend) Name() string { return Name }

// VecMul returns xᵀ·m computed as (mᵀ·x)ᵀ with mat.VecDense.MulVec.
func (Backend) VecMul(x []float64, m matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("gonum VecMul: %w", err)
	}
	if err := matrix.ValidateVecLen(x, m.Rows()); err != nil {
		return nil, fmt.Errorf("gonum VecMul: %w", err)
	}
	a, err := toGonum(m)
	if err != nil {
		return nil, fmt.Errorf("gonum VecMul: %w", err)
	}

	xv := mat.NewVecDense(len(x), append([]float64(nil), x...))
	var y mat.VecDense
	y.MulVec(a.T(), xv)

	return mat.Col(nil, 0, &y), nil
}

// Mul returns a·b via mat.Dense.Mul.
func (Backend) Mul(a, b matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, fmt.Errorf("gonum Mul: %w", err)
	}
	ga, err := toGonum(a)
	if err != nil {
		return nil, fmt.Errorf("gonum Mul: %w", err)
	}
	gb, err := toGonum(b)
	if err != nil {
		return nil, fmt.Errorf("gonum Mul: %w", err)
	}

	var c mat.Dense
	c.Mul(ga, gb)

	out, err := fromGonum(&c)
	if err != nil {
		return nil, fmt.Errorf("gonum Mul: %w", err)
	}

	return out, nil
}

// Pow returns mᵏ via mat.Dense.Pow (identity for k == 0).
func (Backend) Pow(m matrix.Matrix, k int) (matrix.Matrix, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("gonum Pow: %w", err)
	}
	if k < 0 {
		return nil, fmt.Errorf("gonum Pow: %w", matrix.ErrNegativeExponent)
	}
	a, err := toGonum(m)
	if err != nil {
		return nil, fmt.Errorf("gonum Pow: %w", err)
	}

	var p mat.Dense
	p.Pow(a, k)

	out, err := fromGonum(&p)
	if err != nil {
		return nil, fmt.Errorf("gonum Pow: %w", err)
	}

	return out, nil
}

// toGonum copies any matrix.Matrix into a fresh *mat.Dense.
func toGonum(m matrix.Matrix) (*mat.Dense, error) {
	r, c := m.Rows(), m.Cols()
	if d, ok := m.(*matrix.Dense); ok {
		rows := d.ToRows()
		flat := make([]float64, 0, r*c)
		for _, row := range rows {
			flat = append(flat, row...)
		}

		return mat.NewDense(r, c, flat), nil
	}

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// fromGonum copies a gonum matrix back into *matrix.Dense.
func fromGonum(g mat.Matrix) (*matrix.Dense, error) {
	r, _ := g.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, g)
	}

	return matrix.NewDenseFromRows(rows)
}
