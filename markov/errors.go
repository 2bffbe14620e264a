// SPDX-License-Identifier: MIT
// Package markov: sentinel error set.
//
// Every message is prefixed with "markov: ...". Errors coming from the
// matrix package are wrapped next to these sentinels, so both
// errors.Is(err, markov.ErrDimensionMismatch) and
// errors.Is(err, matrix.ErrDimensionMismatch) hold for a shape failure.

package markov

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned by New when the transition matrix is
	// nil or not square, or the initial vector length differs from its size.
	ErrDimensionMismatch = errors.New("markov: dimension mismatch")

	// ErrNotStochastic is returned by New under WithStrict when a row of the
	// transition matrix or the initial vector is not a distribution.
	ErrNotStochastic = errors.New("markov: not a probability distribution")

	// ErrNonFinite is returned by New when an input holds NaN or ±Inf.
	ErrNonFinite = errors.New("markov: non-finite input")

	// ErrNegativeSteps is returned by StateAfter for steps < 0.
	ErrNegativeSteps = errors.New("markov: negative step count")

	// ErrInvalidTolerance is returned by Converge for a negative or non-finite
	// tolerance, or a non-positive step budget.
	ErrInvalidTolerance = errors.New("markov: invalid convergence parameters")

	// ErrNoConvergence is returned by Converge when the step budget runs out.
	ErrNoConvergence = errors.New("markov: no convergence within step budget")
)

// chainErrorf tags err with the Chain operation that produced it.
func chainErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// classify attaches the chain sentinel next to an underlying cause.
func classify(op string, sentinel, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, sentinel, cause)
}
