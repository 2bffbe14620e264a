// SPDX-License-Identifier: MIT

package markov

import (
	"iter"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvmarkov/matrix"
)

// Operation tags for error wrapping.
const (
	opNew        = "New"
	opStep       = "Step"
	opStateAfter = "StateAfter"
	opConverge   = "Converge"
)

// Chain is a finite-state, discrete-time Markov chain: a transition matrix
// and an initial distribution, both fixed at construction.
// A Chain is read-only after New and safe for concurrent readers.
type Chain struct {
	p       matrix.Matrix // private clone of the transition matrix (n×n)
	p0      StateVector   // private copy of the initial distribution (len n)
	n       int           // number of states
	backend Backend
	logger  *slog.Logger
}

// New builds a Chain from transition matrix p and initial distribution initial.
//
// Implementation:
//   - Stage 1: p must be non-nil and square, len(initial) == p.Rows();
//     otherwise ErrDimensionMismatch.
//   - Stage 2: every value must be finite (ErrNonFinite).
//   - Stage 3: under WithStrict, p must be row-stochastic and initial a
//     distribution (ErrNotStochastic).
//   - Stage 4: clone both inputs so later caller edits cannot leak in.
//
// Complexity: O(n²).
func New(p matrix.Matrix, initial []float64, opts ...Option) (*Chain, error) {
	o := defaultOptions()
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	if err := matrix.ValidateSquareNonNil(p); err != nil {
		return nil, classify(opNew, ErrDimensionMismatch, err)
	}
	if err := matrix.ValidateVecLen(initial, p.Rows()); err != nil {
		return nil, classify(opNew, ErrDimensionMismatch, err)
	}
	if err := matrix.ValidateFinite(p); err != nil {
		return nil, classify(opNew, ErrNonFinite, err)
	}
	for _, v := range initial {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, classify(opNew, ErrNonFinite, matrix.ErrNaNInf)
		}
	}
	if o.strict {
		if err := matrix.ValidateRowStochastic(p, matrix.WithEpsilon(o.eps)); err != nil {
			return nil, classify(opNew, ErrNotStochastic, err)
		}
		if err := matrix.ValidateDistribution(initial, matrix.WithEpsilon(o.eps)); err != nil {
			return nil, classify(opNew, ErrNotStochastic, err)
		}
	}

	c := &Chain{
		p:       p.Clone(),
		p0:      StateVector(initial).Clone(),
		n:       p.Rows(),
		backend: o.backend,
		logger:  o.logger,
	}
	c.logger.Debug("markov chain constructed",
		"states", c.n,
		"backend", c.backend.Name(),
		"strict", o.strict,
	)

	return c, nil
}

// Size returns the number of states n.
func (c *Chain) Size() int { return c.n }

// Backend returns the numeric backend in use.
func (c *Chain) Backend() Backend { return c.backend }

// Initial returns a copy of p(0).
func (c *Chain) Initial() StateVector { return c.p0.Clone() }

// Transition returns a copy of the transition matrix.
func (c *Chain) Transition() matrix.Matrix { return c.p.Clone() }

// step applies the update rule once: p(t+1) = p(t) · P.
func (c *Chain) step(cur StateVector) (StateVector, error) {
	next, err := c.backend.VecMul(cur, c.p)
	if err != nil {
		return nil, chainErrorf(opStep, err)
	}

	return StateVector(next), nil
}

// Steps returns the lazy sequence (k, p(k)) for k = 1..steps.
// The sequence is finite and restartable: each range over it starts again
// from p(0). Each yielded vector is a fresh slice owned by the consumer.
// steps ≤ 0 yields nothing. A backend failure ends the sequence early;
// consumers that need the error use Walk.
func (c *Chain) Steps(steps int) iter.Seq2[int, StateVector] {
	return func(yield func(int, StateVector) bool) {
		_ = c.Walk(steps, yield)
	}
}

// Walk calls yield with (k, p(k)) for k = 1..steps and returns the first
// backend error. It stops without error as soon as yield returns false.
// The backend is called exactly once per step.
func (c *Chain) Walk(steps int, yield func(int, StateVector) bool) error {
	cur := c.p0
	for k := 1; k <= steps; k++ {
		next, err := c.step(cur)
		if err != nil {
			c.logger.Debug("markov step failed", "step", k, "err", err)
			return err
		}
		if !yield(k, next.Clone()) {
			return nil
		}
		cur = next
	}

	return nil
}

// Trajectory collects p(1), ..., p(steps) eagerly.
// Returns an empty slice for steps ≤ 0.
func (c *Chain) Trajectory(steps int) ([]StateVector, error) {
	out := make([]StateVector, 0, max(steps, 0))
	err := c.Walk(steps, func(_ int, v StateVector) bool {
		out = append(out, v)
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// StateAfter computes p(steps) = p(0) · P^steps in one shot.
//
// Implementation:
//   - Stage 1: steps < 0 → ErrNegativeSteps.
//   - Stage 2: steps == 0 → exact copy of p(0) (P⁰ = I).
//   - Stage 3: Pⁿ via Backend.Pow, then one Backend.VecMul.
//
// Guarantee: the result equals the last vector of Steps(steps) within
// ordinary floating-point tolerance.
// Complexity: O(n³ log steps).
func (c *Chain) StateAfter(steps int) (StateVector, error) {
	if steps < 0 {
		return nil, chainErrorf(opStateAfter, ErrNegativeSteps)
	}
	if steps == 0 {
		return c.p0.Clone(), nil
	}

	pn, err := c.backend.Pow(c.p, steps)
	if err != nil {
		return nil, chainErrorf(opStateAfter, err)
	}
	out, err := c.backend.VecMul(c.p0, pn)
	if err != nil {
		return nil, chainErrorf(opStateAfter, err)
	}
	c.logger.Debug("matrix power applied", "steps", steps, "backend", c.backend.Name())

	return StateVector(out), nil
}

// Converge iterates until two consecutive distributions differ by at most
// tol in every component, or maxSteps steps were taken.
// It returns the last distribution and the number of steps performed.
// When the budget is exhausted the last distribution is returned together
// with ErrNoConvergence.
func (c *Chain) Converge(tol float64, maxSteps int) (StateVector, int, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 || maxSteps <= 0 {
		return nil, 0, chainErrorf(opConverge, ErrInvalidTolerance)
	}

	cur := c.p0.Clone()
	for k := 1; k <= maxSteps; k++ {
		next, err := c.step(cur)
		if err != nil {
			return nil, k - 1, chainErrorf(opConverge, err)
		}
		delta := next.MaxAbsDiff(cur)
		cur = next
		if delta <= tol {
			c.logger.Debug("markov chain converged", "steps", k, "delta", delta)
			return cur, k, nil
		}
	}

	return cur, maxSteps, chainErrorf(opConverge, ErrNoConvergence)
}

// AbsorbingStates returns the 0-based indices i with P[i][i] == 1, i.e. the
// states a stochastic chain can never leave. The result is ascending.
func (c *Chain) AbsorbingStates() []int {
	var out []int
	for i := 0; i < c.n; i++ {
		if v, err := c.p.At(i, i); err == nil && v == 1 {
			out = append(out, i)
		}
	}

	return out
}
