// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/katalvlaran/lvmarkov/markov"
)

// Result summarizes one full report.
type Result struct {
	Steps     int                // steps requested and written
	Iterated  markov.StateVector // p(Steps) from step-by-step iteration
	Direct    markov.StateVector // p(0)·P^Steps from StateAfter
	Deviation float64            // Iterated.MaxAbsDiff(Direct)
}

// Iterate writes the per-step blocks of c for k = 1..steps and returns the
// final distribution (p(0) when steps ≤ 0). A backend failure stops the
// report at the failing step and is returned as is.
func (w *Writer) Iterate(c *markov.Chain, steps int) (markov.StateVector, error) {
	last := c.Initial()
	err := c.Walk(steps, func(k int, v markov.StateVector) bool {
		if w.Step(k, v) != nil {
			return false
		}
		last = v
		return true
	})
	if err != nil {
		return nil, err
	}
	if w.err != nil {
		return nil, w.err
	}

	return last, nil
}

// Run writes the full report: steps blocks followed by the verification
// line computed with StateAfter(steps).
func (w *Writer) Run(c *markov.Chain, steps int) (Result, error) {
	iterated, err := w.Iterate(c, steps)
	if err != nil {
		return Result{}, err
	}
	direct, err := c.StateAfter(steps)
	if err != nil {
		return Result{}, err
	}
	if err = w.Verification(steps, direct); err != nil {
		return Result{}, err
	}

	return Result{
		Steps:     steps,
		Iterated:  iterated,
		Direct:    direct,
		Deviation: iterated.MaxAbsDiff(direct),
	}, nil
}

// Converge iterates c until two consecutive distributions differ by at most
// tol (see markov.Chain.Converge) and writes the Limit block. Nothing is
// written when the chain does not settle within maxSteps.
func (w *Writer) Converge(c *markov.Chain, tol float64, maxSteps int) (markov.StateVector, int, error) {
	v, k, err := c.Converge(tol, maxSteps)
	if err != nil {
		return v, k, fmt.Errorf("report: %w", err)
	}

	return v, k, w.Limit(k, v)
}
