// Package markov models a discrete-time, finite-state Markov chain and
// computes how its state distribution evolves.
//
// What & Why:
//
//	A Chain owns a transition matrix P (row i holds the probabilities of
//	moving from state i to every state) and an initial distribution p(0).
//	One step is the row-vector product p(t+1) = p(t) · P. The chain exposes
//	that rule two ways:
//	  • Steps(n)      - lazy, restartable sequence p(1), ..., p(n)
//	  • StateAfter(n) - p(0) · Pⁿ in one shot via matrix exponentiation
//	Both must agree within floating-point tolerance; that agreement is the
//	chain's core correctness property.
//
// Usage:
//
//	p, _ := matrix.NewDenseFromRows([][]float64{{0.9, 0.1}, {0.5, 0.5}})
//	c, err := markov.New(p, []float64{1, 0})
//	if err != nil {
//	  // errors.Is(err, markov.ErrDimensionMismatch)
//	}
//	for k, v := range c.Steps(3) {
//	  fmt.Println(k, v)
//	}
//	p3, _ := c.StateAfter(3)
//
// The numeric work is delegated to a Backend (DenseBackend by default, or
// the gonum-backed implementation in package gonumbackend), so the chain
// logic can be tested independently of the arithmetic.
//
// A Chain never mutates its inputs and is read-only after New.
package markov
