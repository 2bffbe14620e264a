// Package lvmarkov computes how the state distribution of a discrete-time,
// finite-state Markov chain evolves, step by step and in one shot.
//
// 🚀 What is lvmarkov?
//
//	Given a transition matrix P and an initial distribution p(0), it applies
//	p(t+1) = p(t) · P for a number of steps, reports every intermediate
//	distribution, then cross-checks the last one against p(0) · Pⁿ computed
//	by matrix exponentiation.
//
// ✨ Building blocks:
//
//	matrix/       - row-major Dense matrices, validators, Mul/VecMat/Pow
//	markov/       - Chain, StateVector, the Backend boundary, lazy Steps
//	gonumbackend/ - the same Backend on top of gonum
//	report/       - console formatting (English / Ukrainian headers)
//	config/       - YAML/JSON scenarios
//	cmd/lvmarkov/ - the command-line front end
//
// Quick example (the built-in scenario, last state absorbing):
//
//	P = | 0.40 0.25 0.20 0.10 0.05 |      p(0) = [1 0 0 0 0]
//	    | 0    0.45 0.25 0.20 0.10 |
//	    | 0    0    0.30 0.45 0.25 |      p(1) = [0.4 0.25 0.2 0.1 0.05]
//	    | 0    0    0    0.35 0.65 |
//	    | 0    0    0    0    1    |      p(n) → [0 0 0 0 1]
//
//	go run github.com/katalvlaran/lvmarkov/cmd/lvmarkov
package lvmarkov
