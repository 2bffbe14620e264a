// SPDX-License-Identifier: MIT

// Package report formats the state evolution of a markov.Chain for the
// console. It consumes the lazy step sequence of the chain and never does
// numeric work of its own besides the verification comparison.
//
// Layout for step k over n states (values with 4 decimals, every value
// followed by one space, then a blank line):
//
//	After step k:
//	p1(k) = 0.4000 p2(k) = 0.2500 ... pn(k) = 0.0500
//
// and, after all steps, the one-shot p(0)·Pᴺ result:
//
//	Verification p(N) = p(0) * Pᴺ:
//	p(1) = 0.0102 p(2) = ... p(n) = 0.6597
package report

import (
	"fmt"
	"io"
	"iter"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/lvmarkov/markov"
)

// headerColor is the foreground of header lines when colour is enabled.
const headerColor = "#818cf8"

// Option configures a Writer.
type Option func(*Writer)

// WithLabels selects the header wording (English by default).
func WithLabels(l Labels) Option {
	return func(w *Writer) {
		if l.Step != nil && l.Verification != nil {
			w.labels = l
		}
	}
}

// WithColor styles header lines for the given terminal profile.
// termenv.Ascii (the default) leaves output uncoloured.
func WithColor(p termenv.Profile) Option {
	return func(w *Writer) { w.profile = p }
}

// Writer renders reports to an io.Writer. The first write error sticks:
// later calls become no-ops and return it.
type Writer struct {
	out     io.Writer
	labels  Labels
	profile termenv.Profile
	err     error
}

// NewWriter returns a Writer on out.
func NewWriter(out io.Writer, opts ...Option) *Writer {
	w := &Writer{out: out, labels: English, profile: termenv.Ascii}
	for _, set := range opts {
		if set != nil {
			set(w)
		}
	}

	return w
}

// Err returns the first write error, if any.
func (w *Writer) Err() error { return w.err }

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

func (w *Writer) header(s string) {
	if w.profile != termenv.Ascii {
		s = w.profile.String(s).Foreground(w.profile.Color(headerColor)).Bold().String()
	}
	w.printf("%s\n", s)
}

// Step writes the block of step k.
func (w *Writer) Step(k int, v markov.StateVector) error {
	w.header(w.labels.Step(k))
	for j, p := range v {
		w.printf("p%d(%d) = %.4f ", j+1, k, p)
	}
	w.printf("\n\n")

	return w.err
}

// Steps drains seq, writing one block per element. It returns the last
// vector seen and the number of blocks written.
func (w *Writer) Steps(seq iter.Seq2[int, markov.StateVector]) (markov.StateVector, int, error) {
	var (
		last markov.StateVector
		n    int
	)
	for k, v := range seq {
		if err := w.Step(k, v); err != nil {
			return last, n, err
		}
		last, n = v, n+1
	}

	return last, n, w.err
}

// Verification writes the header and the p(0)·Pⁿ line for n steps.
func (w *Writer) Verification(n int, v markov.StateVector) error {
	w.header(w.labels.Verification(n))
	w.distribution(v)

	return w.err
}

// Limit writes a blank line, the convergence header for k steps and the
// limiting distribution in the verification layout.
func (w *Writer) Limit(k int, v markov.StateVector) error {
	label := w.labels.Limit
	if label == nil {
		label = English.Limit
	}
	w.printf("\n")
	w.header(label(k))
	w.distribution(v)

	return w.err
}

func (w *Writer) distribution(v markov.StateVector) {
	for j, p := range v {
		w.printf("p(%d) = %.4f ", j+1, p)
	}
	w.printf("\n")
}
