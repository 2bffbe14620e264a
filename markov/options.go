// SPDX-License-Identifier: MIT

package markov

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/lvmarkov/internal/logging"
	"github.com/katalvlaran/lvmarkov/matrix"
)

const panicEpsilonInvalid = "markov: WithEpsilon: eps must be finite, non-negative"

// Option configures a Chain at construction time.
type Option func(*options)

type options struct {
	backend Backend
	strict  bool
	eps     float64
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{
		backend: DenseBackend{},
		eps:     matrix.DefaultEpsilon,
		logger:  logging.NewNop(),
	}
}

// WithBackend selects the numeric backend. A nil backend keeps the default.
func WithBackend(b Backend) Option {
	return func(o *options) {
		if b != nil {
			o.backend = b
		}
	}
}

// WithStrict makes New reject transition matrices whose rows are not
// probability distributions and initial vectors that are not one.
// Without it such inputs are accepted and evolve as plain linear maps.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithEpsilon sets the tolerance of the strict checks (default 1e-9).
// Panics on a negative or non-finite eps (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithLogger routes debug records of the chain to l. nil keeps the nop logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
