package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmarkov/gonumbackend"
	"github.com/katalvlaran/lvmarkov/markov"
	"github.com/katalvlaran/lvmarkov/matrix"
)

// BackendFor maps a backend name to its implementation ("" means dense).
func BackendFor(name string) (markov.Backend, error) {
	switch strings.ToLower(name) {
	case "", BackendDense:
		return markov.DenseBackend{}, nil
	case BackendGonum:
		return gonumbackend.New(), nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, name)
	}
}

// NewChain validates the scenario and builds the chain it describes.
// Extra options are applied after the ones derived from the configuration.
func (c Config) NewChain(extra ...markov.Option) (*markov.Chain, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	p, err := matrix.NewDenseFromRows(c.Matrix)
	if err != nil {
		sentinel := markov.ErrDimensionMismatch
		if errors.Is(err, matrix.ErrNaNInf) {
			sentinel = markov.ErrNonFinite
		}
		return nil, fmt.Errorf("transition matrix: %w: %w", sentinel, err)
	}
	backend, err := BackendFor(c.Backend)
	if err != nil {
		return nil, err
	}

	opts := []markov.Option{
		markov.WithBackend(backend),
		markov.WithEpsilon(c.EffectiveEpsilon()),
	}
	if c.Strict {
		opts = append(opts, markov.WithStrict())
	}

	return markov.New(p, c.Initial, append(opts, extra...)...)
}
