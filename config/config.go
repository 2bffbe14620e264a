// Package config describes a chain scenario: the transition matrix, the
// initial distribution and how to evaluate and report it.
//
// Files are YAML (JSON is accepted, being a YAML subset). They are parsed
// into a generic map and decoded with mapstructure, so loosely typed values
// such as `steps: "7"` or integer matrix entries are accepted.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmarkov/markov"
	"github.com/katalvlaran/lvmarkov/matrix"
	"github.com/katalvlaran/lvmarkov/report"
)

// Backend names accepted in Config.Backend.
const (
	BackendDense = "dense"
	BackendGonum = "gonum"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is one scenario. Steps is taken literally (0 reports p(0) only);
// the zero value of Locale, Backend and Epsilon means "use the default".
type Config struct {
	Matrix  [][]float64 `yaml:"matrix"`
	Initial []float64   `yaml:"initial"`
	Steps   int         `yaml:"steps"`
	Strict  bool        `yaml:"strict"`
	Epsilon float64     `yaml:"epsilon"`
	Locale  string      `yaml:"locale"`
	Backend string      `yaml:"backend"`
}

// Default returns the reference scenario: a five-state chain whose last
// state is absorbing, started in state 1, evaluated for five steps.
func Default() Config {
	return Config{
		Matrix: [][]float64{
			{0.4, 0.25, 0.20, 0.10, 0.05},
			{0, 0.45, 0.25, 0.20, 0.10},
			{0, 0, 0.3, 0.45, 0.25},
			{0, 0, 0, 0.35, 0.65},
			{0, 0, 0, 0, 1},
		},
		Initial: []float64{1, 0, 0, 0, 0},
		Steps:   markov.DefaultSteps,
		Epsilon: matrix.DefaultEpsilon,
		Locale:  "en",
		Backend: BackendDense,
	}
}

// Load reads the file at path and decodes it over Default().
// Fields missing from the file keep their default values, except that a
// file setting matrix must also set initial.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if _, ok := raw["matrix"]; ok {
		if _, ok = raw["initial"]; !ok {
			return Config{}, fmt.Errorf("%s: %w: matrix is set but initial is missing", path, ErrInvalidConfig)
		}
	}

	cfg := Default()
	if err = Decode(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode overlays raw onto cfg. Unknown keys are rejected; an empty map
// leaves cfg untouched.
func Decode(raw map[string]any, cfg *Config) error {
	if len(raw) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		WeaklyTypedInput: true,
		ZeroFields:       true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err = dec.Decode(raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// EffectiveEpsilon returns Epsilon, or matrix.DefaultEpsilon when it is 0.
func (c Config) EffectiveEpsilon() float64 {
	if c.Epsilon == 0 {
		return matrix.DefaultEpsilon
	}

	return c.Epsilon
}

// Validate checks the settings that do not depend on the chain itself.
// Shape consistency of Matrix and Initial is checked by markov.New so the
// dimension error stays in one place.
func (c Config) Validate() error {
	var problems []string
	if len(c.Matrix) == 0 {
		problems = append(problems, "matrix is empty")
	}
	if len(c.Initial) == 0 {
		problems = append(problems, "initial is empty")
	}
	if c.Steps < 0 {
		problems = append(problems, fmt.Sprintf("steps must be non-negative, got %d", c.Steps))
	}
	if c.Epsilon < 0 || math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) {
		problems = append(problems, fmt.Sprintf("epsilon must be finite and non-negative, got %g", c.Epsilon))
	}
	switch strings.ToLower(c.Backend) {
	case "", BackendDense, BackendGonum:
	default:
		problems = append(problems, fmt.Sprintf("unknown backend %q", c.Backend))
	}
	if _, err := report.LabelsFor(c.Locale); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}
