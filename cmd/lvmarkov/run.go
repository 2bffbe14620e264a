package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/lvmarkov/config"
	"github.com/katalvlaran/lvmarkov/internal/logging"
	"github.com/katalvlaran/lvmarkov/internal/metrics"
	"github.com/katalvlaran/lvmarkov/markov"
	"github.com/katalvlaran/lvmarkov/report"
)

// verifyTolerance bounds |iterated - p(0)·Pⁿ| before a warning is logged.
const verifyTolerance = 1e-9

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate the chain and print its state evolution",
		Example: `  lvmarkov run
  lvmarkov run --steps 10 --locale uk
  lvmarkov run --converge 1e-6
  lvmarkov run --config chain.yaml --backend gonum --metrics-textfile /var/lib/node_exporter/lvmarkov.prom`,
		Args: cobra.NoArgs,
		RunE: runChain,
	}
	bindRunFlags(cmd)

	return cmd
}

// bindScenarioFlags registers the flags that override scenario fields.
func bindScenarioFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("steps", markov.DefaultSteps, "number of steps to evaluate")
	f.String("locale", "en", "header language: en or uk")
	f.String("backend", config.BackendDense, "numeric backend: dense or gonum")
	f.Bool("strict", false, "reject matrices whose rows are not probability distributions")
}

// bindRunFlags registers the scenario flags plus the output flags of run.
func bindRunFlags(cmd *cobra.Command) {
	bindScenarioFlags(cmd)
	f := cmd.Flags()
	f.String("color", "auto", "colour headers: auto, always or never")
	f.Float64("converge", 0, "after the report, iterate until consecutive distributions differ by at most this tolerance (0 disables)")
	f.Int("converge-max", 10_000, "step budget of --converge")
	f.String("metrics-textfile", "", "write Prometheus metrics to this file after the run")
}

func runChain(cmd *cobra.Command, args []string) error {
	logger, err := loggerFor(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// Everything that can reject the input happens before the first line
	// of the report is written.
	chain, err := cfg.NewChain(markov.WithLogger(logger))
	if err != nil {
		return err
	}
	labels, err := report.LabelsFor(cfg.Locale)
	if err != nil {
		return err
	}
	tol, _ := cmd.Flags().GetFloat64("converge")
	maxSteps, _ := cmd.Flags().GetInt("converge-max")
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) || maxSteps <= 0 {
		return fmt.Errorf("invalid --converge %g / --converge-max %d", tol, maxSteps)
	}
	mode, _ := cmd.Flags().GetString("color")
	profile, err := colorProfile(mode, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	start := time.Now()
	w := report.NewWriter(cmd.OutOrStdout(), report.WithLabels(labels), report.WithColor(profile))
	res, err := w.Run(chain, cfg.Steps)
	if err != nil {
		return err
	}
	if tol > 0 {
		var k int
		if _, k, err = w.Converge(chain, tol, maxSteps); err != nil {
			return err
		}
		logger.Debug("chain converged",
			"steps", k,
			"tolerance", tol,
			"absorbing", chain.AbsorbingStates(),
		)
	}
	elapsed := time.Since(start)

	if res.Deviation > verifyTolerance {
		logger.Warn("iterated and direct distributions disagree",
			"steps", res.Steps,
			"deviation", res.Deviation,
		)
	} else {
		logger.Debug("run complete",
			"steps", res.Steps,
			"deviation", res.Deviation,
			"elapsed", elapsed,
		)
	}

	path, _ := cmd.Flags().GetString("metrics-textfile")
	if path == "" {
		return nil
	}
	rec := metrics.New()
	rec.ObserveRun(chain.Backend().Name(), chain.Size(), res.Steps, res.Deviation, elapsed)
	if err = rec.WriteTextfile(path); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	logger.Info("metrics written", "path", path)

	return nil
}

// loadConfig reads --config (or the built-in scenario) and applies the
// scenario flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()
	cfg := config.Default()
	if path, _ := f.GetString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	if f.Changed("steps") {
		cfg.Steps, _ = f.GetInt("steps")
	}
	if f.Changed("locale") {
		cfg.Locale, _ = f.GetString("locale")
	}
	if f.Changed("backend") {
		cfg.Backend, _ = f.GetString("backend")
	}
	if f.Changed("strict") {
		cfg.Strict, _ = f.GetBool("strict")
	}

	return cfg, cfg.Validate()
}

// loggerFor builds the stderr logger from --log-level.
func loggerFor(cmd *cobra.Command) (*slog.Logger, error) {
	lvl, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(lvl)
	if err != nil {
		return nil, err
	}

	return logging.NewTo(cmd.ErrOrStderr(), level), nil
}

// colorProfile resolves --color. "auto" colours only when out is a terminal.
func colorProfile(mode string, out io.Writer) (termenv.Profile, error) {
	switch strings.ToLower(mode) {
	case "never":
		return termenv.Ascii, nil
	case "always":
		if p := termenv.EnvColorProfile(); p != termenv.Ascii {
			return p, nil
		}
		return termenv.ANSI256, nil
	case "", "auto":
		f, ok := out.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) || termenv.EnvNoColor() {
			return termenv.Ascii, nil
		}
		return termenv.EnvColorProfile(), nil
	default:
		return termenv.Ascii, fmt.Errorf("invalid --color %q: want auto, always or never", mode)
	}
}
