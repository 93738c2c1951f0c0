// Package config defines the application configuration and its resolution
// chain: CLI flags take priority over DIOCALC_-prefixed environment
// variables, which take priority over defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/diocalc/internal/errors"
)

// EnvPrefix is the prefix of all environment variables recognized by the
// application.
const EnvPrefix = "DIOCALC_"

// Default values for the equation flags. They reproduce the canonical demo
// system 23s + 31t = 4 with 0 <= s <= 99, so running the binary with no
// arguments produces a meaningful solution listing.
const (
	DefaultD       = 23
	DefaultV       = 31
	DefaultW       = 4
	DefaultP       = 0
	DefaultQ       = 99
	DefaultTimeout = 1 * time.Minute
	DefaultWorkers = 4
)

// AppConfig holds the complete resolved application configuration.
type AppConfig struct {
	// D is the coefficient of the first unknown s.
	D int64
	// V is the coefficient of the second unknown t. Must be strictly positive.
	V int64
	// W is the right-hand side of the equation.
	W int64
	// P is the inclusive lower bound on the constrained unknown.
	P int64
	// Q is the inclusive upper bound on the constrained unknown.
	Q int64
	// ConstrainT applies the [P, Q] bound to t instead of s.
	ConstrainT bool

	// GCDOnly prints only the Bézout decomposition of (D, V).
	GCDOnly bool
	// Selftest replays the canned regression systems and verifies the
	// defining identities.
	Selftest bool
	// BatchFile is a path to a file of equations to solve concurrently
	// (empty for single-equation mode).
	BatchFile string
	// Workers bounds the number of concurrent batch solves.
	Workers int
	// REPL starts the interactive session.
	REPL bool
	// TUI starts the dashboard.
	TUI bool
	// MetricsAddr is the listen address of the optional Prometheus
	// endpoint (empty to disable).
	MetricsAddr string

	// Timeout is the maximum duration of a run.
	Timeout time.Duration
	// OutputFile is the path to save results to (empty for no file output).
	OutputFile string
	// Quiet suppresses everything except the solution pairs.
	Quiet bool
	// Verbose enables debug logging and per-step detail.
	Verbose bool
	// NoColor disables ANSI colors.
	NoColor bool
}

// ParseConfig parses command-line arguments into an AppConfig and applies
// environment overrides for flags not explicitly set.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: The writer for flag parse errors and usage text.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{}
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.Int64Var(&cfg.D, "d", DefaultD, "coefficient of the first unknown s (any integer)")
	fs.Int64Var(&cfg.V, "v", DefaultV, "coefficient of the second unknown t (must be > 0)")
	fs.Int64Var(&cfg.W, "w", DefaultW, "right-hand side of the equation")
	fs.Int64Var(&cfg.P, "p", DefaultP, "inclusive lower bound on the constrained unknown")
	fs.Int64Var(&cfg.Q, "q", DefaultQ, "inclusive upper bound on the constrained unknown")
	fs.BoolVar(&cfg.ConstrainT, "t", false, "apply the [p, q] bound to t (the v coefficient) instead of s")

	fs.BoolVar(&cfg.GCDOnly, "gcd", false, "print only the Bézout decomposition of (d, v)")
	fs.BoolVar(&cfg.Selftest, "selftest", false, "replay the reference regression systems and verify identities")
	fs.StringVar(&cfg.BatchFile, "batch", "", "solve every equation in the given file ('-' for stdin)")
	fs.IntVar(&cfg.Workers, "workers", DefaultWorkers, "maximum concurrent solves in batch mode")
	fs.BoolVar(&cfg.REPL, "repl", false, "start an interactive session")
	fs.BoolVar(&cfg.TUI, "tui", false, "start the interactive dashboard")
	fs.StringVar(&cfg.MetricsAddr, "serve", "", "expose Prometheus metrics on the given address (e.g. :9090)")

	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum run duration")
	fs.StringVar(&cfg.OutputFile, "output", "", "save the results to the given file")
	fs.StringVar(&cfg.OutputFile, "o", "", "save the results to the given file (shorthand)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the solution pairs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging and per-step detail")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable ANSI colors")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks configuration constraints that are independent of the
// solver's own input validation (the solver reports invalid divisors and
// ranges itself, with precise error types).
func (c AppConfig) Validate() error {
	if c.Workers < 1 {
		return apperrors.ValidationError{Field: "workers", Message: fmt.Sprintf("must be at least 1, got %d", c.Workers)}
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: fmt.Sprintf("must be positive, got %s", c.Timeout)}
	}
	modes := 0
	for _, enabled := range []bool{c.Selftest, c.BatchFile != "", c.REPL, c.TUI} {
		if enabled {
			modes++
		}
	}
	if modes > 1 {
		return apperrors.NewConfigError("at most one of -selftest, -batch, -repl, -tui may be used")
	}
	return nil
}

// BoundSide returns "t" when the bound applies to the v coefficient and "s"
// otherwise, for display purposes.
func (c AppConfig) BoundSide() string {
	if c.ConstrainT {
		return "t"
	}
	return "s"
}

// Describe returns the equation in the conventional s*d + t*v = w shape.
func (c AppConfig) Describe() string {
	return fmt.Sprintf("s*%d + t*%d = %d with %d <= %s <= %d", c.D, c.V, c.W, c.P, c.BoundSide(), c.Q)
}
