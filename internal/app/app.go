// Package app wires configuration, logging and the execution modes into a
// runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/diocalc/internal/config"
	"github.com/agbru/diocalc/internal/logging"
	"github.com/agbru/diocalc/internal/server"
	"github.com/agbru/diocalc/internal/ui"
)

// Application represents the diocalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "diocalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	if a.Config.MetricsAddr != "" {
		srv := server.New(a.Config.MetricsAddr, logging.NewLogger(a.ErrWriter, "server"))
		go func() {
			if err := srv.Start(ctx); err != nil {
				logging.NewLogger(a.ErrWriter, "server").Error("metrics server failed", err)
			}
		}()
	}

	switch {
	case a.Config.Selftest:
		return a.runSelftest(out)
	case a.Config.BatchFile != "":
		return a.runBatch(ctx, out)
	case a.Config.REPL:
		return a.runREPL(out)
	case a.Config.TUI:
		return a.runTUI(ctx)
	default:
		return a.runSolve(ctx, out)
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
