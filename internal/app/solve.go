package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/diocalc/internal/cli"
	apperrors "github.com/agbru/diocalc/internal/errors"
	"github.com/agbru/diocalc/internal/orchestration"
	"github.com/agbru/diocalc/internal/tui"
	"github.com/agbru/diocalc/internal/ui"
)

// job builds the configured single equation.
func (a *Application) job() orchestration.Job {
	return orchestration.Job{
		D: a.Config.D, V: a.Config.V, W: a.Config.W,
		P: a.Config.P, Q: a.Config.Q,
		ConstrainT: a.Config.ConstrainT,
	}
}

// outputConfig builds the presentation options from the configuration.
func (a *Application) outputConfig() cli.OutputConfig {
	return cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
}

// withLifecycle derives the run context: configured timeout plus SIGINT
// and SIGTERM handling.
func (a *Application) withLifecycle(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// runSolve solves the single configured equation.
func (a *Application) runSolve(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.withLifecycle(ctx)
	defer cancel()

	res := orchestration.SolveJob(ctx, a.job())
	outputCfg := a.outputConfig()

	if res.Err != nil && !a.Config.GCDOnly {
		reported := res.Err
		if apperrors.IsContextError(reported) {
			reported = apperrors.TimeoutError{Operation: "solve", Limit: a.Config.Timeout}
		}
		fmt.Fprintf(a.ErrWriter, "%sError: %v%s\n", ui.ColorRed(), reported, ui.ColorReset())
		return orchestration.AnalyzeResults([]orchestration.Result{res})
	}

	if a.Config.GCDOnly {
		if res.GCD == 0 {
			fmt.Fprintf(a.ErrWriter, "%sError: %v%s\n", ui.ColorRed(), res.Err, ui.ColorReset())
			return apperrors.ExitErrorConfig
		}
		cli.DisplayGCDResult(out, res, outputCfg)
		return apperrors.ExitSuccess
	}

	cli.DisplayResult(out, res, outputCfg)

	if err := cli.WriteResultsToFile([]orchestration.Result{res}, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving results: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if outputCfg.OutputFile != "" && !outputCfg.Quiet {
		fmt.Fprintf(out, "\n%s✓ Results saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
	}
	return apperrors.ExitSuccess
}

// runBatch solves every equation listed in the batch file concurrently.
func (a *Application) runBatch(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.withLifecycle(ctx)
	defer cancel()

	var input io.Reader = os.Stdin
	if a.Config.BatchFile != "-" {
		file, err := os.Open(a.Config.BatchFile)
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error opening batch file: %v\n", err)
			return apperrors.ExitErrorConfig
		}
		defer file.Close()
		input = file
	}

	jobs, err := orchestration.ParseJobs(input)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error parsing batch file: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	if len(jobs) == 0 {
		fmt.Fprintf(a.ErrWriter, "Batch file contains no equations.\n")
		return apperrors.ExitErrorConfig
	}

	var reporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	if !a.Config.Quiet {
		reporter = cli.NewSpinnerProgressReporter(a.ErrWriter)
	}

	results := orchestration.ExecuteBatch(ctx, jobs, a.Config.Workers, reporter)

	if a.Config.Quiet {
		for _, res := range results {
			cli.DisplayQuietResult(out, res)
		}
	} else {
		cli.DisplayBatchSummary(out, results)
	}

	outputCfg := a.outputConfig()
	if err := cli.WriteResultsToFile(results, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving results: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if outputCfg.OutputFile != "" && !outputCfg.Quiet {
		fmt.Fprintf(out, "\n%s✓ Results saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
	}

	return orchestration.AnalyzeResults(results)
}

// runREPL starts the interactive session.
func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(cli.REPLConfig{
		Job:     a.job(),
		Timeout: a.Config.Timeout,
		Verbose: a.Config.Verbose,
	})
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()
	return tui.Run(ctx, a.Config, Version)
}
