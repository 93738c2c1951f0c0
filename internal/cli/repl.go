// Package cli provides terminal presentation, batch progress reporting and
// the REPL (Read-Eval-Print Loop) for interactive equation solving.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/diocalc/internal/orchestration"
	"github.com/agbru/diocalc/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Job seeds the session's equation and bound state.
	Job orchestration.Job
	// Timeout is the maximum duration for each solve.
	Timeout time.Duration
	// Verbose adds the Bézout decomposition to solve output.
	Verbose bool
}

// REPL represents an interactive equation solving session. The session
// keeps the current bound between commands so the user can sweep
// equations against a fixed window.
type REPL struct {
	config REPLConfig
	job    orchestration.Job
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new REPL instance.
//
// Parameters:
//   - config: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance reading from stdin and writing to stdout.
func NewREPL(config REPLConfig) *REPL {
	return &REPL{
		config: config,
		job:    config.Job,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive session. It continuously reads user input
// and processes commands until the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"dio> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sDiophantine Solver - Interactive Mode%s                %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %ssolve <d> <v> <w>%s   - Solve s*d + t*v = w under the current bound\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sgcd <d> <v>%s         - Show gcd(d,v) and its Bézout decomposition\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sbound <p> <q> [s|t]%s - Set the bound window and constrained unknown\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s              - Display current equation and bound\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s                - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s        - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "solve", "s":
		r.cmdSolve(args)
	case "gcd", "g":
		r.cmdGCD(args)
	case "bound", "b":
		r.cmdBound(args)
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}

	return true
}

// parseInt64Args converts want operand tokens, reporting the first bad one.
func (r *REPL) parseInt64Args(args []string, want int, usage string) ([]int64, bool) {
	if len(args) < want {
		fmt.Fprintf(r.out, "%sUsage: %s%s\n", ui.ColorRed(), usage, ui.ColorReset())
		return nil, false
	}
	vals := make([]int64, want)
	for i := 0; i < want; i++ {
		n, err := strconv.ParseInt(args[i], 10, 64)
		if err != nil {
			fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[i], ui.ColorReset())
			return nil, false
		}
		vals[i] = n
	}
	return vals, true
}

// cmdSolve handles the "solve" command.
func (r *REPL) cmdSolve(args []string) {
	vals, ok := r.parseInt64Args(args, 3, "solve <d> <v> <w>")
	if !ok {
		return
	}
	r.job.D, r.job.V, r.job.W = vals[0], vals[1], vals[2]

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	res := orchestration.SolveJob(ctx, r.job)
	if res.Err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), res.Err, ui.ColorReset())
		return
	}
	DisplayResult(r.out, res, OutputConfig{Verbose: r.config.Verbose})
	fmt.Fprintln(r.out)
}

// cmdGCD handles the "gcd" command.
func (r *REPL) cmdGCD(args []string) {
	vals, ok := r.parseInt64Args(args, 2, "gcd <d> <v>")
	if !ok {
		return
	}
	job := orchestration.Job{D: vals[0], V: vals[1], P: r.job.P, Q: r.job.Q}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	res := orchestration.SolveJob(ctx, job)
	if res.GCD == 0 && res.Err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), res.Err, ui.ColorReset())
		return
	}
	DisplayGCDResult(r.out, res, OutputConfig{Verbose: r.config.Verbose})
}

// cmdBound handles the "bound" command.
func (r *REPL) cmdBound(args []string) {
	vals, ok := r.parseInt64Args(args, 2, "bound <p> <q> [s|t]")
	if !ok {
		return
	}
	if vals[0] >= vals[1] {
		fmt.Fprintf(r.out, "%sBound must satisfy p < q, got %d >= %d%s\n", ui.ColorRed(), vals[0], vals[1], ui.ColorReset())
		return
	}
	if len(args) > 2 {
		switch strings.ToLower(args[2]) {
		case "s":
			r.job.ConstrainT = false
		case "t":
			r.job.ConstrainT = true
		default:
			fmt.Fprintf(r.out, "%sBound side must be 's' or 't', got %q%s\n", ui.ColorRed(), args[2], ui.ColorReset())
			return
		}
	}
	r.job.P, r.job.Q = vals[0], vals[1]
	r.cmdStatus()
}

// cmdStatus handles the "status" command.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Equation: %s%s%s\n", ui.ColorCyan(), r.job.Describe(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:  %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintln(r.out)
}
