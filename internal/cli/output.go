// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayBatchSummary].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatSolution], [FormatIdentity].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultsToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/diocalc/internal/diophantine"
	"github.com/agbru/diocalc/internal/format"
	"github.com/agbru/diocalc/internal/orchestration"
	"github.com/agbru/diocalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save results (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything except the solution pairs.
	Quiet bool
	// Verbose adds the Bézout decomposition and timing details.
	Verbose bool
}

// FormatSolution formats one solution pair for display.
//
// Parameters:
//   - sol: The solution pair.
//
// Returns:
//   - string: The pair in "(s,t)=(...)" form.
func FormatSolution(sol diophantine.Solution) string {
	return fmt.Sprintf("(s,t)=(%d,%d)", sol.S, sol.T)
}

// FormatIdentity formats the Bézout identity gcd(d,v) = g = a*d + b*v.
//
// Parameters:
//   - d, v: The equation coefficients.
//   - g: Their greatest common divisor.
//   - a, b: The Bézout coefficients.
//
// Returns:
//   - string: The formatted identity.
func FormatIdentity(d, v, g, a, b int64) string {
	return fmt.Sprintf("gcd(%d,%d) = %d = %d*%d + %d*%d", d, v, g, a, d, b, v)
}

// DisplayQuietResult outputs solutions in quiet mode, one pair per line,
// suitable for scripting. An empty set prints nothing.
//
// Parameters:
//   - out: The output writer.
//   - res: The solved system.
func DisplayQuietResult(out io.Writer, res orchestration.Result) {
	for _, sol := range res.Solutions {
		fmt.Fprintf(out, "%d %d\n", sol.S, sol.T)
	}
}

// DisplayResult displays the outcome of one solved system.
//
// Parameters:
//   - out: The output writer.
//   - res: The solved system.
//   - config: Output configuration.
func DisplayResult(out io.Writer, res orchestration.Result, config OutputConfig) {
	if config.Quiet {
		DisplayQuietResult(out, res)
		return
	}

	fmt.Fprintf(out, "%sEquation:%s %s\n", ui.ColorBold(), ui.ColorReset(), res.Job.Describe())
	if config.Verbose {
		fmt.Fprintf(out, "  %s%s%s\n", ui.ColorCyan(), FormatIdentity(res.Job.D, res.Job.V, res.GCD, res.A, res.B), ui.ColorReset())
		fmt.Fprintf(out, "  Time: %s%s%s\n", ui.ColorGreen(), format.FormatExecutionDuration(res.Duration), ui.ColorReset())
	}

	if len(res.Solutions) == 0 {
		fmt.Fprintf(out, "  %sNo solution in range.%s\n", ui.ColorYellow(), ui.ColorReset())
		return
	}

	fmt.Fprintf(out, "  %s found:\n", format.FormatCount(len(res.Solutions), "solution", "solutions"))
	for _, sol := range res.Solutions {
		fmt.Fprintf(out, "  %s%s%s solves %s\n",
			ui.ColorGreen(), FormatSolution(sol), ui.ColorReset(), res.Job.Describe())
	}
}

// DisplayGCDResult displays only the Bézout decomposition of a system.
//
// Parameters:
//   - out: The output writer.
//   - res: The solved system.
//   - config: Output configuration.
func DisplayGCDResult(out io.Writer, res orchestration.Result, config OutputConfig) {
	if config.Quiet {
		fmt.Fprintf(out, "%d %d %d\n", res.GCD, res.A, res.B)
		return
	}
	fmt.Fprintf(out, "%s%s%s\n", ui.ColorGreen(), FormatIdentity(res.Job.D, res.Job.V, res.GCD, res.A, res.B), ui.ColorReset())
	if config.Verbose {
		fmt.Fprintf(out, "  Time: %s%s%s\n", ui.ColorGreen(), format.FormatExecutionDuration(res.Duration), ui.ColorReset())
	}
}

// padRight pads a string with spaces to the given display width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// DisplayBatchSummary renders the outcome of a batch run as an aligned
// table, one row per system, followed by aggregate counts.
//
// Parameters:
//   - out: The output writer.
//   - results: The batch results in job order.
func DisplayBatchSummary(out io.Writer, results []orchestration.Result) {
	fmt.Fprintf(out, "\n%s%s%s\n", ui.ColorBold(), padRight("Batch summary", 13), ui.ColorReset())
	fmt.Fprintf(out, "%s────────────────────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(out, "%s %s %s %s\n",
		padRight("LINE", 6), padRight("EQUATION", 34), padRight("SOLUTIONS", 10), "TIME")

	solved, empty, failed := 0, 0, 0
	for _, res := range results {
		line := fmt.Sprintf("%d", res.Job.Line)
		switch {
		case res.Err != nil:
			failed++
			fmt.Fprintf(out, "%s %s %s%s%s\n",
				padRight(line, 6), padRight(res.Job.Describe(), 34),
				ui.ColorRed(), res.Err, ui.ColorReset())
		case len(res.Solutions) == 0:
			empty++
			fmt.Fprintf(out, "%s %s %s %s\n",
				padRight(line, 6), padRight(res.Job.Describe(), 34),
				padRight("none", 10), format.FormatExecutionDuration(res.Duration))
		default:
			solved++
			fmt.Fprintf(out, "%s %s %s %s\n",
				padRight(line, 6), padRight(res.Job.Describe(), 34),
				padRight(fmt.Sprintf("%d", len(res.Solutions)), 10), format.FormatExecutionDuration(res.Duration))
		}
	}

	fmt.Fprintf(out, "%s────────────────────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(out, "%d solved, %d without solutions, %d failed\n", solved, empty, failed)
}

// WriteResultsToFile writes batch results to a file.
//
// Parameters:
//   - results: The batch results in job order.
//   - config: Output configuration; no-op when OutputFile is empty.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultsToFile(results []orchestration.Result, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Diophantine Solve Results\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Systems: %d\n", len(results))
	fmt.Fprintf(file, "\n")

	for _, res := range results {
		fmt.Fprintf(file, "%s\n", res.Job.Describe())
		if res.Err != nil {
			fmt.Fprintf(file, "  error: %v\n", res.Err)
			continue
		}
		fmt.Fprintf(file, "  %s\n", FormatIdentity(res.Job.D, res.Job.V, res.GCD, res.A, res.B))
		if len(res.Solutions) == 0 {
			fmt.Fprintf(file, "  no solution in range\n")
			continue
		}
		for _, sol := range res.Solutions {
			fmt.Fprintf(file, "  %s\n", FormatSolution(sol))
		}
	}

	return nil
}
