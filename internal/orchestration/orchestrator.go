// Package orchestration coordinates solving batches of Diophantine systems
// concurrently, with tracing spans and Prometheus counters per solve.
package orchestration

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/diocalc/internal/diophantine"
	apperrors "github.com/agbru/diocalc/internal/errors"
	"github.com/agbru/diocalc/internal/metrics"
)

var tracer = otel.Tracer("github.com/agbru/diocalc/internal/orchestration")

// Result encapsulates the outcome of one solved system. It serves as a
// standardized container for reporting and for the batch summary table.
type Result struct {
	// Job is the system that was solved.
	Job Job
	// Solutions holds the emitted pairs in increasing parameter order.
	// It is nil when an error occurred or no solution exists.
	Solutions []diophantine.Solution
	// GCD is gcd(d, v); zero when the input was invalid.
	GCD int64
	// A and B are the Bézout coefficients of (d, v).
	A, B int64
	// Duration is the time taken to solve the system.
	Duration time.Duration
	// Err contains any input error reported by the solver.
	Err error
}

// SolveJob solves one system, recording a tracing span and metrics.
// The context is consulted before work starts; a solve itself is too fast
// to be interruptible.
func SolveJob(ctx context.Context, job Job) Result {
	_, span := tracer.Start(ctx, "diophantine.solve", trace.WithAttributes(
		attribute.Int64("equation.d", job.D),
		attribute.Int64("equation.v", job.V),
		attribute.Int64("equation.w", job.W),
		attribute.Int64("bound.p", job.P),
		attribute.Int64("bound.q", job.Q),
		attribute.Bool("bound.constrain_t", job.ConstrainT),
	))
	defer span.End()

	res := Result{Job: job}
	start := time.Now()

	if err := ctx.Err(); err != nil {
		res.Err = err
		span.SetStatus(codes.Error, err.Error())
		return res
	}

	g, a, b, err := diophantine.Bezout(job.D, job.V)
	if err == nil {
		res.GCD, res.A, res.B = g, a, b
		res.Solutions, err = diophantine.SolveBounded(job.D, job.V, job.W, job.P, job.Q, job.ConstrainT)
	}
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = apperrors.SolveError{Cause: err}
	}

	outcome := metrics.OutcomeSolved
	switch {
	case err != nil:
		var unboundedErr diophantine.UnboundedSolutionError
		if errors.As(err, &unboundedErr) {
			outcome = metrics.OutcomeUnbounded
		} else {
			outcome = metrics.OutcomeInvalid
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	case len(res.Solutions) == 0:
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordSolve(outcome, len(res.Solutions), res.Duration.Seconds())
	span.SetAttributes(attribute.Int("solutions", len(res.Solutions)))

	return res
}

// ExecuteBatch solves every job concurrently with at most workers in
// flight, reporting completion through reporter. Results are returned in
// job order regardless of completion order, which keeps batch output
// deterministic.
func ExecuteBatch(ctx context.Context, jobs []Job, workers int, reporter ProgressReporter) []Result {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(jobs))

	reporter.Start(len(jobs))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		idx, j := i, job
		g.Go(func() error {
			results[idx] = SolveJob(ctx, j)
			reporter.JobDone(int(done.Add(1)), len(jobs))
			return nil
		})
	}
	g.Wait()
	reporter.Finish()

	return results
}

// AnalyzeResults derives the process exit code from a batch: any canceled
// or timed-out job dominates, then any input error, otherwise success.
// An empty solution set is a valid answer, not a failure.
func AnalyzeResults(results []Result) int {
	code := apperrors.ExitSuccess
	for _, res := range results {
		if res.Err == nil {
			continue
		}
		if apperrors.IsContextError(res.Err) {
			return apperrors.ExitErrorTimeout
		}
		code = apperrors.ExitErrorConfig
	}
	return code
}
