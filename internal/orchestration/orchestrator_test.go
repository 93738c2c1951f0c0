package orchestration

import (
	"context"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/agbru/diocalc/internal/diophantine"
	apperrors "github.com/agbru/diocalc/internal/errors"
)

func TestSolveJob(t *testing.T) {
	res := SolveJob(context.Background(), Job{D: 23, V: 31, W: 4, P: 0, Q: 99})
	if res.Err != nil {
		t.Fatalf("SolveJob returned error: %v", res.Err)
	}
	if res.GCD != 1 {
		t.Errorf("GCD = %d, want 1", res.GCD)
	}
	if got := res.A*23 + res.B*31; got != res.GCD {
		t.Errorf("Bézout identity violated: %d*23 + %d*31 = %d, want %d", res.A, res.B, got, res.GCD)
	}
	want := []diophantine.Solution{{S: 15, T: -11}, {S: 46, T: -34}, {S: 77, T: -57}}
	if !reflect.DeepEqual(res.Solutions, want) {
		t.Errorf("Solutions = %v, want %v", res.Solutions, want)
	}
}

func TestSolveJob_InvalidInput(t *testing.T) {
	res := SolveJob(context.Background(), Job{D: 23, V: 0, W: 4, P: 0, Q: 99})
	if res.Err == nil {
		t.Fatal("SolveJob with v=0 returned no error")
	}
	if res.Solutions != nil {
		t.Errorf("Solutions = %v, want nil", res.Solutions)
	}
}

func TestSolveJob_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := SolveJob(ctx, Job{D: 23, V: 31, W: 4, P: 0, Q: 99})
	if !apperrors.IsContextError(res.Err) {
		t.Errorf("Err = %v, want context error", res.Err)
	}
}

// countingReporter records progress callbacks so the test can verify the
// reporter contract without a terminal.
type countingReporter struct {
	mu       sync.Mutex
	started  int
	done     int
	finished bool
}

func (r *countingReporter) Start(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = total
}

func (r *countingReporter) JobDone(done, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done++
}

func (r *countingReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = true
}

func TestExecuteBatch_OrderAndProgress(t *testing.T) {
	jobs := []Job{
		{D: 23, V: 31, W: 4, P: 0, Q: 99},
		{D: -199, V: 98, W: 5, P: 0, Q: 99, ConstrainT: true},
		{D: 24, V: 18, W: 3, P: 0, Q: 99},
		{D: 0, V: 21, W: 42, P: 0, Q: 99},
	}
	reporter := &countingReporter{}
	results := ExecuteBatch(context.Background(), jobs, 3, reporter)

	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	for i, res := range results {
		if !reflect.DeepEqual(res.Job, jobs[i]) {
			t.Errorf("results[%d].Job = %+v, want %+v", i, res.Job, jobs[i])
		}
	}
	if len(results[0].Solutions) != 3 {
		t.Errorf("job 0: got %d solutions, want 3", len(results[0].Solutions))
	}
	if len(results[2].Solutions) != 0 {
		t.Errorf("job 2: got %d solutions, want 0", len(results[2].Solutions))
	}
	if reporter.started != len(jobs) || reporter.done != len(jobs) || !reporter.finished {
		t.Errorf("reporter saw start=%d done=%d finished=%v", reporter.started, reporter.done, reporter.finished)
	}
}

func TestExecuteBatch_Deterministic(t *testing.T) {
	jobs := []Job{
		{D: 23, V: 31, W: 4, P: 0, Q: 99},
		{D: 23, V: 31, W: 4, P: 0, Q: 99, ConstrainT: true},
		{D: -199, V: 98, W: 5, P: 0, Q: 99, ConstrainT: true},
	}
	first := ExecuteBatch(context.Background(), jobs, 4, NullProgressReporter{})
	for i := 0; i < 10; i++ {
		again := ExecuteBatch(context.Background(), jobs, 4, NullProgressReporter{})
		for k := range first {
			if !reflect.DeepEqual(first[k].Solutions, again[k].Solutions) {
				t.Fatalf("run %d: results[%d] = %v, want %v", i, k, again[k].Solutions, first[k].Solutions)
			}
		}
	}
}

func TestAnalyzeResults(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		want    int
	}{
		{"all success", []Result{{}, {}}, apperrors.ExitSuccess},
		{"empty batch", nil, apperrors.ExitSuccess},
		{"input error", []Result{{}, {Err: diophantine.InvalidDivisorError{V: 0}}}, apperrors.ExitErrorConfig},
		{"timeout dominates", []Result{
			{Err: diophantine.InvalidDivisorError{V: 0}},
			{Err: context.DeadlineExceeded},
		}, apperrors.ExitErrorTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeResults(tt.results); got != tt.want {
				t.Errorf("AnalyzeResults = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExecuteBatch_RespectsCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	<-ctx.Done()

	jobs := make([]Job, 8)
	for i := range jobs {
		jobs[i] = Job{D: 23, V: 31, W: 4, P: 0, Q: 99}
	}
	results := ExecuteBatch(ctx, jobs, 2, NullProgressReporter{})
	if AnalyzeResults(results) != apperrors.ExitErrorTimeout {
		t.Error("expected timeout exit code for a canceled batch")
	}
}
