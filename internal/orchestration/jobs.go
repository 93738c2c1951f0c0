package orchestration

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/agbru/diocalc/internal/errors"
)

// Job is one equation s*d + t*v = w to solve with a bound on one unknown.
type Job struct {
	// Line is the 1-based source line the job was parsed from (0 when the
	// job was constructed directly).
	Line int
	// D, V, W are the equation operands.
	D, V, W int64
	// P, Q are the inclusive bounds on the constrained unknown.
	P, Q int64
	// ConstrainT applies the bound to t instead of s.
	ConstrainT bool
}

// Describe returns the job's equation in the conventional shape.
func (j Job) Describe() string {
	side := "s"
	if j.ConstrainT {
		side = "t"
	}
	return fmt.Sprintf("s*%d + t*%d = %d with %d <= %s <= %d", j.D, j.V, j.W, j.P, side, j.Q)
}

// ParseJobs reads a batch description, one equation per line, in the form
//
//	d v w p q [s|t]
//
// where the optional trailing token selects which unknown the bound applies
// to (default s). Blank lines and lines starting with '#' are skipped.
//
// Returns a ConfigError naming the offending line on malformed input.
func ParseJobs(r io.Reader) ([]Job, error) {
	var jobs []Job
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 5 || len(fields) > 6 {
			return nil, apperrors.NewConfigError("line %d: want 'd v w p q [s|t]', got %d fields", line, len(fields))
		}

		job := Job{Line: line}
		for i, dst := range []*int64{&job.D, &job.V, &job.W, &job.P, &job.Q} {
			n, err := strconv.ParseInt(fields[i], 10, 64)
			if err != nil {
				return nil, apperrors.NewConfigError("line %d: field %d: %q is not an integer", line, i+1, fields[i])
			}
			*dst = n
		}
		if len(fields) == 6 {
			switch fields[5] {
			case "s":
				job.ConstrainT = false
			case "t":
				job.ConstrainT = true
			default:
				return nil, apperrors.NewConfigError("line %d: bound side must be 's' or 't', got %q", line, fields[5])
			}
		}
		jobs = append(jobs, job)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.WrapError(err, "reading batch input")
	}
	return jobs, nil
}
