package orchestration

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	apperrors "github.com/agbru/diocalc/internal/errors"
)

func TestParseJobs(t *testing.T) {
	input := `
# reference systems
-199 98 5 0 99 t
23 31 4 0 99

23 31 4 0 3 t
`
	jobs, err := ParseJobs(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseJobs returned error: %v", err)
	}
	want := []Job{
		{Line: 3, D: -199, V: 98, W: 5, P: 0, Q: 99, ConstrainT: true},
		{Line: 4, D: 23, V: 31, W: 4, P: 0, Q: 99},
		{Line: 6, D: 23, V: 31, W: 4, P: 0, Q: 3, ConstrainT: true},
	}
	if !reflect.DeepEqual(jobs, want) {
		t.Errorf("ParseJobs = %+v, want %+v", jobs, want)
	}
}

func TestParseJobs_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too few fields", "23 31 4 0"},
		{"too many fields", "23 31 4 0 99 t extra"},
		{"non-integer operand", "a 31 4 0 99"},
		{"bad bound side", "23 31 4 0 99 x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJobs(strings.NewReader(tt.input))
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("error = %v (%T), want ConfigError", err, err)
			}
		})
	}
}

func TestJobDescribe(t *testing.T) {
	job := Job{D: -199, V: 98, W: 5, P: 0, Q: 99, ConstrainT: true}
	want := "s*-199 + t*98 = 5 with 0 <= t <= 99"
	if got := job.Describe(); got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}
