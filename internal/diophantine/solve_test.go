package diophantine

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
)

// TestSolveBounded_KnownSolutions pins the exact ordered output for
// reference inputs.
func TestSolveBounded_KnownSolutions(t *testing.T) {
	tests := []struct {
		name            string
		d, v, w, p, q   int64
		constrainSecond bool
		want            []Solution
	}{
		{
			name: "s bounded, positive d",
			d:    23, v: 31, w: 4, p: 0, q: 99,
			want: []Solution{{15, -11}, {46, -34}, {77, -57}},
		},
		{
			name: "t bounded, positive d",
			d:    23, v: 31, w: 4, p: 0, q: 99,
			constrainSecond: true,
			want:            []Solution{{-109, 81}, {-78, 58}, {-47, 35}, {-16, 12}},
		},
		{
			name: "t bounded, negative d",
			d:    -199, v: 98, w: 5, p: 0, q: 99,
			constrainSecond: true,
			want:            []Solution{{31, 63}},
		},
		{
			name: "s bounded, negative d",
			d:    -199, v: 98, w: 5, p: 0, q: 99,
			want: []Solution{{31, 63}},
		},
		{
			name: "tight t bound eliminates the family",
			d:    23, v: 31, w: 4, p: 0, q: 3,
			constrainSecond: true,
			want:            nil,
		},
		{
			name: "w not a multiple of gcd",
			d:    24, v: 18, w: 3, p: 0, q: 99,
			constrainSecond: true,
			want:            nil,
		},
		{
			name: "zero d with s bound",
			d:    0, v: 21, w: 42, p: 0, q: 99,
			want: []Solution{{0, 2}, {21, 2}, {42, 2}, {63, 2}, {84, 2}},
		},
		{
			name: "zero d with t bound missing the constant",
			d:    0, v: 21, w: 42, p: 5, q: 9,
			constrainSecond: true,
			want:            nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SolveBounded(tt.d, tt.v, tt.w, tt.p, tt.q, tt.constrainSecond)
			if err != nil {
				t.Fatalf("SolveBounded returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SolveBounded(%d, %d, %d, %d, %d, %v) = %v, want %v",
					tt.d, tt.v, tt.w, tt.p, tt.q, tt.constrainSecond, got, tt.want)
			}
			for _, sol := range got {
				if sol.S*tt.d+sol.T*tt.v != tt.w {
					t.Errorf("solution (%d, %d) does not satisfy %d*s + %d*t = %d", sol.S, sol.T, tt.d, tt.v, tt.w)
				}
				bounded := sol.S
				if tt.constrainSecond {
					bounded = sol.T
				}
				if bounded < tt.p || bounded > tt.q {
					t.Errorf("solution (%d, %d): constrained value %d outside [%d, %d]", sol.S, sol.T, bounded, tt.p, tt.q)
				}
			}
		})
	}
}

// TestSolveBounded_InvalidRange verifies p >= q is rejected before anything
// else, including otherwise-invalid divisors.
func TestSolveBounded_InvalidRange(t *testing.T) {
	tests := []struct {
		name          string
		d, v, w, p, q int64
	}{
		{"equal bounds", 23, 31, 4, 5, 5},
		{"inverted bounds", 23, 31, 4, 9, 0},
		{"equal bounds with invalid divisor", 23, 0, 4, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, constrainSecond := range []bool{false, true} {
				_, err := SolveBounded(tt.d, tt.v, tt.w, tt.p, tt.q, constrainSecond)
				var rangeErr InvalidRangeError
				if !errors.As(err, &rangeErr) {
					t.Fatalf("error = %v (%T), want InvalidRangeError", err, err)
				}
				if rangeErr.P != tt.p || rangeErr.Q != tt.q {
					t.Errorf("InvalidRangeError = (%d, %d), want (%d, %d)", rangeErr.P, rangeErr.Q, tt.p, tt.q)
				}
			}
		})
	}
}

// TestSolveBounded_InvalidDivisor verifies v <= 0 is rejected.
func TestSolveBounded_InvalidDivisor(t *testing.T) {
	for _, v := range []int64{0, -31} {
		t.Run(fmt.Sprintf("v=%d", v), func(t *testing.T) {
			_, err := SolveBounded(23, v, 4, 0, 99, false)
			var divErr InvalidDivisorError
			if !errors.As(err, &divErr) {
				t.Fatalf("error = %v (%T), want InvalidDivisorError", err, err)
			}
		})
	}
}

// TestSolveBounded_UnboundedFamily covers the undefined-division edge case:
// d = 0 with the bound on t leaves t constant, and once the constant lies
// inside the bound every parameter qualifies, so the call must be rejected
// rather than enumerate forever.
func TestSolveBounded_UnboundedFamily(t *testing.T) {
	_, err := SolveBounded(0, 21, 42, 0, 5, true)
	var unboundedErr UnboundedSolutionError
	if !errors.As(err, &unboundedErr) {
		t.Fatalf("error = %v (%T), want UnboundedSolutionError", err, err)
	}
	if unboundedErr.T != 2 {
		t.Errorf("UnboundedSolutionError.T = %d, want 2", unboundedErr.T)
	}
}

// TestSolveBounded_Deterministic verifies repeated calls produce identical,
// identically-ordered output.
func TestSolveBounded_Deterministic(t *testing.T) {
	first, err := SolveBounded(23, 31, 4, -500, 500, false)
	if err != nil {
		t.Fatalf("SolveBounded returned error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := SolveBounded(23, 31, 4, -500, 500, false)
		if err != nil {
			t.Fatalf("SolveBounded returned error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, again, first)
		}
	}
}

// TestSolveBounded_Reentrant verifies concurrent callers with no
// coordination all observe the same result; the solver shares no state
// across calls.
func TestSolveBounded_Reentrant(t *testing.T) {
	want, err := SolveBounded(-199, 98, 5, -1000, 1000, true)
	if err != nil {
		t.Fatalf("SolveBounded returned error: %v", err)
	}

	const goroutines = 32
	results := make([][]Solution, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			got, err := SolveBounded(-199, 98, 5, -1000, 1000, true)
			if err != nil {
				t.Errorf("goroutine %d: SolveBounded returned error: %v", idx, err)
				return
			}
			results[idx] = got
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if !reflect.DeepEqual(got, want) {
			t.Errorf("goroutine %d result differs from sequential result", i)
		}
	}
}

// TestSolveBounded_LargeOperands exercises the arbitrary-precision interval
// math: m*a and m*b here exceed the int64 range even though every emitted
// solution fits.
func TestSolveBounded_LargeOperands(t *testing.T) {
	// gcd(1000000007, 998244353) = 1, w large; the particular solution is
	// astronomically far from the bounded window. The window is wider than
	// v, so it must contain at least one solution.
	const (
		d = int64(1000000007)
		v = int64(998244353)
		w = int64(123456789012345678)
	)
	sols, err := SolveBounded(d, v, w, 0, 2000000000, false)
	if err != nil {
		t.Fatalf("SolveBounded returned error: %v", err)
	}
	if len(sols) == 0 {
		t.Fatal("expected at least one solution in a window wider than v")
	}
	for _, sol := range sols {
		if sol.S*d+sol.T*v != w {
			t.Errorf("solution (%d, %d) does not satisfy the equation", sol.S, sol.T)
		}
		if sol.S < 0 || sol.S > 2000000000 {
			t.Errorf("solution s = %d outside [0, 2000000000]", sol.S)
		}
	}
}
