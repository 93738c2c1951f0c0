package diophantine

import (
	"errors"
	"testing"
)

// FuzzSolveBounded throws arbitrary inputs at the solver and checks the
// structural invariants: errors only for the documented preconditions, and
// every emitted pair solving the equation inside the bound.
func FuzzSolveBounded(f *testing.F) {
	f.Add(int64(23), int64(31), int64(4), int64(0), int64(99), false)
	f.Add(int64(-199), int64(98), int64(5), int64(0), int64(99), true)
	f.Add(int64(24), int64(18), int64(3), int64(0), int64(99), true)
	f.Add(int64(0), int64(21), int64(42), int64(0), int64(5), true)
	f.Add(int64(1), int64(1), int64(0), int64(-1), int64(1), false)

	f.Fuzz(func(t *testing.T, d, v, w, p, q int64, constrainSecond bool) {
		// Keep operands in a range where the int64 equation check below
		// cannot itself overflow, and the output stays small.
		const limit = 1 << 20
		if d < -limit || d > limit || v > limit || w < -limit || w > limit {
			t.Skip()
		}
		if p < -limit || p > limit || q < -limit || q > limit {
			t.Skip()
		}

		sols, err := SolveBounded(d, v, w, p, q, constrainSecond)
		switch {
		case p >= q:
			var rangeErr InvalidRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("p=%d >= q=%d: error = %v, want InvalidRangeError", p, q, err)
			}
			return
		case v <= 0:
			var divErr InvalidDivisorError
			if !errors.As(err, &divErr) {
				t.Fatalf("v=%d: error = %v, want InvalidDivisorError", v, err)
			}
			return
		}
		if err != nil {
			var unboundedErr UnboundedSolutionError
			if !errors.As(err, &unboundedErr) {
				t.Fatalf("unexpected error: %v", err)
			}
			if d != 0 || !constrainSecond {
				t.Fatalf("UnboundedSolutionError outside the d=0/t-bound edge case (d=%d, constrainSecond=%v)", d, constrainSecond)
			}
			return
		}

		for _, sol := range sols {
			if sol.S*d+sol.T*v != w {
				t.Errorf("(%d, %d) does not solve %d*s + %d*t = %d", sol.S, sol.T, d, v, w)
			}
			bounded := sol.S
			if constrainSecond {
				bounded = sol.T
			}
			if bounded < p || bounded > q {
				t.Errorf("(%d, %d): constrained value %d outside [%d, %d]", sol.S, sol.T, bounded, p, q)
			}
		}
	})
}
