// Package diophantine solves two-variable linear Diophantine equations
//
//	s*d + t*v = w
//
// over the integers, where d, v and w are given with v > 0, subject to an
// inclusive bound [p, q] on exactly one of the two unknowns. A solution
// exists only when w is a multiple of gcd(d, v); when it does, the full
// solution family is parameterized by an integer n as
//
//	s(n) = m*a + n*v
//	t(n) = m*b - n*d
//
// with m = w/gcd(d, v) and (a, b) the Bézout coefficients of (d, v).
//
// Every function in this package is pure and safe for concurrent use; no
// state is shared across calls.
package diophantine

import "fmt"

// Solution is one integer pair (S, T) satisfying S*d + T*v = w.
type Solution struct {
	S int64
	T int64
}

// InvalidDivisorError reports a gcd-related operation invoked with a
// divisor that is not strictly positive.
type InvalidDivisorError struct {
	// V is the offending divisor.
	V int64
}

// Error returns the error message for an InvalidDivisorError.
func (e InvalidDivisorError) Error() string {
	return fmt.Sprintf("divisor must be strictly positive, got %d", e.V)
}

// InvalidRangeError reports a constraint range whose lower bound is not
// strictly below its upper bound.
type InvalidRangeError struct {
	// P and Q are the offending bounds.
	P, Q int64
}

// Error returns the error message for an InvalidRangeError.
func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("lower bound %d must be strictly less than upper bound %d", e.P, e.Q)
}

// UnboundedSolutionError reports a solve call whose solution set is
// infinite. This arises only when d = 0 and the bound applies to t: t is
// then constant at m*b, so once that constant falls inside [p, q] every
// integer parameter yields a distinct solution.
type UnboundedSolutionError struct {
	// T is the constant value of t shared by all solutions.
	T int64
}

// Error returns the error message for an UnboundedSolutionError.
func (e UnboundedSolutionError) Error() string {
	return fmt.Sprintf("solution set is infinite: t is constant at %d inside the bound", e.T)
}
