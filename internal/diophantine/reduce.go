package diophantine

// floorDivMod returns the floor-division quotient and remainder of d by v.
// The remainder carries the sign of v, so for v > 0 it is always in [0, v).
// Go's native / and % truncate toward zero, which disagrees with floor
// division for negative operands; the sign convention matters for
// correctness of the reduction when d is negative.
func floorDivMod(d, v int64) (q, r int64) {
	q = d / v
	r = d % v
	if r != 0 && (r < 0) != (v < 0) {
		q--
		r += v
	}
	return q, r
}

// Reduce computes gcd(d, v) by Euclidean reduction and returns it together
// with the ordered quotients of every non-terminal division step. The
// quotient list is empty when v divides d exactly. The returned gcd is
// always strictly positive.
//
// v must be strictly positive; Reduce fails with InvalidDivisorError
// otherwise. Subsequent divisors are prior remainders, which are always
// positive when the loop continues, so only the initial call needs the
// guard.
func Reduce(d, v int64) (int64, []int64, error) {
	if v <= 0 {
		return 0, nil, InvalidDivisorError{V: v}
	}
	var quotients []int64
	for {
		q, r := floorDivMod(d, v)
		if r == 0 {
			return v, quotients, nil
		}
		quotients = append(quotients, q)
		d, v = v, r
	}
}
