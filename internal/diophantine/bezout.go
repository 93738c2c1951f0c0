package diophantine

// Bezout returns g = gcd(d, v) together with coefficients a, b satisfying
//
//	a*d + b*v = g
//
// The pair is the deterministic one produced by back-substitution over the
// quotient sequence of the Euclidean reduction. It is not normalized: callers
// must not assume minimal magnitude, only the defining identity.
//
// v must be strictly positive; the reducer's InvalidDivisorError is
// propagated unchanged.
func Bezout(d, v int64) (g, a, b int64, err error) {
	g, quotients, err := Reduce(d, v)
	if err != nil {
		return 0, 0, 0, err
	}

	// v divides d exactly: the trivial identity 0*d + 1*v = v holds.
	if len(quotients) == 0 {
		return g, 0, 1, nil
	}

	// Standard continued-fraction recurrence: each new coefficient is the
	// previous-previous term minus the current quotient times the previous
	// term. Only the last two terms of each sequence are carried.
	prevA, curA := int64(0), int64(1)
	prevB, curB := int64(1), -quotients[0]
	for _, q := range quotients[1:] {
		prevA, curA = curA, prevA-q*curA
		prevB, curB = curB, prevB-q*curB
	}
	return g, curA, curB, nil
}
