package diophantine

import "math/big"

// floorDivBig returns floor(x / y) as a new big.Int. y must be non-zero.
func floorDivBig(x, y *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (y.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

// ceilDivBig returns ceil(x / y) as a new big.Int. y must be non-zero.
func ceilDivBig(x, y *big.Int) *big.Int {
	q := floorDivBig(new(big.Int).Neg(x), y)
	return q.Neg(q)
}

// SolveBounded returns every integer pair (s, t) solving s*d + t*v = w whose
// constrained unknown lies in the inclusive range [p, q]. The bound applies
// to s by default and to t when constrainSecond is true.
//
// Solutions are emitted in increasing order of the family parameter n, which
// keeps repeated calls with identical inputs identically ordered. An empty
// result means no solution exists (w is not a multiple of gcd(d, v)) or no
// integer parameter falls inside the bound.
//
// All products and interval endpoints are computed with arbitrary-precision
// intermediates, so the call cannot overflow internally even when m*a or m*b
// exceed the int64 range; inputs whose solution values themselves exceed
// int64 are outside the supported envelope.
//
// SolveBounded fails with InvalidRangeError when p >= q and with
// InvalidDivisorError when v <= 0. When d = 0 and the bound applies to t,
// t is constant at m*b independent of the parameter: the result is empty
// when that constant misses [p, q], and UnboundedSolutionError is returned
// when it does not, since every integer parameter would then qualify.
func SolveBounded(d, v, w, p, q int64, constrainSecond bool) ([]Solution, error) {
	if p >= q {
		return nil, InvalidRangeError{P: p, Q: q}
	}
	g, _, err := Reduce(d, v)
	if err != nil {
		return nil, err
	}

	// A solution exists only when w is an exact multiple of the gcd.
	m, r := floorDivMod(w, g)
	if r != 0 {
		return nil, nil
	}

	_, a, b, err := Bezout(d, v)
	if err != nil {
		return nil, err
	}

	// Particular solution (m*a, m*b), widened before multiplying.
	ma := new(big.Int).Mul(big.NewInt(m), big.NewInt(a))
	mb := new(big.Int).Mul(big.NewInt(m), big.NewInt(b))
	bigD := big.NewInt(d)
	bigV := big.NewInt(v)

	// The closed interval of parameters n for which the bound holds depends
	// on which unknown is constrained and on the monotonicity direction of
	// that unknown in n.
	var lower, upper *big.Int
	switch {
	case !constrainSecond:
		// s(n) = m*a + n*v is increasing in n since v > 0.
		lower = ceilDivBig(new(big.Int).Sub(big.NewInt(p), ma), bigV)
		upper = floorDivBig(new(big.Int).Sub(big.NewInt(q), ma), bigV)
	case d == 0:
		// t is constant at m*b; the family is either empty or infinite.
		t := mb.Int64()
		if t < p || t > q {
			return nil, nil
		}
		return nil, UnboundedSolutionError{T: t}
	case d > 0:
		// t(n) = m*b - n*d is decreasing in n.
		lower = ceilDivBig(new(big.Int).Sub(mb, big.NewInt(q)), bigD)
		upper = floorDivBig(new(big.Int).Sub(mb, big.NewInt(p)), bigD)
	default:
		// d < 0: t(n) is increasing in n.
		lower = ceilDivBig(new(big.Int).Sub(mb, big.NewInt(p)), bigD)
		upper = floorDivBig(new(big.Int).Sub(mb, big.NewInt(q)), bigD)
	}

	var sols []Solution
	one := big.NewInt(1)
	s := new(big.Int)
	t := new(big.Int)
	for n := new(big.Int).Set(lower); n.Cmp(upper) <= 0; n.Add(n, one) {
		s.Mul(n, bigV)
		s.Add(s, ma)
		t.Mul(n, bigD)
		t.Sub(mb, t)
		sols = append(sols, Solution{S: s.Int64(), T: t.Int64()})
	}
	return sols, nil
}
