package numtheory

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b as a positive number.
// Returns ErrZeroOperand if either operand is zero.
func GCD[I constraints.Signed](a, b I) (I, error) {
	g, _, _, err := ExtendedGCD(a, b)
	return g, err
}

// ExtendedGCD returns g = gcd(a, b) together with Bezout coefficients
// x and y such that g = x*a + y*b. Operands may be negative; returns
// ErrZeroOperand if either is zero.
func ExtendedGCD[I constraints.Signed](a, b I) (g, x, y I, err error) {
	if a == 0 || b == 0 {
		return 0, 0, 0, ErrZeroOperand
	}

	sgnA, sgnB := I(1), I(1)
	if a < 0 {
		a, sgnA = -a, -1
	}
	if b < 0 {
		b, sgnB = -b, -1
	}

	g, x, y = bezout(a, b)
	return g, sgnA * x, sgnB * y, nil
}

// bezout computes gcd and coefficients for positive a, b by recursive
// descent: with a <= b and b = a*q + r, a solution C*a + D*r = g for the
// smaller pair rearranges to (C - D*q)*a + D*b = g.
func bezout[I constraints.Signed](a, b I) (g, x, y I) {
	swapped := false
	if b < a {
		a, b = b, a
		swapped = true
	}

	q := b / a
	r := b - a*q
	if r == 0 {
		if swapped {
			return a, 0, 1
		}
		return a, 1, 0
	}

	g, c, d := bezout(a, r)
	if swapped {
		return g, d, c - d*q
	}
	return g, c - d*q, d
}
