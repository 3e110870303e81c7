// Package hypergeom evaluates the Gauss hypergeometric function
// F(a,b,c;x) for real parameters and real x < 1.
//
// Inside the unit disk F has the series expansion
//
//	F(a,b,c;x) = 1 + abx/c + ... + [(a)_j(b)_j / (j!(c)_j)] x^j + ...
//
// where (a)_j = a(a+1)...(a+j-1). The series is summed directly for
// 0 < x < 1. For x <= 0 the Pfaff transformation
//
//	F(a,b,c;x) = (1-x)^(-a) F(a,c-b,c;x/(x-1))
//
// maps the argument into [0,1) first, so every x from minus infinity
// up to (but not including) 1 is covered. See Lebedev, Special
// Functions and Their Applications, pp. 238-250.
package hypergeom

import (
	"errors"
	"math"
)

var (
	// ErrDomain is returned for x >= 1, where F is singular or the
	// series diverges.
	ErrDomain = errors.New("hypergeom: x must be less than 1")

	// ErrPole is returned when c is a nonpositive integer and neither
	// a nor b terminates the series before 1/(c)_j blows up.
	ErrPole = errors.New("hypergeom: pole at nonpositive integer c")

	// ErrTolerance is returned for a non-positive tolerance.
	ErrTolerance = errors.New("hypergeom: tolerance must be positive")

	// ErrNoConverge is returned when the term limit is reached before
	// the tail bound drops below the tolerance.
	ErrNoConverge = errors.New("hypergeom: series did not converge within term limit")
)

// maxTerms caps the series length. Convergence slows as x approaches 1,
// but anything needing more terms than this is better served by a
// different transformation than by waiting.
const maxTerms = 1 << 24

// Result carries the value of F together with what the summation can
// say about its own accuracy.
type Result struct {
	// Value is the computed F(a,b,c;x).
	Value float64

	// Bound bounds the truncation error of the series tail that was
	// not summed. It is zero when the series terminated exactly.
	// Rounding error in the summed terms is not included.
	Bound float64

	// Terms is the number of series terms summed, counting the
	// leading 1.
	Terms int
}

// F computes the hypergeometric function F(a,b,c;x) with truncation
// error below tol.
func F(a, b, c, x, tol float64) (float64, error) {
	r, err := FDetail(a, b, c, x, tol)
	return r.Value, err
}

// FDetail is F with the tail bound and term count exposed.
//
// When a or b is zero every term after the leading 1 vanishes, so the
// result is exactly 1 for any c and x.
func FDetail(a, b, c, x, tol float64) (Result, error) {
	if !(tol > 0) {
		return Result{}, ErrTolerance
	}
	if x >= 1 {
		return Result{}, ErrDomain
	}
	if a == 0 || b == 0 {
		return Result{Value: 1, Terms: 1}, nil
	}

	// Pfaff transformation for x <= 0. The factor uses the original x.
	scale := 1.0
	if x <= 0 {
		scale = math.Pow(1-x, -a)
		b = c - b
		x = x / (x - 1)
	}

	if err := checkPole(a, b, c); err != nil {
		return Result{}, err
	}

	r, err := sum(a, b, c, x, tol)
	if err != nil {
		return Result{}, err
	}
	r.Value *= scale
	r.Bound *= scale
	return r, nil
}

// checkPole rejects parameter sets where the series runs into a zero of
// (c)_j. A nonpositive integer a or b saves the day only if its zero
// arrives strictly first, which for a means c < a <= 0. The boundary
// case a == c is rejected too: its value depends on a limiting
// convention this package does not pick.
func checkPole(a, b, c float64) error {
	if !isNonposInt(c) {
		return nil
	}
	if isNonposInt(a) && a > c {
		return nil
	}
	if isNonposInt(b) && b > c {
		return nil
	}
	return ErrPole
}

func isNonposInt(v float64) bool {
	return v <= 0 && v == math.Trunc(v)
}

// sum evaluates the series for F(a,b,c;x), 0 <= x < 1, stopping once a
// rigorous bound on the unsummed tail is below tol.
//
// With A_n the nth term and B_n = (a+n)(b+n)/[(c+n)(1+n)], the ratio
// A_{n+1}/A_n is B_n*x. For n > 2K, K = max(|a|,|b|,|c|), the quantity
// C_n = 1 + 6K/n + 2(K/n)^2 is a nonincreasing upper bound for |B_n|,
// so once C_n*x < 1 the tail from A_n on is dominated by a geometric
// series and |A_n|/(1 - C_n*x) bounds it.
func sum(a, b, c, x, tol float64) (Result, error) {
	k := math.Max(math.Abs(a), math.Max(math.Abs(b), math.Abs(c)))

	value := 1.0
	term := a * b * x / c
	for n := 1.0; n <= maxTerms; n++ {
		if term == 0 {
			// A zero numerator factor ends the series: F is a
			// polynomial and value is exact.
			return Result{Value: value, Terms: int(n)}, nil
		}
		if n > 2*k {
			cn := 1 + 6*k/n + 2*(k/n)*(k/n)
			if cn*x < 1 {
				if bound := math.Abs(term) / (1 - cn*x); bound < tol {
					return Result{Value: value, Bound: bound, Terms: int(n)}, nil
				}
			}
		}
		value += term
		a++
		b++
		c++
		term = term * a * b * x / ((n + 1) * c)
	}
	return Result{}, ErrNoConverge
}
