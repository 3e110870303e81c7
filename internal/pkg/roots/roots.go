// Package roots locates zeros of real-valued functions of one variable.
//
// The only method offered is bisection: given a continuous f and an
// interval [a, b] with f(a) and f(b) of opposite sign, the interval is
// halved repeatedly, always keeping the half whose endpoints still
// bracket a sign change. The search stops as soon as |f(mid)| drops
// below the caller's tolerance, so the result is a point where f is
// small, not necessarily the point closest to the true zero.
package roots

import (
	"errors"
	"math"
)

var (
	// ErrSwappedBounds is returned when the right endpoint lies to the
	// left of the left endpoint.
	ErrSwappedBounds = errors.New("roots: interval endpoints are swapped")

	// ErrNoBracket is returned when f has the same sign at both
	// endpoints, so the interval is not known to contain a zero.
	ErrNoBracket = errors.New("roots: f has the same sign at both endpoints")

	// ErrTolerance is returned for a non-positive tolerance.
	ErrTolerance = errors.New("roots: tolerance must be positive")

	// ErrNoConverge is returned when the pass limit is reached without
	// |f(mid)| falling below the tolerance. This usually means f is
	// discontinuous across the sign change or the tolerance is tighter
	// than float64 can resolve near the root.
	ErrNoConverge = errors.New("roots: no convergence within pass limit")
)

// maxPasses bounds the number of halvings. 256 passes narrow any
// representable interval far below one ulp, so running longer cannot
// help.
const maxPasses = 256

// Pass describes the state of one bisection step, before the interval
// is halved. N counts from 1.
type Pass struct {
	N      int
	A, B   float64
	FA, FB float64
	Mid    float64
	FMid   float64
}

// Bisect finds a point in [a, b] where |f| < tol using the bisection
// method. f must be continuous on the interval and f(a), f(b) must have
// opposite signs. An endpoint where f is exactly zero is returned
// immediately.
func Bisect(f func(float64) float64, a, b, tol float64) (float64, error) {
	return BisectTrace(f, a, b, tol, nil)
}

// BisectTrace is Bisect with a callback invoked once per pass, before
// the interval is halved. A nil trace is allowed.
func BisectTrace(f func(float64) float64, a, b, tol float64, trace func(Pass)) (float64, error) {
	if b < a {
		return 0, ErrSwappedBounds
	}
	if !(tol > 0) {
		return 0, ErrTolerance
	}

	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if math.Signbit(fa) == math.Signbit(fb) {
		return 0, ErrNoBracket
	}

	for n := 1; n <= maxPasses; n++ {
		mid := (a + b) / 2
		fmid := f(mid)
		if trace != nil {
			trace(Pass{N: n, A: a, B: b, FA: fa, FB: fb, Mid: mid, FMid: fmid})
		}
		if math.Abs(fmid) < tol {
			return mid, nil
		}
		// Keep the half across which the sign still changes.
		if math.Signbit(fa) == math.Signbit(fmid) {
			a, fa = mid, fmid
		} else {
			b, fb = mid, fmid
		}
	}
	return 0, ErrNoConverge
}

// Poly returns the polynomial whose coefficients are given from the
// constant term upward, evaluated by Horner's rule. Poly() with no
// coefficients is the zero function.
func Poly(coeffs ...float64) func(float64) float64 {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return func(x float64) float64 {
		var p float64
		for i := len(c) - 1; i >= 0; i-- {
			p = p*x + c[i]
		}
		return p
	}
}
