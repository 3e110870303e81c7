// Package lisper prints random well formed parenthesis expressions,
// things like (()(()())).
//
// Printing "(" is a push and ")" a matching pop, so the nesting depth
// of the growing expression performs a random walk on the nonnegative
// integers. An unbiased walk returns to zero with probability one but
// in infinite expected time (Spitzer, Principles of Random Walk, Van
// Nostrand, 1964), so the generator is governed by two parameters:
// pushes win by the bias until the minimum depth is reached, and pops
// win by the same bias afterward.
package lisper

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"
)

const (
	// DefaultBias is the probability edge given to the favored move.
	DefaultBias = 0.1

	// DefaultMinDepth is the nesting depth every expression reaches.
	DefaultMinDepth = 4
)

var (
	// ErrDepth is returned for a negative minimum depth.
	ErrDepth = errors.New("lisper: minimum depth must not be negative")

	// ErrBias is returned for a bias outside [0, 0.5].
	ErrBias = errors.New("lisper: bias must lie in [0, 0.5]")
)

// Generate returns a random balanced parenthesis expression nested to
// at least minDepth, drawn from the stream seeded by seed. A zero seed
// takes one from the clock. A minimum depth of zero yields the empty
// expression.
//
// Bias 0 is allowed and tends to produce very long expressions; bias
// 0.5 always produces a pure nest of exactly the minimum depth.
func Generate(minDepth int, bias float64, seed int64) (string, error) {
	if minDepth < 0 {
		return "", ErrDepth
	}
	if bias < 0 || bias > 0.5 || math.IsNaN(bias) {
		return "", ErrBias
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	var b strings.Builder
	depth := 0
	for depth < minDepth {
		if r.Float64() < 0.5+bias {
			b.WriteByte('(')
			depth++
		} else if depth > 0 {
			b.WriteByte(')')
			depth--
		}
	}
	for depth > 0 {
		if r.Float64() > 0.5+bias {
			b.WriteByte('(')
			depth++
		} else {
			b.WriteByte(')')
			depth--
		}
	}
	return b.String(), nil
}

// Depth returns the maximum nesting depth of a balanced parenthesis
// expression, or -1 if the expression is unbalanced or contains other
// characters.
func Depth(s string) int {
	depth, deepest := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
			if depth > deepest {
				deepest = depth
			}
		case ')':
			depth--
			if depth < 0 {
				return -1
			}
		default:
			return -1
		}
	}
	if depth != 0 {
		return -1
	}
	return deepest
}
