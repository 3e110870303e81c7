// Package ordinal renders finite ordinals in their set-theoretic form.
// Under the von Neumann construction each ordinal is the set of all
// smaller ordinals, so counting from zero (the empty set, written 0)
// the numerals run
//
//	0, {0}, {0,{0}}, {0,{0},{0,{0}}}, ...
package ordinal

import (
	"errors"
	"strings"
)

// MaxN bounds the argument. The numeral for n is 2^(n+1)-1 characters
// long, so this keeps the output around two megabytes.
const MaxN = 20

// ErrRange is returned for arguments outside 0..MaxN.
var ErrRange = errors.New("ordinal: n out of range")

// Format returns the von Neumann numeral for n, the set of the
// numerals of everything below n.
func Format(n int) (string, error) {
	if n < 0 || n > MaxN {
		return "", ErrRange
	}
	memo := make([]string, n+1)
	memo[0] = "0"
	for k := 1; k <= n; k++ {
		memo[k] = "{" + strings.Join(memo[:k], ",") + "}"
	}
	return memo[n], nil
}
