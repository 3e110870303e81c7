package kmp

import (
	"errors"
	"math/big"
)

// ErrAlphabetSize is returned when an expected-wait alphabet has no symbols.
var ErrAlphabetSize = errors.New("kmp: alphabet size must be at least 1")

// ExpectedWait returns the expected number of draws until pattern first
// appears in a sequence of independent symbols drawn uniformly from an
// alphabet of q symbols.
//
// The recurrence E T(s) = E T(b) + q^len(s), where b is the longest proper
// border of s, unrolls along the failure chain into a sum of q^len over
// every non-empty border of s, the whole pattern included. For q = 2 this
// is the classic coin-flip waiting time: "11" takes 6 flips on average,
// "10" only 4. The result is always an integer but grows like q^m, hence
// the big.Int return.
func ExpectedWait[S comparable](pattern []S, q int) (*big.Int, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	if q < 1 {
		return nil, ErrAlphabetSize
	}

	f, err := BuildFailureFunc(pattern)
	if err != nil {
		return nil, err
	}

	wait := new(big.Int)
	base := big.NewInt(int64(q))
	for n := len(pattern); n > 0; n = f[n] {
		wait.Add(wait, new(big.Int).Exp(base, big.NewInt(int64(n)), nil))
	}
	return wait, nil
}
