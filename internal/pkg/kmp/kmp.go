// Package kmp provides an implementation of the Knuth-Morris-Pratt string
// matching algorithm. KMP matches a single pattern against an input in
// O(n + m) time, where n is the input length and m is the pattern length,
// by precomputing a failure function that lets the scan reuse previously
// matched prefix information instead of backtracking.
//
// The failure function doubles as a period detector: the same table yields
// the shortest repeating unit of a string and the border decomposition used
// for expected-wait calculations.
package kmp

import (
	"errors"
	"slices"
)

var (
	// ErrEmptyPattern is returned when an operation requires a non-empty pattern.
	ErrEmptyPattern = errors.New("kmp: empty pattern")

	// ErrEmptyInput is returned when an operation requires a non-empty input.
	ErrEmptyInput = errors.New("kmp: empty input")
)

// NotFound is returned by find operations when the pattern does not occur.
const NotFound = -1

// FailureFunc is the KMP failure function of a pattern of length m.
// It has length m+1 and is indexed 1-based: f[i] is the length of the
// longest proper prefix of pattern[0:i] that is also a proper suffix of it.
// f[0] is unused and always 0. For every i, f[i] < i and f[i+1] <= f[i]+1.
type FailureFunc []int

// BuildFailureFunc computes the failure function of pattern.
// Returns ErrEmptyPattern if the pattern is empty.
//
// The candidate length t only grows by one per position and every fallback
// t = f[t] strictly shrinks it, so total work is bounded by 2m and the
// construction runs in O(m) regardless of how often individual positions
// fall back. A per-position rescan would be an O(m^2) regression.
func BuildFailureFunc[S comparable](pattern []S) (FailureFunc, error) {
	m := len(pattern)
	if m == 0 {
		return nil, ErrEmptyPattern
	}

	f := make(FailureFunc, m+1)
	t := 0
	for s := 1; s < m; s++ {
		for t > 0 && pattern[s] != pattern[t] {
			t = f[t]
		}
		if pattern[s] == pattern[t] {
			t++
		}
		f[s+1] = t
	}
	return f, nil
}

// Matcher holds a pattern together with its precomputed failure function.
// A Matcher is immutable after construction: the failure function is built
// once per pattern (O(m)) and may be reused across any number of scans,
// including concurrent scans of different inputs, without locking.
type Matcher[S comparable] struct {
	pattern []S
	failure FailureFunc
}

// NewMatcher builds a Matcher for pattern.
// The pattern is copied, so the caller may reuse its slice afterwards.
// Returns ErrEmptyPattern if the pattern is empty.
func NewMatcher[S comparable](pattern []S) (*Matcher[S], error) {
	f, err := BuildFailureFunc(pattern)
	if err != nil {
		return nil, err
	}
	return &Matcher[S]{pattern: slices.Clone(pattern), failure: f}, nil
}

// Len returns the pattern length.
func (m *Matcher[S]) Len() int {
	return len(m.pattern)
}

// FailureFunc returns a copy of the matcher's failure function.
func (m *Matcher[S]) FailureFunc() FailureFunc {
	return slices.Clone(m.failure)
}

// FindFirst returns the 0-based index of the first occurrence of the
// pattern in text, or NotFound. The scan is a single left-to-right pass:
// the match state s counts how many pattern symbols are matched against
// the tail of the text read so far, and on a mismatch falls back through
// the failure function instead of re-reading text. Runs in O(n) amortized,
// by the same argument as the construction.
func (m *Matcher[S]) FindFirst(text []S) int {
	s := 0
	for i := range text {
		for s > 0 && text[i] != m.pattern[s] {
			s = m.failure[s]
		}
		if text[i] == m.pattern[s] {
			s++
		}
		if s == len(m.pattern) {
			return i - len(m.pattern) + 1
		}
	}
	return NotFound
}

// Count returns the number of occurrences of the pattern in text,
// counting overlapping occurrences: after a full match the state continues
// from failure[m] rather than resetting to zero, so "aa" occurs three
// times in "aaaa". Callers wanting disjoint counts can divide positions
// themselves; this matcher deliberately reports the overlapping count.
func (m *Matcher[S]) Count(text []S) int {
	count := 0
	s := 0
	for i := range text {
		for s > 0 && text[i] != m.pattern[s] {
			s = m.failure[s]
		}
		if text[i] == m.pattern[s] {
			s++
		}
		if s == len(m.pattern) {
			count++
			s = m.failure[s]
		}
	}
	return count
}
