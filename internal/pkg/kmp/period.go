package kmp

import "slices"

// ShortestRepeatingPrefix returns the shortest prefix t of v such that v is
// exactly t repeated len(v)/len(t) times. If v has no shorter repeating
// unit, v itself is returned. Returns ErrEmptyInput for an empty v.
//
// Candidate period lengths are the values on the failure chain
// f[n], f[f[n]], ... of v. A chain value that divides the current best
// length is only a candidate: divisibility alone does not make it a period
// (for "aabaaa" the chain value 2 divides 6 but "aa" repeated is not the
// string), so every candidate is verified by rebuilding the prefix from it
// and comparing. Do not remove the verification. Verified candidates
// shrink the best length and the descent continues, so "aaaa" resolves to
// "a", not "aa".
func ShortestRepeatingPrefix[S comparable](v []S) ([]S, error) {
	if len(v) == 0 {
		return nil, ErrEmptyInput
	}

	f, err := BuildFailureFunc(v)
	if err != nil {
		return nil, err
	}

	best := len(v)
	for u := f[len(v)]; u > 0; u = f[u] {
		if best%u != 0 {
			continue
		}
		rebuilt := make([]S, 0, best)
		for len(rebuilt) < best {
			rebuilt = append(rebuilt, v[:u]...)
		}
		if slices.Equal(rebuilt, v[:best]) {
			best = u
		}
	}
	return v[:best], nil
}
