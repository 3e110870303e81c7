package kmp

// The string convenience layer operates on bytes. Callers matching over
// Unicode scalar values should convert to []rune and use the generic API;
// mixing the two views on the same multibyte text gives different indices.

// NewStringMatcher builds a byte matcher from a pattern string.
func NewStringMatcher(pattern string) (*Matcher[byte], error) {
	return NewMatcher([]byte(pattern))
}

// FindString returns the byte index of the first occurrence of pattern in
// text, or NotFound. Returns ErrEmptyPattern for an empty pattern.
func FindString(text, pattern string) (int, error) {
	m, err := NewStringMatcher(pattern)
	if err != nil {
		return NotFound, err
	}
	return m.FindFirst([]byte(text)), nil
}

// CountString returns the number of possibly overlapping occurrences of
// pattern in text. Returns ErrEmptyPattern for an empty pattern.
func CountString(text, pattern string) (int, error) {
	m, err := NewStringMatcher(pattern)
	if err != nil {
		return 0, err
	}
	return m.Count([]byte(text)), nil
}

// ShortestRepeatingPrefixString returns the shortest repeating unit of s.
// Returns ErrEmptyInput for an empty s.
func ShortestRepeatingPrefixString(s string) (string, error) {
	unit, err := ShortestRepeatingPrefix([]byte(s))
	if err != nil {
		return "", err
	}
	return string(unit), nil
}
