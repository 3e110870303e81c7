// Package roman converts between Roman numerals and integers.
//
// Parsing is a small recursive descent over the decades, in the manner
// of the syntax-directed translation exercises in Aho, Sethi and
// Ullman: thousands, then hundreds, then tens, then ones, each decade
// consuming its tokens (M, CM, D, CD, C, XC, L, XL, X, IX, V, IV, I).
// Only canonical numerals are accepted, so VIV and LXL are rejected
// even though their decade values would add up. Numerals must be
// uppercase and unpadded.
//
// The supported range is 1 to 3999 (MMMCMXCIX). Larger values need the
// overbar notation, which plain text cannot carry.
package roman

import (
	"errors"
	"strings"
)

var (
	// ErrBadNumeral is returned for input that is not a canonical
	// uppercase Roman numeral.
	ErrBadNumeral = errors.New("roman: malformed numeral")

	// ErrRange is returned for values outside 1..3999.
	ErrRange = errors.New("roman: value out of range 1..3999")
)

// MaxValue is the largest representable value, MMMCMXCIX.
const MaxValue = 3999

var numerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Format renders n as a Roman numeral.
func Format(n int) (string, error) {
	if n < 1 || n > MaxValue {
		return "", ErrRange
	}
	var b strings.Builder
	for _, d := range numerals {
		for n >= d.value {
			b.WriteString(d.symbol)
			n -= d.value
		}
	}
	return b.String(), nil
}

// Parse reads a canonical uppercase Roman numeral.
func Parse(s string) (int, error) {
	p := parser{rest: s}
	n := 1000 * p.repeat("M", 3)
	n += p.hundreds()
	n += p.tens()
	n += p.ones()
	if p.rest != "" || n == 0 {
		return 0, ErrBadNumeral
	}
	return n, nil
}

type parser struct {
	rest string
}

// take consumes tok when the input starts with it.
func (p *parser) take(tok string) bool {
	if strings.HasPrefix(p.rest, tok) {
		p.rest = p.rest[len(tok):]
		return true
	}
	return false
}

// repeat consumes up to max occurrences of tok and returns the count.
// A fourth occurrence is left in the input and caught as trailing junk.
func (p *parser) repeat(tok string, max int) int {
	count := 0
	for count < max && p.take(tok) {
		count++
	}
	return count
}

func (p *parser) hundreds() int {
	switch {
	case p.take("CM"):
		return 900
	case p.take("CD"):
		return 400
	case p.take("D"):
		return 500 + 100*p.repeat("C", 3)
	default:
		return 100 * p.repeat("C", 3)
	}
}

func (p *parser) tens() int {
	switch {
	case p.take("XC"):
		return 90
	case p.take("XL"):
		return 40
	case p.take("L"):
		return 50 + 10*p.repeat("X", 3)
	default:
		return 10 * p.repeat("X", 3)
	}
}

func (p *parser) ones() int {
	switch {
	case p.take("IX"):
		return 9
	case p.take("IV"):
		return 4
	case p.take("V"):
		return 5 + p.repeat("I", 3)
	default:
		return p.repeat("I", 3)
	}
}
