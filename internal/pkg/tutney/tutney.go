// Package tutney translates text to and from Tutney, a spelling
// language in the Pig Latin family once used by parents as a thin
// secret code. Every letter of a word is spoken as a little syllable:
// vowels stand for themselves, a regular consonant c becomes c-u-c
// ("car" is spoken "cuc a rur"), and five irregulars have fixed names
// (h "hash", j "judge", q "quack", w "wac", y "yac").
//
// In writing, the syllables of a word are joined with a pad character
// so that word boundaries survive; everything that is not an ASCII
// letter passes through unchanged, and letter case is preserved on the
// leading letter of each syllable.
//
// Round trips are not exact for text that already contains the pad
// character: after expansion those characters cannot be told apart from
// the inserted pads, so Contract removes them and fuses the
// surrounding words.
package tutney

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultPad joins the syllables of a word.
const DefaultPad = '-'

var (
	// ErrBadPad is returned for a pad character that could be taken
	// for part of a syllable.
	ErrBadPad = errors.New("tutney: pad must not be an ASCII letter")

	// ErrBadSyllable is returned by Contract when the input contains a
	// letter run that is not a Tutney syllable. The run is passed
	// through to the output unchanged.
	ErrBadSyllable = errors.New("tutney: invalid syllable")
)

// irregular maps the five irregular consonants to the tail of their
// spoken names. The leading letter keeps its case, the tail does not.
var irregular = map[byte]string{
	'h': "ash",
	'j': "udge",
	'q': "uack",
	'w': "ac",
	'y': "ac",
}

// Expand translates text to Tutney with the default pad.
func Expand(text string) string {
	return Coder{}.Expand(text)
}

// Contract translates Tutney back to text with the default pad.
func Contract(text string) (string, error) {
	return Coder{}.Contract(text)
}

// Coder is a Tutney translator with a configurable pad. The zero value
// uses DefaultPad.
type Coder struct {
	Pad rune
}

// NewCoder returns a Coder using the given pad character.
func NewCoder(pad rune) (Coder, error) {
	if isLetter(pad) {
		return Coder{}, ErrBadPad
	}
	return Coder{Pad: pad}, nil
}

func (c Coder) pad() rune {
	if c.Pad == 0 {
		return DefaultPad
	}
	return c.Pad
}

// Expand translates text to Tutney. Adjacent letters of the input are
// joined with the pad; non-letters are copied through in place.
func (c Coder) Expand(text string) string {
	pad := c.pad()
	var b strings.Builder
	prevLetter := false
	for _, r := range text {
		if !isLetter(r) {
			b.WriteRune(r)
			prevLetter = false
			continue
		}
		if prevLetter {
			b.WriteRune(pad)
		}
		writeSyllable(&b, byte(r))
		prevLetter = true
	}
	return b.String()
}

func writeSyllable(b *strings.Builder, letter byte) {
	b.WriteByte(letter)
	lower := lowercase(letter)
	switch {
	case isVowel(lower):
	case irregular[lower] != "":
		b.WriteString(irregular[lower])
	default:
		b.WriteByte('u')
		b.WriteByte(lower)
	}
}

// Contract translates Tutney back to plain text. Each maximal run of
// letters must form one syllable; the single pad after a syllable is
// swallowed, any other non-letter is copied through. Invalid syllables
// are copied through unchanged and reported: the returned text is
// complete even when the error is non-nil.
func (c Coder) Contract(text string) (string, error) {
	pad := c.pad()
	var b strings.Builder
	var syllable []byte
	var firstErr error

	flush := func() {
		if len(syllable) == 0 {
			return
		}
		letter, ok := contractSyllable(syllable)
		if !ok {
			b.Write(syllable)
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: %q", ErrBadSyllable, syllable)
			}
		} else {
			b.WriteByte(letter)
		}
		syllable = syllable[:0]
	}

	for _, r := range text {
		if isLetter(r) {
			syllable = append(syllable, byte(r))
			continue
		}
		hadSyllable := len(syllable) > 0
		flush()
		if r == pad && hadSyllable {
			continue
		}
		b.WriteRune(r)
	}
	flush()
	return b.String(), firstErr
}

// contractSyllable inverts writeSyllable. Unlike a looser check on just
// the tail, the tail must belong to the leading letter, so "hac" and
// "jash" are rejected.
func contractSyllable(s []byte) (byte, bool) {
	letter := s[0]
	lower := lowercase(letter)
	switch {
	case isVowel(lower):
		return letter, len(s) == 1
	case irregular[lower] != "":
		return letter, string(s[1:]) == irregular[lower]
	default:
		return letter, len(s) == 3 && s[1] == 'u' && s[2] == lower
	}
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isVowel(lower byte) bool {
	switch lower {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func lowercase(letter byte) byte {
	if 'A' <= letter && letter <= 'Z' {
		return letter + 'a' - 'A'
	}
	return letter
}
