// Package boxtext draws text inside a bordered box for terminal
// output. The classic frame is drawn with +, - and | and a border
// width of three: the bar plus two spaces of interior padding on each
// side. A rounded frame rendered through lipgloss is available as an
// alternative.
package boxtext

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// BorderWidth is the left and right frame width: one bar character and
// two spaces of interior padding.
const BorderWidth = 3

// DefaultCols is the assumed terminal width when Options.Cols is zero.
const DefaultCols = 80

// Style selects the frame character set.
type Style int

const (
	// StyleASCII frames with +, - and |.
	StyleASCII Style = iota

	// StyleRounded frames with lipgloss rounded borders.
	StyleRounded
)

// Options control layout. The zero value draws an ASCII box at the
// left edge of an 80 column terminal.
type Options struct {
	// Cols is the terminal width used for clamping and wrapping.
	// Zero means DefaultCols.
	Cols int

	// Offset shifts the box right by this many spaces. Values are
	// clamped so at least one character of content still fits.
	Offset int

	// Wrap bounds the content width before wrapping. Zero wraps to
	// whatever fits between the borders at the given offset. Words
	// longer than the limit are broken outright.
	Wrap int

	// Center centers each line instead of left-aligning it.
	Center bool

	Style Style
}

// Render draws text in a box and returns it without a trailing
// newline. Input lines are kept, overlong lines are word-wrapped, and
// the box is sized to the widest resulting line.
func Render(text string, opts Options) string {
	cols := opts.Cols
	if cols <= 0 {
		cols = DefaultCols
	}
	if cols < 2*BorderWidth+2 {
		cols = 2*BorderWidth + 2
	}

	offset := opts.Offset
	if maxOffset := cols - 1 - 2*BorderWidth; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}

	avail := cols - 2*BorderWidth - offset
	limit := opts.Wrap
	if limit <= 0 || limit > avail {
		limit = avail
	}

	lines := wrapLines(text, limit)
	widest := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > widest {
			widest = n
		}
	}

	body := make([]string, len(lines))
	for i, line := range lines {
		body[i] = padLine(line, widest, opts.Center)
	}

	if opts.Style == StyleRounded {
		return renderRounded(body, widest, offset)
	}
	return renderASCII(body, widest, offset)
}

// wrapLines word-wraps each input line to the limit, then breaks any
// word still wider than the limit.
func wrapLines(text string, limit int) []string {
	if text == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		wrapped := wrap.String(wordwrap.String(line, limit), limit)
		out = append(out, strings.Split(wrapped, "\n")...)
	}
	return out
}

// padLine pads the text to the box's content width, plus the interior
// padding on both sides.
func padLine(line string, widest int, center bool) string {
	gap := widest - utf8.RuneCountInString(line)
	left := 0
	if center {
		left = gap / 2
	}
	interior := strings.Repeat(" ", BorderWidth-1)
	return interior + strings.Repeat(" ", left) + line +
		strings.Repeat(" ", gap-left) + interior
}

func renderASCII(body []string, widest, offset int) string {
	margin := strings.Repeat(" ", offset)
	border := margin + "+" + strings.Repeat("-", widest+2*BorderWidth-2) + "+"

	var b strings.Builder
	b.WriteString(border)
	for _, line := range body {
		b.WriteString("\n" + margin + "|" + line + "|")
	}
	b.WriteString("\n" + border)
	return b.String()
}

func renderRounded(body []string, widest, offset int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		MarginLeft(offset)
	if len(body) == 0 {
		// Keep the frame the same size an empty ASCII box gets.
		body = []string{strings.Repeat(" ", widest+2*BorderWidth-2)}
	}
	return style.Render(strings.Join(body, "\n"))
}
