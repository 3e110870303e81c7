package worksheet

import (
	"fmt"
	"strings"
	"time"
)

// colGap is the blank width between problem columns.
const colGap = 8

// Text renders the sheet as plain text in the given number of problem
// columns. With the key, the solutions page follows the problems page
// after a form feed.
func (s *Sheet) Text(cols int, withKey bool) string {
	if cols < 1 {
		cols = DefaultCols
	}
	out := s.textPage(cols, false)
	if withKey {
		out += "\f" + s.textPage(cols, true)
	}
	return out
}

func (s *Sheet) textPage(cols int, answers bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sheet:   %s\n", s.ID)
	fmt.Fprintf(&b, "Date:    %s\n", s.Created.Format(time.ANSIC))
	fmt.Fprintf(&b, "Version: %d\n\n", s.Seed)
	if answers {
		b.WriteString("Solutions:\n\n")
	} else {
		b.WriteString("Do the following arithmetic problems:\n(Answers on next page.)\n\n")
	}

	width := 3*s.Digits + 1
	gutter := strings.Repeat(" ", colGap)
	for start := 0; start < len(s.Problems); start += cols {
		if start > 0 {
			// Working room between rows.
			b.WriteString(strings.Repeat("\n", 2*s.Digits))
		}
		end := min(start+cols, len(s.Problems))
		boxes := make([][]string, 0, cols)
		for _, p := range s.Problems[start:end] {
			boxes = append(boxes, textProblem(p, width, s.Digits, answers))
		}
		for line := 0; line < 4; line++ {
			parts := make([]string, len(boxes))
			for i, box := range boxes {
				parts[i] = box[line]
			}
			b.WriteString(strings.TrimRight(strings.Join(parts, gutter), " "))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// textProblem lays one problem out in a fixed width box of four lines.
// Stacked problems right justify both operands with the sign on the
// bottom line and a bar under the last digits; division puts the
// answer slot on top, an overbar above the dividend, and the divisor
// to its left.
func textProblem(p Problem, width, bar int, answers bool) []string {
	blank := strings.Repeat(" ", width)

	if p.Op == Div {
		top := fmt.Sprintf("%d", p.Top)
		lines := []string{
			blank,
			strings.Repeat(" ", width-len(top)) + strings.Repeat("_", len(top)),
			fmt.Sprintf("%*s", width, fmt.Sprintf("%d|%d", p.Bottom, p.Top)),
			blank,
		}
		if answers {
			lines[0] = fmt.Sprintf("%*d", width, p.Answer())
		}
		return lines
	}

	top := fmt.Sprintf("%d", p.Top)
	bottom := fmt.Sprintf("%d", p.Bottom)

	// The sign sits under the top operand's leading digit, or one
	// column further left when the operands are the same length.
	signAt := width - len(top)
	if len(bottom) == len(top) {
		signAt--
	}
	second := strings.Repeat(" ", signAt) + p.Op.String() +
		strings.Repeat(" ", width-signAt-1-len(bottom)) + bottom

	lines := []string{
		fmt.Sprintf("%*s", width, top),
		second,
		strings.Repeat(" ", width-bar) + strings.Repeat("-", bar),
		blank,
	}
	if answers {
		lines[3] = fmt.Sprintf("%*d", width, p.Answer())
	}
	return lines
}
