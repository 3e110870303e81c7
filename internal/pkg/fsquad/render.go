package fsquad

import (
	"fmt"
	"strings"
)

// String renders one generation, one cell per |...| group.
func (l *Line) String() string {
	parts := make([]string, len(l.cells))
	for i, c := range l.cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// String renders a cell as |<kind><color><testing><dir><msg>|, for
// example |GRt[0]<->!| for a red active testing general broadcasting a
// test prompt. Legend spells out the notation.
func (c Cell) String() string {
	var b strings.Builder
	b.WriteByte('|')

	kind := "S"
	if c.Kind == General {
		kind = "G"
	}
	if !c.Active {
		kind = strings.ToLower(kind)
	}
	b.WriteString(kind)

	if c.Color == Red {
		b.WriteByte('R')
	}
	if c.Testing {
		fmt.Fprintf(&b, "t[%d]", c.Timer)
	}

	switch c.Dir {
	case Left:
		b.WriteString("<-")
	case Right:
		b.WriteString("->")
	default:
		b.WriteString("<->")
	}

	switch c.Msg {
	case Test:
		b.WriteByte('!')
	case MidTest:
		b.WriteString("m?")
	case MidAck:
		b.WriteString("m!")
	case Reset:
		b.WriteString("0!")
	case Promote:
		b.WriteByte('^')
	}

	b.WriteByte('|')
	return b.String()
}

// Legend describes the cell summary notation.
func Legend() string {
	return `Each cell reads |Kind[Color][t[Timer]]Direction[Message]|.

  Kind       G active general, g passive general,
             S active soldier, s passive soldier.
  Color      R red; absent while black.
  t[n]       testing for middlehood, wait timer n.
  Direction  -> right, <- left, <-> broadcast.
  Message    !   test      prompt the next active soldier
             m?  mid test  am I in the middle?
             m!  mid ack   answer from an end machine
             0!  reset     rearm soldiers for the next round
             ^   promote   crown the partner of a middle pair

The row fires when every cell is red at once.`
}
