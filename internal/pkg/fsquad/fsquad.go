// Package fsquad simulates a solution to the firing squad
// synchronization problem.
//
// A row of identical finite state machines must all enter a designated
// state in the same time step, where each machine sees only its
// nearest neighbors and the design may not depend on the length of the
// row. The problem goes back to J. Myhill in 1957 and appears as
// problem 2.7-5 in Minsky, Computation: Finite and Infinite Machines,
// Prentice Hall, 1967.
//
// The solution here spreads redness from the middle outward. The
// active general prompts the nearest active soldier to test itself for
// middlehood by an exchange of messages with the ends of the row; the
// machine whose acknowledgements arrive from both sides at once (or
// one step apart, for rows of even length) becomes a red general
// serving the two halves, and the protocol repeats within each half.
// The row fires once every machine has turned red. It is neither the
// fastest solution nor the one with the fewest states.
package fsquad

import (
	"errors"
	"slices"
)

const (
	// DefaultLen is the squad length used when none is given.
	DefaultLen = 8

	// MaxLen bounds the squad length.
	MaxLen = 1024
)

var (
	// ErrLength is returned by New for lengths outside 1..MaxLen.
	ErrLength = errors.New("fsquad: length must be between 1 and 1024")

	// ErrNoSync is returned by Run when the generation limit passes
	// without the row firing.
	ErrNoSync = errors.New("fsquad: generation limit reached before synchronization")
)

// Kind tells generals and soldiers apart. Only the two end machines
// and machines that have since earned a promotion are generals.
type Kind uint8

const (
	Soldier Kind = iota
	General
)

// Color is the firing state. A cell never goes back to black.
type Color uint8

const (
	Black Color = iota
	Red
)

// Direction is where a cell's pending message is addressed. A neighbor
// sees the message only when the direction points at it.
type Direction uint8

const (
	Left Direction = iota
	Right
	Broadcast
)

// Message is the signal a cell shows its neighbors for one step.
type Message uint8

const (
	None    Message = iota
	Test            // prompt the nearest active soldier to test itself
	MidTest         // am I in the middle?
	MidAck          // answer from an end machine
	Reset           // rearm soldiers for the next round
	Promote         // crown the partner of a middle pair
)

// Cell is one machine in the row.
type Cell struct {
	Kind    Kind
	Color   Color
	Active  bool
	Dir     Direction
	Msg     Message
	Testing bool
	Timer   int
}

// Line is a row of machines plus a generation counter.
type Line struct {
	cells []Cell
	prev  []Cell
	gen   int
}

// New arranges n machines: an active general on the left end, a
// passive one on the right, black soldiers in between. A row of one is
// a lone passive general, already red.
func New(n int) (*Line, error) {
	if n < 1 || n > MaxLen {
		return nil, ErrLength
	}
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = Cell{Kind: Soldier, Active: true, Color: Black, Dir: Broadcast}
	}
	cells[0] = Cell{Kind: General, Active: true, Color: Red, Dir: Right, Testing: true}
	cells[n-1] = Cell{Kind: General, Color: Red, Dir: Left}
	return &Line{cells: cells, prev: make([]Cell, n)}, nil
}

// Len returns the number of machines in the row.
func (l *Line) Len() int { return len(l.cells) }

// Generation returns how many steps the row has taken.
func (l *Line) Generation() int { return l.gen }

// Cells returns a copy of the current generation.
func (l *Line) Cells() []Cell { return slices.Clone(l.cells) }

// Fired reports whether every machine is red, the condition for the
// simultaneous volley. Once true it stays true.
func (l *Line) Fired() bool {
	for _, c := range l.cells {
		if c.Color != Red {
			return false
		}
	}
	return true
}

// Step advances the row one generation. Every cell reads only the
// previous generation of its neighbors.
func (l *Line) Step() {
	l.prev, l.cells = l.cells, l.prev
	for j := range l.cells {
		l.cells[j] = nextCell(l.prev, j)
	}
	l.gen++
}

// Run steps the row until it fires and returns the number of steps
// taken. The row always takes at least one step.
func (l *Line) Run(maxGen int) (int, error) {
	for i := 1; i <= maxGen; i++ {
		l.Step()
		if l.Fired() {
			return i, nil
		}
	}
	return 0, ErrNoSync
}

func nextCell(prev []Cell, j int) Cell {
	cell := prev[j]

	var lm, rm Message
	if j > 0 && (prev[j-1].Dir == Right || prev[j-1].Dir == Broadcast) {
		lm = prev[j-1].Msg
	}
	if j < len(prev)-1 && (prev[j+1].Dir == Left || prev[j+1].Dir == Broadcast) {
		rm = prev[j+1].Msg
	}

	if cell.Kind == General {
		return nextGeneral(prev, j, cell, lm, rm)
	}
	return nextSoldier(cell, lm, rm)
}

func nextGeneral(prev []Cell, j int, cell Cell, lm, rm Message) Cell {
	// A reset retires the general from the current round. Everything
	// else about it is left alone.
	if lm == Reset || rm == Reset {
		cell.Active = false
		return cell
	}

	act := cell.Active
	msg := None
	dir := cell.Dir

	switch {
	case lm == MidTest && rm == MidTest:
		msg, dir = MidAck, Broadcast
	case rm == MidTest:
		msg, dir = MidAck, Right
	case lm == MidTest:
		msg, dir = MidAck, Left
	case cell.Active:
		if cell.Testing {
			// Open a round by prompting the nearest active soldier.
			msg, dir = Test, Broadcast
			cell.Testing = false
		} else if (lm == Test && prev[j-1].Kind == Soldier) ||
			(rm == Test && prev[j+1].Kind == Soldier) {
			// A failed tester prodded us into the next round.
			cell.Testing = true
		}
	}

	cell.Active = act
	cell.Dir = dir
	cell.Msg = msg
	return cell
}

func nextSoldier(cell Cell, lm, rm Message) Cell {
	// Promotions first. The promoted cell and its promoter both come
	// up as fresh red generals facing their own half of the row.
	if lm == Promote {
		return promoted(cell, Right)
	}
	if rm == Promote {
		return promoted(cell, Left)
	}
	if cell.Msg == Promote {
		c := promoted(cell, opposite(cell.Dir))
		c.Timer = 0
		return c
	}

	if lm == None && rm == None {
		cell.Msg = None
		if cell.Timer > 0 {
			cell.Timer--
		}
		return cell
	}

	act := false
	msg := None
	dir := cell.Dir

	switch {
	case lm == Reset || rm == Reset:
		// A reset rearms the row for the next round and passes on,
		// away from its source.
		act = true
		msg = Reset
		if lm == Reset {
			dir = Right
		} else {
			dir = Left
		}

	case cell.Active:
		act = true
		switch {
		case lm == Test || rm == Test:
			msg, dir = MidTest, Broadcast
			cell.Testing = true
		case rm == MidAck && lm == MidAck:
			// Both acknowledgements at once: the exact middle.
			cell.Kind = General
			cell.Color = Red
			cell.Testing = true
			msg, dir = Reset, Broadcast
		case rm == MidAck:
			if cell.Testing {
				// First answer back. Sit out and time the wait for
				// the second one.
				act = false
				cell.Timer = 3
			} else {
				msg, dir = MidAck, Left
			}
		case lm == MidAck:
			if cell.Testing {
				act = false
				cell.Timer = 3
			} else {
				msg, dir = MidAck, Right
			}
		case lm != None:
			msg, dir = lm, Right
		default:
			msg, dir = rm, Left
		}

	default: // passive, with some message showing
		switch {
		case cell.Testing && rm == MidAck:
			if cell.Timer >= 1 {
				// The second answer came quickly enough that we are
				// the left half of a middle pair.
				msg, dir = Promote, Right
				cell.Testing = false
				cell.Timer = 0
			} else {
				// Not the middle. Prod the general into the next
				// round.
				msg, dir = Test, Left
				cell.Testing = false
			}
		case cell.Testing && lm == MidAck:
			if cell.Timer >= 1 {
				msg, dir = Promote, Left
				cell.Testing = false
				cell.Timer = 0
			} else {
				msg, dir = Test, Right
				cell.Testing = false
			}
		case lm != None:
			msg, dir = lm, Right
		default:
			msg, dir = rm, Left
		}
		if cell.Timer > 0 {
			cell.Timer--
		}
	}

	cell.Active = act
	cell.Dir = dir
	cell.Msg = msg
	return cell
}

// promoted turns a soldier into a fresh red general facing dir, with a
// reset already on the wire.
func promoted(cell Cell, dir Direction) Cell {
	cell.Kind = General
	cell.Color = Red
	cell.Active = true
	cell.Testing = true
	cell.Msg = Reset
	cell.Dir = dir
	return cell
}

func opposite(d Direction) Direction {
	if d == Right {
		return Left
	}
	return Right
}
