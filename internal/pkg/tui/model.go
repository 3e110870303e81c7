package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quarrylane/pastime/internal/pkg/fsquad"
	"github.com/quarrylane/pastime/internal/pkg/tui/components"
)

const (
	// minInterval caps how fast +/= can drive the animation.
	minInterval = 15 * time.Millisecond
	// maxInterval caps how far - can slow it down.
	maxInterval = 2 * time.Second

	sparkHeight = 4
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	statusStyle  = lipgloss.NewStyle().Faint(true)
	footerStyle  = lipgloss.NewStyle().Faint(true)
	firedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	generalStyle = lipgloss.NewStyle().Bold(true)
	redStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	redBoldStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// TickMsg is sent periodically to advance the simulation
type TickMsg struct{}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// Model holds the animation state: the live row of machines, the
// scrollback of past generations, and the activity sparkline.
type Model struct {
	line     *fsquad.Line
	prev     []fsquad.Cell
	interval time.Duration
	paused   bool
	fired    bool
	showHelp bool

	lines   []string
	history viewport.Model
	spark   *components.Sparkline
	help    components.HelpView

	width  int
	height int
	ready  bool
}

// NewModel builds the initial state for a row of n machines stepping
// once per interval.
func NewModel(n int, interval time.Duration) (Model, error) {
	line, err := fsquad.New(n)
	if err != nil {
		return Model{}, err
	}
	m := Model{
		line:     line,
		prev:     line.Cells(),
		interval: interval,
		fired:    line.Fired(),
		lines:    []string{line.String()},
		spark:    components.NewSparkline(40, sparkHeight),
		help:     components.NewHelpView(),
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		if !m.paused && !m.fired {
			m.step()
		}
		// Reschedule unconditionally so pause, restart, and speed
		// changes never have to restart the tick loop.
		return m, tickCmd(m.interval)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?", "esc":
			m.showHelp = false
			return m, nil
		}
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ": // Pause/resume
		m.paused = !m.paused
		return m, nil
	case "n", "right": // Single step while paused
		if m.paused && !m.fired {
			m.step()
		}
		return m, nil
	case "+", "=":
		m.interval /= 2
		if m.interval < minInterval {
			m.interval = minInterval
		}
		return m, nil
	case "-":
		m.interval *= 2
		if m.interval > maxInterval {
			m.interval = maxInterval
		}
		return m, nil
	case "r":
		m.restart()
		return m, nil
	case "?":
		m.showHelp = true
		return m, nil
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// step advances one generation and records it.
func (m *Model) step() {
	if m.fired {
		return
	}
	m.line.Step()
	cur := m.line.Cells()

	changed := 0
	for i := range cur {
		if cur[i] != m.prev[i] {
			changed++
		}
	}
	m.spark.Push(float64(changed))
	m.prev = cur

	m.lines = append(m.lines, m.line.String())
	m.refreshHistory()
	m.fired = m.line.Fired()
}

// restart rebuilds the row at generation 0 and clears the history.
func (m *Model) restart() {
	line, err := fsquad.New(m.line.Len())
	if err != nil {
		return
	}
	m.line = line
	m.prev = line.Cells()
	m.fired = line.Fired()
	m.paused = false
	m.lines = []string{line.String()}
	m.spark.Clear()
	m.refreshHistory()
}

// layout distributes the terminal space among the fixed rows, the
// sparkline, and the scrollback viewport.
func (m *Model) layout(width, height int) {
	m.width = width
	m.height = height

	historyHeight := height - sparkHeight - 6
	if historyHeight < 3 {
		historyHeight = 3
	}
	if !m.ready {
		m.history = viewport.New(width, historyHeight)
		m.ready = true
	} else {
		m.history.Width = width
		m.history.Height = historyHeight
	}
	m.spark.Resize(width, sparkHeight)
	m.help.SetSize(width, height-1)
	m.refreshHistory()
}

func (m *Model) refreshHistory() {
	if !m.ready {
		return
	}
	m.history.SetContent(strings.Join(m.lines, "\n"))
	m.history.GotoBottom()
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Firing Squad Help"),
			m.help.View(),
		)
	}

	title := titleStyle.Render(fmt.Sprintf("Firing Squad (%d machines)", m.line.Len()))

	var status string
	switch {
	case m.fired:
		status = firedStyle.Render(fmt.Sprintf("BANG! Synchronized in %d steps. Press r to run again.", m.line.Generation()))
	case m.paused:
		status = statusStyle.Render(fmt.Sprintf("generation %d  tick %s  paused", m.line.Generation(), m.interval))
	default:
		status = statusStyle.Render(fmt.Sprintf("generation %d  tick %s  running", m.line.Generation(), m.interval))
	}

	footer := footerStyle.Render("space pause • n step • +/- speed • r restart • ? help • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		status,
		renderRow(m.line.Cells()),
		"",
		m.spark.View(),
		m.history.View(),
		footer,
	)
}

// renderRow styles the live generation: generals bold, red cells red.
func renderRow(cells []fsquad.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		switch {
		case c.Color == fsquad.Red && c.Kind == fsquad.General:
			parts[i] = redBoldStyle.Render(c.String())
		case c.Color == fsquad.Red:
			parts[i] = redStyle.Render(c.String())
		case c.Kind == fsquad.General:
			parts[i] = generalStyle.Render(c.String())
		default:
			parts[i] = c.String()
		}
	}
	return strings.Join(parts, " ")
}
