package components

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/quarrylane/pastime/internal/pkg/tui/help"
)

// HelpView displays the embedded markdown help page in a scrollable
// viewport, rendered with glamour.
type HelpView struct {
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewHelpView creates an empty help view. Content is rendered on the
// first SetSize, when the word wrap width is known.
func NewHelpView() HelpView {
	return HelpView{width: 80, height: 20}
}

// SetSize sets the display size and re-renders the page to fit.
func (h *HelpView) SetSize(width, height int) {
	h.width = width
	h.height = height
	if !h.ready {
		h.viewport = viewport.New(width, height-1)
		h.ready = true
	} else {
		h.viewport.Width = width
		h.viewport.Height = height - 1
	}
	h.viewport.SetContent(h.render())
}

// render turns the embedded markdown into styled terminal text. On any
// rendering trouble the raw markdown is shown instead.
func (h *HelpView) render() string {
	raw, err := help.Files.ReadFile("help.md")
	if err != nil {
		return "Error loading help: " + err.Error()
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(h.width-4),
	)
	if err != nil {
		return string(raw)
	}
	rendered, err := renderer.Render(string(raw))
	if err != nil {
		return string(raw)
	}
	return rendered
}

// Update feeds scroll keys to the viewport.
func (h HelpView) Update(msg tea.Msg) (HelpView, tea.Cmd) {
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View renders the page with a dismiss hint on the last line.
func (h *HelpView) View() string {
	if !h.ready {
		return ""
	}
	hint := lipgloss.NewStyle().Faint(true).Render("esc close • arrows scroll")
	return h.viewport.View() + "\n" + hint
}
