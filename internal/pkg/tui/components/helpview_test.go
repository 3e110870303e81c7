package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNewHelpView(t *testing.T) {
	h := NewHelpView()

	// Nothing to show before the first SetSize.
	assert.Empty(t, h.View())
}

func TestHelpView_SetSizeRendersContent(t *testing.T) {
	h := NewHelpView()
	h.SetSize(80, 24)

	view := h.View()
	assert.NotEmpty(t, strings.TrimSpace(view))
	assert.Contains(t, view, "esc close")
}

func TestHelpView_UpdateScrolls(t *testing.T) {
	h := NewHelpView()
	h.SetSize(80, 24)

	h, _ = h.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Contains(t, h.View(), "esc close")
}
