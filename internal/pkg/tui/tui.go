// Package tui animates the firing squad simulation in the terminal.
//
// The row of machines advances one generation per tick. The run can be
// paused and single-stepped, the tick interval changed while it runs,
// and past generations scrolled back through. A sparkline tracks how
// many machines changed state in each generation, which makes the
// signal waves bouncing along the row visible at a glance.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quarrylane/pastime/internal/pkg/logger"
)

// Run animates a row of n machines, advancing one generation every
// interval. It blocks until the user quits.
func Run(n int, interval time.Duration) error {
	// Disable logging to prevent corrupting the display
	logger.Disable()
	defer logger.Enable()

	model, err := NewModel(n, interval)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running animation: %w", err)
	}
	return nil
}
