package components

import (
	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"
)

// Sparkline charts recent per-generation activity as a little bar
// strip. It wraps the ntcharts sparkline with the styling used across
// the animation.
type Sparkline struct {
	model sparkline.Model
}

// NewSparkline creates a sparkline of the given size that scales to
// its largest value.
func NewSparkline(width, height int) *Sparkline {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	return &Sparkline{
		model: sparkline.New(width, height, sparkline.WithStyle(style)),
	}
}

// Push adds one data point.
func (s *Sparkline) Push(value float64) {
	s.model.Push(value)
}

// Clear resets the data.
func (s *Sparkline) Clear() {
	s.model.Clear()
}

// Resize changes the chart dimensions.
func (s *Sparkline) Resize(width, height int) {
	s.model.Resize(width, height)
}

// View renders the chart.
func (s *Sparkline) View() string {
	s.model.DrawColumnsOnly()
	return s.model.View()
}
