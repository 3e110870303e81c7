package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSparkline(t *testing.T) {
	sl := NewSparkline(20, 3)
	require.NotNil(t, sl)
}

func TestSparkline_Push(t *testing.T) {
	sl := NewSparkline(20, 3)

	sl.Push(1.0)
	sl.Push(2.0)
	sl.Push(3.0)

	view := sl.View()
	assert.NotEmpty(t, view)
}

func TestSparkline_Clear(t *testing.T) {
	sl := NewSparkline(20, 3)

	sl.Push(1.0)
	sl.Clear()

	// Pushing after a clear starts a fresh series.
	sl.Push(5.0)
	view := sl.View()
	assert.NotEmpty(t, view)
}

func TestSparkline_Resize(t *testing.T) {
	sl := NewSparkline(20, 3)

	sl.Push(1.0)
	sl.Resize(40, 5)

	view := sl.View()
	assert.NotEmpty(t, view)
}
