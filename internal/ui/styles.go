package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/skiffhq/skiff/internal/engine"
)

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorDim    = lipgloss.Color("#6b7280")
)

var (
	greenStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	redStyle    = lipgloss.NewStyle().Foreground(colorRed)
	yellowStyle = lipgloss.NewStyle().Foreground(colorYellow)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// stateStyles maps each lifecycle state to its display color.
var stateStyles = map[engine.State]lipgloss.Style{
	engine.StatePending:      dimStyle,
	engine.StateProvisioning: yellowStyle,
	engine.StateDeployed:     greenStyle,
	engine.StateDestroying:   yellowStyle,
	engine.StateDestroyed:    dimStyle,
	engine.StateFailed:       redStyle,
}
