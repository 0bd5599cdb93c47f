package components

import (
	"github.com/charmbracelet/lipgloss"

	"vellum/internal/vim"
)

// ModeIndicatorComponent handles the rendering of the vim mode indicator
type ModeIndicatorComponent struct {
	mode    vim.Mode
	enabled bool
}

// NewModeIndicatorComponent creates a new mode indicator component
func NewModeIndicatorComponent(mode vim.Mode, enabled bool) *ModeIndicatorComponent {
	return &ModeIndicatorComponent{
		mode:    mode,
		enabled: enabled,
	}
}

// label returns the padded indicator text
func (m *ModeIndicatorComponent) label() string {
	if !m.enabled {
		return " EDIT "
	}
	return " " + m.mode.String() + " "
}

// Render renders the vim mode indicator with colored background
func (m *ModeIndicatorComponent) Render() string {
	var modeColor string
	switch {
	case !m.enabled:
		modeColor = "8" // Gray when modal editing is off
	case m.mode == vim.ModeNormal:
		modeColor = "4" // Blue background for normal mode
	case m.mode == vim.ModeInsert:
		modeColor = "2" // Green background for insert mode
	case m.mode == vim.ModeVisual, m.mode == vim.ModeVisualLine:
		modeColor = "5" // Magenta background for visual modes
	case m.mode == vim.ModeCommandLine:
		modeColor = "3" // Yellow background for command-line mode
	case m.mode == vim.ModeReplace:
		modeColor = "1" // Red background for replace mode
	default:
		modeColor = "4"
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")). // Black text
		Background(lipgloss.Color(modeColor)).
		Render(m.label())
}

// Width returns the width of the mode indicator
func (m *ModeIndicatorComponent) Width() int {
	return len(m.label())
}
