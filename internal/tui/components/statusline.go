package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StatuslineMessageType represents the type of statusline message
type StatuslineMessageType int

const (
	StatuslineInfo StatuslineMessageType = iota
	StatuslineWarning
	StatuslineError
)

// StatuslineMessage represents a transient message shown in the statusline
type StatuslineMessage struct {
	Type     StatuslineMessageType
	Text     string
	Duration time.Duration
	ShowTime time.Time
}

// StatuslineComponent handles the rendering of the bottom status bar:
// mode indicator on the left, transient message or pending keystrokes in
// the middle, file name and cursor position on the right.
type StatuslineComponent struct {
	message *StatuslineMessage
	width   int
}

// NewStatuslineComponent creates a new statusline component
func NewStatuslineComponent(width int) *StatuslineComponent {
	return &StatuslineComponent{
		width: width,
	}
}

// SetMessage sets the current message to display
func (s *StatuslineComponent) SetMessage(msg *StatuslineMessage) {
	s.message = msg
}

// ClearMessage clears the current message
func (s *StatuslineComponent) ClearMessage() {
	s.message = nil
}

// Message returns the current message text, styled by severity, or the
// empty string when none is active.
func (s *StatuslineComponent) Message() string {
	if s.message == nil {
		return ""
	}
	var fg lipgloss.Color
	switch s.message.Type {
	case StatuslineWarning:
		fg = lipgloss.Color("226") // Yellow
	case StatuslineError:
		fg = lipgloss.Color("196") // Red
	default:
		fg = lipgloss.Color("252") // Light gray for info
	}
	return lipgloss.NewStyle().Foreground(fg).Render(s.message.Text)
}

// HasExpired checks if the current message has expired
func (s *StatuslineComponent) HasExpired() bool {
	if s.message == nil || s.message.Duration == 0 {
		return false
	}
	return time.Since(s.message.ShowTime) > s.message.Duration
}

// RenderBar joins the pre-rendered segments into one full-width bar. The
// gap is the padding, in cells, between the middle and right segments.
func (s *StatuslineComponent) RenderBar(mode, middle string, gap int, right string) string {
	barStyle := lipgloss.NewStyle().Background(lipgloss.Color("0"))
	rightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")).
		Background(lipgloss.Color("0"))

	var b strings.Builder
	b.WriteString(mode)
	b.WriteString(barStyle.Render(middle))
	b.WriteString(barStyle.Render(strings.Repeat(" ", gap)))
	b.WriteString(rightStyle.Render(right))
	return b.String()
}

// Width returns the width of the statusline
func (s *StatuslineComponent) Width() int {
	return s.width
}

// SetWidth updates the width of the statusline
func (s *StatuslineComponent) SetWidth(width int) {
	s.width = width
}
