package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"vellum/internal/tui/components"
	"vellum/internal/vim"
)

var (
	cursorStyle    = lipgloss.NewStyle().Reverse(true)
	selectionStyle = lipgloss.NewStyle().Background(lipgloss.Color("60")).Foreground(lipgloss.Color("255"))
)

// View renders the editor area with the statusline pinned to the bottom
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	visible := m.viewport.height - 1
	if visible < 1 {
		visible = 1
	}

	var body string
	if m.helpModal.IsVisible() {
		body = lipgloss.Place(m.viewport.width, visible,
			lipgloss.Center, lipgloss.Center, m.helpModal.View())
	} else {
		window := m.window
		window.SetContent(m.renderEditor())
		window.SetYOffset(m.yoffset)
		body = window.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

// renderEditor draws every buffer line with the cursor and any active
// selection highlighted; the viewport windows it to the visible rows.
func (m Model) renderEditor() string {
	lines := m.buffer.Lines()
	loc, sel := m.buffer.Selection()
	selStart, selEnd := loc, loc+sel

	out := make([]string, 0, len(lines))
	off := 0
	for _, line := range lines {
		lineLen := len([]rune(line))
		out = append(out, m.renderLine(line, off, lineLen, loc, selStart, selEnd))
		off += lineLen + 1 // the newline
	}
	return strings.Join(out, "\n")
}

// renderLine highlights the selection span overlapping this line and, for
// a zero-length selection, draws a block cursor. A cursor sitting on the
// line's newline (empty line, or end of line while inserting) renders as
// a block in the trailing column.
func (m Model) renderLine(line string, lineOff, lineLen, cursor, selStart, selEnd int) string {
	runes := []rune(line)
	hasSelection := selEnd > selStart

	var b strings.Builder
	for i, r := range runes {
		pos := lineOff + i
		s := string(r)
		switch {
		case !hasSelection && pos == cursor:
			b.WriteString(cursorStyle.Render(s))
		case hasSelection && pos >= selStart && pos < selEnd:
			b.WriteString(selectionStyle.Render(s))
		default:
			b.WriteString(s)
		}
	}
	if !hasSelection && m.cursorOnLineEnd(lineOff, lineLen, cursor) {
		b.WriteString(cursorStyle.Render(" "))
	}
	return b.String()
}

// cursorOnLineEnd reports whether an offset equal to this line's end
// actually belongs to this line rather than to the start of the next.
func (m Model) cursorOnLineEnd(lineOff, lineLen, cursor int) bool {
	if cursor != lineOff+lineLen {
		return false
	}
	if cursor >= m.buffer.Length() {
		return true
	}
	return m.buffer.Substring(vim.Range{Start: cursor, End: cursor + 1}) == "\n"
}

// renderStatusBar assembles the mode indicator, the transient message or
// pending keystrokes, and the file/position ruler.
func (m Model) renderStatusBar() string {
	modeSeg := components.NewModeIndicatorComponent(m.engine.Mode(), m.engine.Enabled())
	middle := m.statusline.Message()
	if middle == "" {
		if cl := m.engine.CommandLine(); cl != "" {
			middle = cl
		} else if p := m.engine.Pending(); p != "" {
			middle = p
		}
	}

	line, col := m.engine.Position()
	name := m.fileName
	if name == "" {
		name = "[No Name]"
	}
	if m.modified {
		name += " [+]"
	}
	right := fmt.Sprintf(" %s  %d:%d ", name, line+1, col+1)

	gap := m.viewport.width - modeSeg.Width() - uniseg.StringWidth(middle) - uniseg.StringWidth(right) - 1
	if gap < 0 {
		gap = 0
	}
	return m.statusline.RenderBar(modeSeg.Render(), " "+middle, gap, right)
}
