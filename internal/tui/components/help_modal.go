package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpModal represents a help modal showing key bindings
type HelpModal struct {
	visible bool
}

// NewHelpModal creates a new help modal
func NewHelpModal() *HelpModal {
	return &HelpModal{
		visible: false,
	}
}

// Show makes the help modal visible
func (h *HelpModal) Show() {
	h.visible = true
}

// Hide makes the help modal invisible
func (h *HelpModal) Hide() {
	h.visible = false
}

// IsVisible returns whether the modal is visible
func (h *HelpModal) IsVisible() bool {
	return h.visible
}

// View renders the help modal
func (h *HelpModal) View() string {
	if !h.visible {
		return ""
	}

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Background(lipgloss.Color("235"))

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214")).
		MarginBottom(1)

	commandStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("86"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("246"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)

	row := func(cmd, desc string) string {
		return commandStyle.Render(cmd) + " - " + descStyle.Render(desc) + "\n"
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("Vellum Help"))
	content.WriteString("\n\n")

	content.WriteString(keyStyle.Render("Modes:"))
	content.WriteString("\n")
	content.WriteString(row("Normal", "Navigate and enter commands"))
	content.WriteString(row("Insert (i a o O I A)", "Type text"))
	content.WriteString(row("Visual (v) / Visual Line (V)", "Select text"))
	content.WriteString(row("Replace (R)", "Overwrite one character"))
	content.WriteString("\n")

	content.WriteString(keyStyle.Render("Motions:"))
	content.WriteString("\n")
	content.WriteString(row("h j k l", "Left, down, up, right"))
	content.WriteString(row("w b e / W B E", "Word and WORD motions"))
	content.WriteString(row("0 ^ $", "Line start, first non-blank, line end"))
	content.WriteString(row("{ } ( )", "Paragraph and sentence motions"))
	content.WriteString(row("f F t T ; ,", "Find character on the line"))
	content.WriteString(row("gg G :{n}", "Go to first, last, or given line"))
	content.WriteString("\n")

	content.WriteString(keyStyle.Render("Editing:"))
	content.WriteString("\n")
	content.WriteString(row("d c y + motion", "Delete, change, yank"))
	content.WriteString(row("dd yy cc", "Whole-line shortcuts"))
	content.WriteString(row("diw ci\" da(", "Text objects"))
	content.WriteString(row("p P x J ~ u .", "Paste, delete, join, case, undo, repeat"))
	content.WriteString(row("/{text} ?{text} n N", "Search forward and backward"))
	content.WriteString("\n")

	content.WriteString(keyStyle.Render("Application:"))
	content.WriteString("\n")
	content.WriteString(row("ZZ", "Save and quit"))
	content.WriteString(row("ZQ", "Quit without saving"))
	content.WriteString(row("Ctrl+S", "Save"))
	content.WriteString(row("Ctrl+C", "Exit application"))
	content.WriteString(row("F1", "Toggle this help"))
	content.WriteString("\n")

	content.WriteString(descStyle.Render("Press Esc to close this help"))

	return modalStyle.Render(content.String())
}
