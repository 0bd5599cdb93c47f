package tui

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI interface over the given file content
func Run(fileName, content string, vimEnabled bool) {
	// Create the TUI model
	m := NewModel(fileName, content, vimEnabled)

	// Run the Bubble Tea program
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Printf("Error: %s\n", err.Error())
		os.Exit(1)
	}
}
