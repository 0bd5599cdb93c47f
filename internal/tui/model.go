package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"vellum/internal/textbuf"
	"vellum/internal/tui/components"
	"vellum/internal/vim"
)

// Model represents the Bubble Tea model for the editor TUI
type Model struct {
	buffer *textbuf.Buffer
	engine *vim.Engine

	viewport struct {
		width  int
		height int
	}
	window  viewport.Model
	yoffset int

	fileName string
	modified bool
	ready    bool

	statusline *components.StatuslineComponent
	helpModal  *components.HelpModal

	quit *quitRequest
}

// quitRequest carries the engine's ZZ/ZQ callback result out to Update.
// It lives behind a pointer because Bubble Tea copies the model by value.
type quitRequest struct {
	requested bool
	save      bool
}

// StatusTickMsg drives expiry of transient statusline messages
type StatusTickMsg struct{}

// NewModel creates a new editor model over the given content
func NewModel(fileName, content string, vimEnabled bool) Model {
	buf := textbuf.New(content)
	quit := &quitRequest{}
	engine := vim.New(buf, vim.Config{
		Enabled: vimEnabled,
		OnQuit: func(save bool) {
			quit.requested = true
			quit.save = save
		},
	})

	return Model{
		buffer:     buf,
		engine:     engine,
		fileName:   fileName,
		window:     viewport.New(0, 0),
		statusline: components.NewStatuslineComponent(0),
		helpModal:  components.NewHelpModal(),
		quit:       quit,
	}
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return nil
}

// statusTick schedules the next statusline expiry check
func statusTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return StatusTickMsg{}
	})
}
