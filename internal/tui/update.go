package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"vellum/internal/logger"
	"vellum/internal/tui/components"
	"vellum/internal/vim"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.width = msg.Width
		m.viewport.height = msg.Height
		m.window.Width = msg.Width
		m.window.Height = msg.Height - 1 // one row reserved for the statusline
		m.statusline.SetWidth(msg.Width)
		m.ready = true
		m.adjustScroll()
		return m, nil

	case StatusTickMsg:
		if m.statusline.HasExpired() {
			m.statusline.ClearMessage()
		}
		return m, statusTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global chrome bindings run before the engine sees anything.
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "f1":
		if m.helpModal.IsVisible() {
			m.helpModal.Hide()
		} else {
			m.helpModal.Show()
		}
		return m, nil
	case "ctrl+s":
		if err := m.save(); err != nil {
			m.flashStatus(components.StatuslineError, err.Error())
		} else {
			m.flashStatus(components.StatuslineInfo, fmt.Sprintf("%q written", m.fileName))
		}
		return m, statusTick()
	case "esc":
		if m.helpModal.IsVisible() {
			m.helpModal.Hide()
			return m, nil
		}
	}
	if m.helpModal.IsVisible() {
		// Modal swallows everything else while open.
		return m, nil
	}

	consumed := m.engine.HandleKey(translateKey(msg))
	if !consumed {
		m.nativeInput(msg)
	}
	if m.quit.requested {
		return m.finishQuit()
	}
	if s := m.engine.StatusMessage(); s != "" {
		m.flashStatus(components.StatuslineInfo, s)
	}
	m.adjustScroll()
	return m, statusTick()
}

// nativeInput is the fallback text-entry path for keys the engine does
// not consume: plain typing in Insert mode, and everything when modal
// editing is disabled.
func (m *Model) nativeInput(msg tea.KeyMsg) {
	if m.engine.Enabled() && m.engine.Mode() != vim.ModeInsert {
		return
	}
	switch msg.Type {
	case tea.KeyRunes:
		m.buffer.Insert(string(msg.Runes))
		m.modified = true
	case tea.KeySpace:
		m.buffer.Insert(" ")
		m.modified = true
	case tea.KeyEnter:
		m.buffer.Insert("\n")
		m.modified = true
	case tea.KeyTab:
		m.buffer.Insert("\t")
		m.modified = true
	case tea.KeyBackspace:
		m.buffer.DeleteBackward()
		m.modified = true
	}
}

// translateKey maps a Bubble Tea key event onto the engine's Key type.
func translateKey(msg tea.KeyMsg) vim.Key {
	switch msg.Type {
	case tea.KeyRunes:
		var mods vim.Modifiers
		if msg.Alt {
			mods |= vim.ModAlt
		}
		return vim.Key{Rune: msg.Runes[0], Mods: mods}
	case tea.KeySpace:
		return vim.Key{Rune: ' '}
	}
	name := msg.String()
	if strings.HasPrefix(name, "ctrl+") && len(name) == len("ctrl+")+1 {
		return vim.Key{Rune: rune(name[len(name)-1]), Mods: vim.ModCtrl}
	}
	return vim.Key{Name: name}
}

func (m Model) finishQuit() (tea.Model, tea.Cmd) {
	if m.quit.save {
		if err := m.save(); err != nil {
			m.quit.requested = false
			m.flashStatus(components.StatuslineError, err.Error())
			return m, statusTick()
		}
	}
	return m, tea.Quit
}

func (m *Model) save() error {
	if m.fileName == "" {
		return fmt.Errorf("no file name")
	}
	if err := os.WriteFile(m.fileName, []byte(m.buffer.String()), 0644); err != nil {
		logger.Error("write %s: %v", m.fileName, err)
		return fmt.Errorf("failed to write %s: %w", m.fileName, err)
	}
	m.modified = false
	logger.Info("wrote %s (%d runes)", m.fileName, m.buffer.Length())
	return nil
}

func (m *Model) flashStatus(kind components.StatuslineMessageType, text string) {
	m.statusline.SetMessage(&components.StatuslineMessage{
		Type:     kind,
		Text:     text,
		Duration: 4 * time.Second,
		ShowTime: time.Now(),
	})
}

// adjustScroll keeps the cursor line inside the visible window, honoring
// any explicit scroll request the engine issued.
func (m *Model) adjustScroll() {
	target, ok := m.buffer.TakeScrollTarget()
	if !ok {
		target, _ = m.buffer.Selection()
	}
	line := lineOfOffset(m.buffer.String(), target)
	visible := m.window.Height
	if visible < 1 {
		visible = 1
	}
	if line < m.yoffset {
		m.yoffset = line
	}
	if line >= m.yoffset+visible {
		m.yoffset = line - visible + 1
	}
	if m.yoffset < 0 {
		m.yoffset = 0
	}
}

func lineOfOffset(content string, offset int) int {
	line := 0
	for i, r := range []rune(content) {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
		}
	}
	return line
}
