package vim

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"vellum/internal/logger"
)

// Config carries the host-provided knobs for one engine instance. The
// Enabled flag mirrors the host's per-document modal-editing setting;
// when false every keystroke is reported unconsumed so the host's native
// input path applies.
type Config struct {
	Enabled bool
	// OnQuit is invoked for ZZ (save=true) and ZQ (save=false). Nil is
	// fine; the commands then do nothing.
	OnQuit func(save bool)
}

type searchState struct {
	pattern string
	forward bool
}

type findState struct {
	char rune
	kind MotionKind
	set  bool
}

// Engine is one modal editing session attached to a single buffer. It is
// not safe for concurrent use; the host delivers one keystroke at a time.
type Engine struct {
	buf Buffer
	cfg Config

	sessionID string

	mode         Mode
	cmdBuf       []rune
	count        int
	visualAnchor int
	visualCursor int
	cmdline      []rune

	registers   *registerStore
	marks       map[rune]int
	lastSearch  searchState
	lastFind    findState
	lastCommand *Command

	status string
}

// New attaches an engine to a buffer. One engine per document view; no
// state is shared across documents.
func New(buf Buffer, cfg Config) *Engine {
	id, err := uuid.NewV7()
	sessionID := id.String()
	if err != nil {
		sessionID = fmt.Sprintf("session-%d", time.Now().UnixNano())
	}
	logger.Debug("vim engine attached, session=%s enabled=%v", sessionID, cfg.Enabled)
	return &Engine{
		buf:       buf,
		cfg:       cfg,
		sessionID: sessionID,
		mode:      ModeNormal,
		registers: newRegisterStore(),
		marks:     make(map[rune]int),
	}
}

// Mode returns the active editing mode.
func (e *Engine) Mode() Mode { return e.mode }

// Enabled reports whether modal editing is switched on.
func (e *Engine) Enabled() bool { return e.cfg.Enabled }

// SetEnabled flips modal editing. Disabling mid-session drops back to a
// clean Normal state so re-enabling starts fresh.
func (e *Engine) SetEnabled(on bool) {
	e.cfg.Enabled = on
	if !on {
		e.setMode(ModeNormal)
	}
}

// Pending returns the keystrokes typed so far toward an incomplete
// command, count included, for status display.
func (e *Engine) Pending() string {
	var b strings.Builder
	if e.count > 0 {
		b.WriteString(strconv.Itoa(e.count))
	}
	b.WriteString(string(e.cmdBuf))
	return b.String()
}

// CommandLine returns the in-progress command-line or search input,
// prefix included, or the empty string outside CommandLine mode.
func (e *Engine) CommandLine() string { return string(e.cmdline) }

// StatusMessage returns the transient message from the last keystroke.
func (e *Engine) StatusMessage() string { return e.status }

// Register returns the contents of a named register ('"', '0', '1').
func (e *Engine) Register(name rune) string { return e.registers.get(name) }

// Position derives (line, column) from the current offset, both
// zero-based.
func (e *Engine) Position() (line, col int) {
	loc, _ := e.buf.Selection()
	text := e.text()
	for i := 0; i < loc && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}

// HandleKey processes one keystroke and reports whether the engine
// consumed it. Unconsumed keys fall through to the host's native input
// handling.
func (e *Engine) HandleKey(k Key) bool {
	if !e.cfg.Enabled {
		return false
	}
	e.status = ""
	switch e.mode {
	case ModeInsert:
		return e.handleInsertKey(k)
	case ModeCommandLine:
		return e.handleCommandLineKey(k)
	case ModeReplace:
		return e.handleReplaceKey(k)
	case ModeVisual, ModeVisualLine:
		return e.handleVisualKey(k)
	default:
		return e.handleNormalKey(k)
	}
}

func (e *Engine) handleNormalKey(k Key) bool {
	if k.isEscape() {
		e.setMode(ModeNormal)
		return true
	}
	if !k.IsRune() {
		return false
	}
	r := k.Rune
	if len(e.cmdBuf) == 0 && r >= '0' && r <= '9' && (r != '0' || e.count > 0) {
		e.accumulateCount(r)
		return true
	}
	e.cmdBuf = append(e.cmdBuf, r)
	cmd, st := parseCommand(e.cmdBuf)
	switch st {
	case ParsePending:
		return true
	case ParseInvalid:
		logger.Debug("invalid command buffer %q, session=%s", string(e.cmdBuf), e.sessionID)
		e.cmdBuf = nil
		e.count = 0
		return false
	}
	count, hadCount := e.takeCount()
	e.cmdBuf = nil
	return e.execute(cmd, count, hadCount)
}

func (e *Engine) handleInsertKey(k Key) bool {
	if k.isEscape() {
		loc, _ := e.buf.Selection()
		e.setMode(ModeNormal)
		if loc > 0 {
			e.buf.SetSelection(loc-1, 0)
		}
		return true
	}
	return false
}

func (e *Engine) handleReplaceKey(k Key) bool {
	if k.isEscape() {
		e.setMode(ModeNormal)
		return true
	}
	if !k.IsRune() {
		return false
	}
	loc, _ := e.buf.Selection()
	if loc < e.buf.Length() {
		e.buf.Replace(Range{Start: loc, End: loc + 1}, string(k.Rune))
		e.buf.SetSelection(loc+1, 0)
	}
	e.setMode(ModeNormal)
	return true
}

func (e *Engine) handleCommandLineKey(k Key) bool {
	switch {
	case k.isEscape():
		e.cmdline = nil
		e.setMode(ModeNormal)
		return true
	case k.Name == "enter":
		line := e.cmdline
		e.cmdline = nil
		e.setMode(ModeNormal)
		e.dispatchCommandLine(line)
		return true
	case k.Name == "backspace":
		if len(e.cmdline) <= 1 {
			e.cmdline = nil
			e.setMode(ModeNormal)
		} else {
			e.cmdline = e.cmdline[:len(e.cmdline)-1]
		}
		return true
	case k.Name == "space":
		e.cmdline = append(e.cmdline, ' ')
		return true
	case k.IsRune():
		e.cmdline = append(e.cmdline, k.Rune)
		return true
	}
	return false
}

func (e *Engine) handleVisualKey(k Key) bool {
	if k.isEscape() {
		cur := e.visualCursor
		e.setMode(ModeNormal)
		e.buf.SetSelection(cur, 0)
		return true
	}
	if !k.IsRune() {
		return false
	}
	r := k.Rune
	if len(e.cmdBuf) == 0 {
		if r >= '0' && r <= '9' && (r != '0' || e.count > 0) {
			e.accumulateCount(r)
			return true
		}
		switch r {
		case 'v':
			if e.mode == ModeVisual {
				cur := e.visualCursor
				e.setMode(ModeNormal)
				e.buf.SetSelection(cur, 0)
			} else {
				e.mode = ModeVisual
				e.applyVisualSelection()
			}
			return true
		case 'V':
			if e.mode == ModeVisualLine {
				cur := e.visualCursor
				e.setMode(ModeNormal)
				e.buf.SetSelection(cur, 0)
			} else {
				e.mode = ModeVisualLine
				e.applyVisualSelection()
			}
			return true
		case 'd', 'x':
			e.visualOperate(OpDelete)
			return true
		case 'y':
			e.visualOperate(OpYank)
			return true
		case 'c':
			e.visualOperate(OpChange)
			return true
		}
	}
	e.cmdBuf = append(e.cmdBuf, r)
	m, st := parseMotionKeys(e.cmdBuf, true)
	switch st {
	case ParsePending:
		return true
	case ParseInvalid:
		e.cmdBuf = nil
		e.count = 0
		return false
	}
	count, hadCount := e.takeCount()
	e.cmdBuf = nil
	return e.extendVisual(m, count, hadCount)
}

// setMode performs the bookkeeping every transition shares: the pending
// command buffer and count always clear, and landing in Normal also
// drops the visual anchor.
func (e *Engine) setMode(m Mode) {
	e.cmdBuf = nil
	e.count = 0
	e.mode = m
	if m == ModeNormal {
		e.visualAnchor = 0
		e.visualCursor = 0
	}
}

func (e *Engine) accumulateCount(digit rune) {
	// Cap instead of overflowing; no sane command needs more.
	if e.count < 1_000_000 {
		e.count = e.count*10 + int(digit-'0')
	}
}

// takeCount returns the pending count (default 1) and whether one was
// explicitly typed, resetting it either way.
func (e *Engine) takeCount() (int, bool) {
	had := e.count > 0
	n := e.count
	if n == 0 {
		n = 1
	}
	e.count = 0
	return n, had
}

// text snapshots the buffer as runes for motion resolution.
func (e *Engine) text() []rune {
	return []rune(e.buf.Substring(Range{Start: 0, End: e.buf.Length()}))
}

func (e *Engine) setStatus(format string, args ...any) {
	e.status = fmt.Sprintf(format, args...)
}

// dispatchCommandLine handles a completed command-line entry: a minimal
// ex handler for ':' (bare integer means goto-line) and literal search
// for '/' and '?'.
func (e *Engine) dispatchCommandLine(line []rune) {
	if len(line) == 0 {
		return
	}
	prefix, rest := line[0], strings.TrimSpace(string(line[1:]))
	switch prefix {
	case ':':
		if rest == "" {
			return
		}
		if n, err := strconv.Atoi(rest); err == nil && n > 0 {
			e.gotoLine(n - 1)
			return
		}
		e.setStatus("not an editor command: %s", rest)
	case '/', '?':
		forward := prefix == '/'
		if rest == "" {
			if e.lastSearch.pattern == "" {
				e.setStatus("no previous search")
				return
			}
			rest = e.lastSearch.pattern
		}
		e.lastSearch = searchState{pattern: rest, forward: forward}
		e.runSearch(true, 1)
	}
}

// runSearch moves to the next match of lastSearch. sameDirection false
// flips the stored direction (the N motion).
func (e *Engine) runSearch(sameDirection bool, count int) bool {
	if e.lastSearch.pattern == "" {
		e.setStatus("no previous search")
		return false
	}
	forward := e.lastSearch.forward
	if !sameDirection {
		forward = !forward
	}
	text := e.text()
	pattern := []rune(e.lastSearch.pattern)
	loc, _ := e.buf.Selection()
	for i := 0; i < count; i++ {
		next, ok := searchText(text, pattern, loc, forward)
		if !ok {
			e.setStatus("pattern not found: %s", e.lastSearch.pattern)
			return false
		}
		loc = next
	}
	e.buf.SetSelection(loc, 0)
	e.buf.ScrollIntoView(loc)
	return true
}

// gotoLine moves to the first non-blank column of a zero-based line,
// clamped to the last line.
func (e *Engine) gotoLine(n int) {
	text := e.text()
	starts := lineStarts(text)
	if n < 0 {
		n = 0
	}
	if n >= len(starts) {
		n = len(starts) - 1
	}
	off := firstNonBlank(text, starts[n])
	e.buf.SetSelection(off, 0)
	e.buf.ScrollIntoView(off)
}
