// Package textbuf provides the in-memory text store the editor works on.
// It implements the vim.Buffer collaborator contract: rune-offset
// addressing, line-range queries, range replacement and host-owned undo.
package textbuf

import (
	"strings"

	"vellum/internal/vim"
)

var _ vim.Buffer = (*Buffer)(nil)

type snapshot struct {
	text []rune
	loc  int
}

// Buffer is a rune-slice text store with a cursor/selection and an undo
// stack of full-content snapshots. Snapshots are cheap at note size and
// keep undo trivially correct.
type Buffer struct {
	text []rune
	loc  int
	sel  int

	undo []snapshot

	scrollTarget  int
	scrollPending bool
}

// New builds a buffer from initial content with the cursor at offset 0.
func New(content string) *Buffer {
	return &Buffer{text: []rune(content)}
}

// String returns the full buffer content.
func (b *Buffer) String() string { return string(b.text) }

// Selection returns the cursor location and selected length.
func (b *Buffer) Selection() (loc, length int) { return b.loc, b.sel }

// SetSelection moves the cursor, clamping both ends to the buffer.
func (b *Buffer) SetSelection(loc, length int) {
	if loc < 0 {
		loc = 0
	}
	if loc > len(b.text) {
		loc = len(b.text)
	}
	if length < 0 {
		length = 0
	}
	if loc+length > len(b.text) {
		length = len(b.text) - loc
	}
	b.loc, b.sel = loc, length
}

// Length returns the rune count of the buffer.
func (b *Buffer) Length() int { return len(b.text) }

// Substring returns the text covered by r, clamped to the buffer.
func (b *Buffer) Substring(r vim.Range) string {
	start, end := clampRange(r, len(b.text))
	return string(b.text[start:end])
}

// LineRange returns the span of the line containing offset, including the
// trailing newline when one exists.
func (b *Buffer) LineRange(offset int) vim.Range {
	n := len(b.text)
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	start := offset
	for start > 0 && b.text[start-1] != '\n' {
		start--
	}
	end := offset
	for end < n && b.text[end] != '\n' {
		end++
	}
	if end < n {
		end++
	}
	return vim.Range{Start: start, End: end}
}

// Replace substitutes the text covered by r with s, snapshotting the
// previous content for undo. The cursor is nudged to stay valid; callers
// that care position it explicitly afterward.
func (b *Buffer) Replace(r vim.Range, s string) {
	start, end := clampRange(r, len(b.text))
	b.pushUndo()

	repl := []rune(s)
	next := make([]rune, 0, len(b.text)-(end-start)+len(repl))
	next = append(next, b.text[:start]...)
	next = append(next, repl...)
	next = append(next, b.text[end:]...)
	b.text = next

	if b.loc > len(b.text) {
		b.loc = len(b.text)
	}
	b.sel = 0
}

// ScrollIntoView records the offset the host viewport should reveal. The
// host drains it with TakeScrollTarget after each keystroke.
func (b *Buffer) ScrollIntoView(offset int) {
	b.scrollTarget = offset
	b.scrollPending = true
}

// TakeScrollTarget returns and clears the pending scroll request.
func (b *Buffer) TakeScrollTarget() (int, bool) {
	if !b.scrollPending {
		return 0, false
	}
	b.scrollPending = false
	return b.scrollTarget, true
}

// RequestUndo reverts the most recent change, restoring both content and
// cursor.
func (b *Buffer) RequestUndo() {
	if len(b.undo) == 0 {
		return
	}
	last := b.undo[len(b.undo)-1]
	b.undo = b.undo[:len(b.undo)-1]
	b.text = last.text
	b.loc = last.loc
	b.sel = 0
}

// Insert places s at the cursor and advances past it. This is the native
// typing path used by Insert mode.
func (b *Buffer) Insert(s string) {
	loc := b.loc
	b.Replace(vim.Range{Start: loc, End: loc + b.sel}, s)
	b.loc = loc + len([]rune(s))
}

// DeleteBackward removes the rune before the cursor (backspace).
func (b *Buffer) DeleteBackward() {
	if b.loc == 0 {
		return
	}
	loc := b.loc
	b.Replace(vim.Range{Start: loc - 1, End: loc}, "")
	b.loc = loc - 1
}

// Lines splits the content for rendering. A trailing newline yields a
// final empty line so the cursor can sit below the last row.
func (b *Buffer) Lines() []string {
	return strings.Split(string(b.text), "\n")
}

// LineCount returns the number of display lines.
func (b *Buffer) LineCount() int {
	return strings.Count(string(b.text), "\n") + 1
}

func (b *Buffer) pushUndo() {
	snap := snapshot{text: make([]rune, len(b.text)), loc: b.loc}
	copy(snap.text, b.text)
	b.undo = append(b.undo, snap)
	// Bound memory on long sessions.
	if len(b.undo) > 1000 {
		b.undo = b.undo[len(b.undo)-1000:]
	}
}

func clampRange(r vim.Range, n int) (int, int) {
	start, end := r.Start, r.End
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start > n {
		start = n
	}
	if end < start {
		end = start
	}
	return start, end
}
