package vim

// Range is a half-open span of rune offsets [Start, End) into the buffer.
type Range struct {
	Start int
	End   int
}

// Len returns the number of runes covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// Buffer is the text store the engine edits. All offsets and lengths are
// rune counts, never bytes. Implementations own the undo history; the
// engine only requests reversals via RequestUndo.
type Buffer interface {
	// Selection returns the cursor location and the number of selected
	// runes. A caret with no selection has length zero.
	Selection() (loc, length int)

	// SetSelection moves the cursor, clamping to valid offsets.
	SetSelection(loc, length int)

	// Length returns the total rune count of the buffer.
	Length() int

	// Substring returns the text covered by r.
	Substring(r Range) string

	// LineRange returns the span of the line containing offset,
	// including the trailing newline when one exists.
	LineRange(offset int) Range

	// Replace substitutes the text covered by r with s. Deletion passes
	// an empty string, insertion an empty range.
	Replace(r Range, s string)

	// ScrollIntoView asks the host to make the offset visible.
	ScrollIntoView(offset int)

	// RequestUndo asks the host to revert the most recent change.
	RequestUndo()
}
