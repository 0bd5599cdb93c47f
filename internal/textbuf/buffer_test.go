package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vellum/internal/vim"
)

func TestReplaceAndUndo(t *testing.T) {
	b := New("hello world")
	b.SetSelection(6, 0)

	b.Replace(vim.Range{Start: 6, End: 11}, "there")
	assert.Equal(t, "hello there", b.String())

	b.RequestUndo()
	assert.Equal(t, "hello world", b.String())
	loc, _ := b.Selection()
	assert.Equal(t, 6, loc)
}

func TestUndoOnEmptyStackIsNoop(t *testing.T) {
	b := New("abc")
	b.RequestUndo()
	assert.Equal(t, "abc", b.String())
}

func TestReplaceClampsCursor(t *testing.T) {
	b := New("abcdef")
	b.SetSelection(6, 0)

	b.Replace(vim.Range{Start: 3, End: 6}, "")
	loc, _ := b.Selection()
	assert.Equal(t, 3, loc)
}

func TestSetSelectionClamps(t *testing.T) {
	b := New("abc")

	b.SetSelection(-2, 0)
	loc, length := b.Selection()
	assert.Equal(t, 0, loc)
	assert.Equal(t, 0, length)

	b.SetSelection(1, 99)
	loc, length = b.Selection()
	assert.Equal(t, 1, loc)
	assert.Equal(t, 2, length)

	b.SetSelection(99, 0)
	loc, _ = b.Selection()
	assert.Equal(t, 3, loc)
}

func TestLineRangeIncludesNewline(t *testing.T) {
	b := New("one\ntwo\nthree")

	assert.Equal(t, vim.Range{Start: 0, End: 4}, b.LineRange(1))
	assert.Equal(t, vim.Range{Start: 4, End: 8}, b.LineRange(5))
	// The final line has no terminator.
	assert.Equal(t, vim.Range{Start: 8, End: 13}, b.LineRange(10))
}

func TestSubstringClampsRange(t *testing.T) {
	b := New("abc")

	assert.Equal(t, "bc", b.Substring(vim.Range{Start: 1, End: 99}))
	assert.Equal(t, "", b.Substring(vim.Range{Start: 5, End: 2}))
}

func TestInsertAdvancesCursor(t *testing.T) {
	b := New("ad")
	b.SetSelection(1, 0)

	b.Insert("bc")
	assert.Equal(t, "abcd", b.String())
	loc, _ := b.Selection()
	assert.Equal(t, 3, loc)
}

func TestInsertReplacesSelection(t *testing.T) {
	b := New("axxd")
	b.SetSelection(1, 2)

	b.Insert("bc")
	assert.Equal(t, "abcd", b.String())
}

func TestDeleteBackward(t *testing.T) {
	b := New("abc")
	b.SetSelection(2, 0)

	b.DeleteBackward()
	assert.Equal(t, "ac", b.String())
	loc, _ := b.Selection()
	assert.Equal(t, 1, loc)

	// At offset zero backspace does nothing.
	b.SetSelection(0, 0)
	b.DeleteBackward()
	assert.Equal(t, "ac", b.String())
}

func TestScrollTargetDrains(t *testing.T) {
	b := New("abc")

	_, ok := b.TakeScrollTarget()
	require.False(t, ok)

	b.ScrollIntoView(2)
	got, ok := b.TakeScrollTarget()
	require.True(t, ok)
	assert.Equal(t, 2, got)

	_, ok = b.TakeScrollTarget()
	assert.False(t, ok)
}

func TestLinesAndLineCount(t *testing.T) {
	b := New("one\ntwo\n")

	assert.Equal(t, []string{"one", "two", ""}, b.Lines())
	assert.Equal(t, 3, b.LineCount())

	assert.Equal(t, []string{""}, New("").Lines())
}
