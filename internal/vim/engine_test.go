package vim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vellum/internal/textbuf"
	"vellum/internal/vim"
)

func newEditor(content string, loc int) (*vim.Engine, *textbuf.Buffer) {
	buf := textbuf.New(content)
	buf.SetSelection(loc, 0)
	e := vim.New(buf, vim.Config{Enabled: true})
	return e, buf
}

func press(e *vim.Engine, keys string) {
	for _, r := range keys {
		e.HandleKey(vim.Key{Rune: r})
	}
}

func pressEsc(e *vim.Engine) bool   { return e.HandleKey(vim.Key{Name: "esc"}) }
func pressEnter(e *vim.Engine) bool { return e.HandleKey(vim.Key{Name: "enter"}) }

func cursor(buf *textbuf.Buffer) int {
	loc, _ := buf.Selection()
	return loc
}

func TestDisabledEngineConsumesNothing(t *testing.T) {
	buf := textbuf.New("abc")
	e := vim.New(buf, vim.Config{Enabled: false})

	assert.False(t, e.HandleKey(vim.Key{Rune: 'x'}))
	assert.False(t, e.HandleKey(vim.Key{Name: "esc"}))
	assert.Equal(t, "abc", buf.String())
}

func TestInsertModeRoundTrip(t *testing.T) {
	e, buf := newEditor("world", 0)

	press(e, "i")
	require.Equal(t, vim.ModeInsert, e.Mode())

	// Printable keys are not consumed in Insert; the host types them.
	assert.False(t, e.HandleKey(vim.Key{Rune: 'h'}))
	buf.Insert("hi ")

	assert.True(t, pressEsc(e))
	assert.Equal(t, vim.ModeNormal, e.Mode())
	assert.Equal(t, "hi world", buf.String())
	// Leaving Insert steps the cursor back one.
	assert.Equal(t, 2, cursor(buf))
}

func TestEscapeAtBufferStartStaysPut(t *testing.T) {
	e, buf := newEditor("abc", 0)

	press(e, "i")
	pressEsc(e)
	assert.Equal(t, 0, cursor(buf))
}

func TestDeleteLine(t *testing.T) {
	e, buf := newEditor("line1\nline2\nline3\n", 6)

	press(e, "dd")
	assert.Equal(t, "line1\nline3\n", buf.String())
	assert.Equal(t, "line2\n", e.Register('"'))
	assert.Equal(t, "line2\n", e.Register('0'))
	assert.Equal(t, "line2\n", e.Register('1'))
	assert.Equal(t, 6, cursor(buf))
}

func TestDeleteLastLineWithoutTerminator(t *testing.T) {
	e, buf := newEditor("one\ntwo", 5)

	press(e, "dd")
	assert.Equal(t, "one", buf.String())
	assert.Equal(t, "two\n", e.Register('"'))
}

func TestYankAndPasteLine(t *testing.T) {
	e, buf := newEditor("alpha\nbeta\n", 0)

	press(e, "yy")
	assert.Equal(t, "alpha\n", e.Register('"'))
	assert.Equal(t, "1 line yanked", e.StatusMessage())

	press(e, "p")
	assert.Equal(t, "alpha\nalpha\nbeta\n", buf.String())
	assert.Equal(t, 6, cursor(buf))
}

func TestDeleteThenPasteBeforeRestoresBuffer(t *testing.T) {
	e, buf := newEditor("line1\nline2\nline3\n", 6)

	press(e, "dd")
	press(e, "P")
	assert.Equal(t, "line1\nline2\nline3\n", buf.String())
	assert.Equal(t, 6, cursor(buf))
}

func TestCharwisePaste(t *testing.T) {
	e, buf := newEditor("hello world", 0)

	press(e, "ye")
	assert.Equal(t, "hello", e.Register('"'))

	press(e, "p")
	assert.Equal(t, "hhelloello world", buf.String())
	// Cursor lands on the last pasted character.
	assert.Equal(t, 5, cursor(buf))
}

func TestPasteEmptyRegister(t *testing.T) {
	e, buf := newEditor("abc", 0)

	press(e, "p")
	assert.Equal(t, "abc", buf.String())
	assert.Equal(t, "nothing in register", e.StatusMessage())
}

func TestVisualLineDelete(t *testing.T) {
	e, buf := newEditor("line1\nline2\nline3\n", 0)

	press(e, "Vjd")
	assert.Equal(t, "line3\n", buf.String())
	assert.Equal(t, "line1\nline2\n", e.Register('"'))
	assert.Equal(t, "line1\nline2\n", e.Register('1'))
	assert.Equal(t, vim.ModeNormal, e.Mode())
}

func TestVisualCharwiseDelete(t *testing.T) {
	e, buf := newEditor("hello world", 0)

	press(e, "ved")
	assert.Equal(t, " world", buf.String())
	assert.Equal(t, "hello", e.Register('"'))
	// Charwise operations never touch register 1.
	assert.Equal(t, "", e.Register('1'))
}

func TestVisualTextObjectSelection(t *testing.T) {
	e, buf := newEditor("say (hi there) now", 7)

	press(e, "vi(")
	loc, length := buf.Selection()
	assert.Equal(t, 5, loc)
	assert.Equal(t, 8, length)

	press(e, "y")
	assert.Equal(t, "hi there", e.Register('"'))
}

func TestVisualEscapeRestoresCursor(t *testing.T) {
	e, buf := newEditor("hello world", 0)

	press(e, "vee")
	pressEsc(e)
	assert.Equal(t, vim.ModeNormal, e.Mode())
	assert.Equal(t, 10, cursor(buf))
}

func TestCountedWordMotion(t *testing.T) {
	e, buf := newEditor("one two three four", 0)

	press(e, "3w")
	assert.Equal(t, 14, cursor(buf))
}

func TestPendingShowsCountAndPrefix(t *testing.T) {
	e, _ := newEditor("abc def", 0)

	press(e, "2")
	assert.Equal(t, "2", e.Pending())
	press(e, "d")
	assert.Equal(t, "2d", e.Pending())

	pressEsc(e)
	assert.Equal(t, "", e.Pending())
}

func TestZeroIsMotionWithoutCount(t *testing.T) {
	e, buf := newEditor("  abc", 4)

	press(e, "0")
	assert.Equal(t, 0, cursor(buf))

	press(e, "^")
	assert.Equal(t, 2, cursor(buf))

	press(e, "$")
	assert.Equal(t, 4, cursor(buf))
}

func TestInvalidKeyNotConsumed(t *testing.T) {
	e, buf := newEditor("abc", 0)

	assert.False(t, e.HandleKey(vim.Key{Rune: 'z'}))
	assert.Equal(t, "", e.Pending())
	assert.Equal(t, "abc", buf.String())

	// A pending operator dies with the invalid continuation.
	press(e, "d")
	assert.False(t, e.HandleKey(vim.Key{Rune: 'z'}))
	assert.Equal(t, "", e.Pending())
	assert.Equal(t, "abc", buf.String())
}

func TestTextObjectFailureLeavesBufferAlone(t *testing.T) {
	e, buf := newEditor("no parens here", 3)

	press(e, "di")
	// The final key of an unresolvable object is not consumed.
	assert.False(t, e.HandleKey(vim.Key{Rune: '('}))
	assert.Equal(t, "no parens here", buf.String())
}

func TestOperatorWithMotion(t *testing.T) {
	e, buf := newEditor("hello world", 0)

	press(e, "d$")
	assert.Equal(t, "", buf.String())
	assert.Equal(t, "hello world", e.Register('"'))
}

func TestOperatorWithLinewiseMotion(t *testing.T) {
	e, buf := newEditor("a\nb\nc", 0)

	press(e, "dj")
	assert.Equal(t, "c", buf.String())
	assert.Equal(t, "a\nb\n", e.Register('"'))
	assert.Equal(t, "a\nb\n", e.Register('1'))
}

func TestChangeInnerWord(t *testing.T) {
	e, buf := newEditor("foo bar baz", 5)

	press(e, "ciw")
	assert.Equal(t, "foo  baz", buf.String())
	assert.Equal(t, "bar", e.Register('"'))
	assert.Equal(t, vim.ModeInsert, e.Mode())
	assert.Equal(t, 4, cursor(buf))
}

func TestChangeLine(t *testing.T) {
	e, buf := newEditor("  foo\nbar", 0)

	press(e, "cc")
	assert.Equal(t, "  \nbar", buf.String())
	assert.Equal(t, "  foo\n", e.Register('"'))
	assert.Equal(t, vim.ModeInsert, e.Mode())
	assert.Equal(t, 2, cursor(buf))
}

func TestDeleteAroundQuote(t *testing.T) {
	e, buf := newEditor(`say "hi" now`, 6)

	press(e, `da"`)
	assert.Equal(t, "say  now", buf.String())
	assert.Equal(t, `"hi"`, e.Register('"'))
}

func TestDeleteCharFamilies(t *testing.T) {
	e, buf := newEditor("abc", 0)

	press(e, "x")
	assert.Equal(t, "bc", buf.String())
	assert.Equal(t, "a", e.Register('"'))
	assert.Equal(t, "", e.Register('1'))

	e2, buf2 := newEditor("abc", 2)
	press(e2, "X")
	assert.Equal(t, "ac", buf2.String())
	assert.Equal(t, 1, cursor(buf2))
}

func TestDeleteCharClampsAtLineEnd(t *testing.T) {
	e, buf := newEditor("ab\ncd", 1)

	press(e, "3x")
	// Only the rest of the line goes; the newline survives.
	assert.Equal(t, "a\ncd", buf.String())
	assert.Equal(t, 0, cursor(buf))
}

func TestJoinLines(t *testing.T) {
	e, buf := newEditor("foo\n  bar\nbaz", 0)

	press(e, "J")
	assert.Equal(t, "foo bar\nbaz", buf.String())
	assert.Equal(t, 3, cursor(buf))

	// Joining past the last line stops quietly.
	press(e, "J")
	press(e, "J")
	assert.Equal(t, "foo bar baz", buf.String())
}

func TestToggleCase(t *testing.T) {
	e, buf := newEditor("aBc", 0)

	press(e, "~")
	assert.Equal(t, "ABc", buf.String())
	assert.Equal(t, 0, cursor(buf))
}

func TestReplaceChar(t *testing.T) {
	e, buf := newEditor("abc", 0)

	press(e, "rx")
	assert.Equal(t, "xbc", buf.String())
	assert.Equal(t, 0, cursor(buf))
	assert.Equal(t, vim.ModeNormal, e.Mode())
}

func TestReplaceModeIsSingleShot(t *testing.T) {
	e, buf := newEditor("abc", 0)

	press(e, "R")
	require.Equal(t, vim.ModeReplace, e.Mode())

	press(e, "z")
	assert.Equal(t, "zbc", buf.String())
	assert.Equal(t, 1, cursor(buf))
	assert.Equal(t, vim.ModeNormal, e.Mode())
}

func TestIndentOutdentLine(t *testing.T) {
	e, buf := newEditor("foo\nbar", 0)

	press(e, ">>")
	assert.Equal(t, "    foo\nbar", buf.String())
	assert.Equal(t, 4, cursor(buf))

	press(e, "<<")
	assert.Equal(t, "foo\nbar", buf.String())
	assert.Equal(t, 0, cursor(buf))
}

func TestGotoLineCommands(t *testing.T) {
	e, buf := newEditor("one\ntwo\nthree", 8)

	press(e, "gg")
	assert.Equal(t, 0, cursor(buf))

	press(e, "G")
	assert.Equal(t, 8, cursor(buf))

	press(e, "2G")
	assert.Equal(t, 4, cursor(buf))

	press(e, "2gg")
	assert.Equal(t, 4, cursor(buf))
}

func TestMarks(t *testing.T) {
	e, buf := newEditor("one\ntwo\nthree", 0)

	press(e, "ma")
	press(e, "j")
	require.Equal(t, 4, cursor(buf))

	press(e, "`a")
	assert.Equal(t, 0, cursor(buf))

	press(e, "`x")
	assert.Equal(t, "mark 'x' not set", e.StatusMessage())
	assert.Equal(t, 0, cursor(buf))
}

func TestFindAndRepeatFind(t *testing.T) {
	e, buf := newEditor("abcabc", 0)

	press(e, "fc")
	assert.Equal(t, 2, cursor(buf))

	press(e, ";")
	assert.Equal(t, 5, cursor(buf))

	press(e, ",")
	assert.Equal(t, 2, cursor(buf))

	press(e, "0tc")
	assert.Equal(t, 1, cursor(buf))
}

func TestSearchAndRepeat(t *testing.T) {
	e, buf := newEditor("abcabc", 0)

	press(e, "/")
	require.Equal(t, vim.ModeCommandLine, e.Mode())
	assert.Equal(t, "/", e.CommandLine())

	press(e, "bc")
	pressEnter(e)
	assert.Equal(t, vim.ModeNormal, e.Mode())
	assert.Equal(t, 1, cursor(buf))

	press(e, "n")
	assert.Equal(t, 4, cursor(buf))

	press(e, "N")
	assert.Equal(t, 1, cursor(buf))

	// An empty pattern reuses the previous search.
	press(e, "/")
	pressEnter(e)
	assert.Equal(t, 4, cursor(buf))
}

func TestSearchPatternNotFound(t *testing.T) {
	e, buf := newEditor("abc", 0)

	press(e, "/zz")
	pressEnter(e)
	assert.Equal(t, "pattern not found: zz", e.StatusMessage())
	assert.Equal(t, 0, cursor(buf))
}

func TestSearchNextWithoutHistory(t *testing.T) {
	e, buf := newEditor("abc", 0)

	press(e, "n")
	assert.Equal(t, "no previous search", e.StatusMessage())
	assert.Equal(t, 0, cursor(buf))
}

func TestCommandLineGotoLine(t *testing.T) {
	e, buf := newEditor("one\ntwo\n  three", 0)

	press(e, ":3")
	pressEnter(e)
	assert.Equal(t, 10, cursor(buf))

	// Out-of-range clamps to the last line.
	press(e, ":99")
	pressEnter(e)
	assert.Equal(t, 10, cursor(buf))
}

func TestCommandLineUnknownCommand(t *testing.T) {
	e, _ := newEditor("abc", 0)

	press(e, ":frobnicate")
	pressEnter(e)
	assert.Equal(t, "not an editor command: frobnicate", e.StatusMessage())
}

func TestCommandLineBackspaceAndCancel(t *testing.T) {
	e, _ := newEditor("abc", 0)

	press(e, ":ab")
	e.HandleKey(vim.Key{Name: "backspace"})
	assert.Equal(t, ":a", e.CommandLine())

	// Erasing the prefix cancels command-line mode.
	e.HandleKey(vim.Key{Name: "backspace"})
	e.HandleKey(vim.Key{Name: "backspace"})
	assert.Equal(t, vim.ModeNormal, e.Mode())
	assert.Equal(t, "", e.CommandLine())
}

func TestUndoDelegatesToBuffer(t *testing.T) {
	e, buf := newEditor("abc", 0)

	press(e, "x")
	require.Equal(t, "bc", buf.String())

	press(e, "u")
	assert.Equal(t, "abc", buf.String())
	assert.Equal(t, 0, cursor(buf))
}

func TestRepeatUsesCurrentCount(t *testing.T) {
	e, buf := newEditor("aaaaaa", 0)

	press(e, "x")
	assert.Equal(t, "aaaaa", buf.String())

	press(e, ".")
	assert.Equal(t, "aaaa", buf.String())

	press(e, "2.")
	assert.Equal(t, "aa", buf.String())
}

func TestRepeatWithNothingToRepeat(t *testing.T) {
	e, buf := newEditor("abc", 0)

	press(e, ".")
	assert.Equal(t, "abc", buf.String())
}

func TestOpenLineCommands(t *testing.T) {
	e, buf := newEditor("ab\ncd", 0)

	press(e, "o")
	assert.Equal(t, "ab\n\ncd", buf.String())
	assert.Equal(t, 3, cursor(buf))
	assert.Equal(t, vim.ModeInsert, e.Mode())
	pressEsc(e)

	e2, buf2 := newEditor("ab\ncd", 3)
	press(e2, "O")
	assert.Equal(t, "ab\n\ncd", buf2.String())
	assert.Equal(t, 3, cursor(buf2))
	assert.Equal(t, vim.ModeInsert, e2.Mode())
}

func TestInsertEntryVariants(t *testing.T) {
	e, buf := newEditor("  hello", 4)

	press(e, "A")
	assert.Equal(t, 7, cursor(buf))
	assert.Equal(t, vim.ModeInsert, e.Mode())
	pressEsc(e)

	press(e, "I")
	assert.Equal(t, 2, cursor(buf))
	pressEsc(e)

	press(e, "0a")
	assert.Equal(t, 1, cursor(buf))
}

func TestQuitCallbacks(t *testing.T) {
	var calls []bool
	buf := textbuf.New("abc")
	eng := vim.New(buf, vim.Config{
		Enabled: true,
		OnQuit:  func(save bool) { calls = append(calls, save) },
	})

	press(eng, "ZZ")
	press(eng, "ZQ")
	assert.Equal(t, []bool{true, false}, calls)
}

func TestSetEnabledResetsState(t *testing.T) {
	e, _ := newEditor("abc def", 0)

	press(e, "v")
	require.Equal(t, vim.ModeVisual, e.Mode())

	e.SetEnabled(false)
	assert.Equal(t, vim.ModeNormal, e.Mode())
	assert.False(t, e.HandleKey(vim.Key{Rune: 'x'}))

	e.SetEnabled(true)
	assert.True(t, e.HandleKey(vim.Key{Rune: 'l'}))
}

func TestPosition(t *testing.T) {
	e, _ := newEditor("one\ntwo", 5)

	line, col := e.Position()
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
}

func TestCaretOnBlankLine(t *testing.T) {
	e, buf := newEditor("    \nabc\n", 1)

	press(e, "^")
	assert.Equal(t, 0, cursor(buf))
}

func TestInsertLineStartOnBlankLine(t *testing.T) {
	e, buf := newEditor("   \nnext", 2)

	press(e, "I")
	assert.Equal(t, 0, cursor(buf))
	assert.Equal(t, vim.ModeInsert, e.Mode())
}

func TestChangeBlankLine(t *testing.T) {
	e, buf := newEditor("   \nnext", 1)

	press(e, "cc")
	assert.Equal(t, "\nnext", buf.String())
	assert.Equal(t, "   \n", e.Register('"'))
	assert.Equal(t, 0, cursor(buf))
	assert.Equal(t, vim.ModeInsert, e.Mode())
}

func TestDeleteToLastLine(t *testing.T) {
	e, buf := newEditor("one\ntwo\nthree\n", 0)

	press(e, "dG")
	assert.Equal(t, "", buf.String())
	assert.Equal(t, "one\ntwo\nthree\n", e.Register('"'))
	assert.Equal(t, "one\ntwo\nthree\n", e.Register('1'))
}

func TestDeleteToFirstLine(t *testing.T) {
	e, buf := newEditor("one\ntwo\nthree", 4)

	press(e, "dgg")
	assert.Equal(t, "three", buf.String())
	assert.Equal(t, "one\ntwo\n", e.Register('"'))
}

func TestDeleteToCountedLine(t *testing.T) {
	e, buf := newEditor("a\nb\nc\nd", 0)

	press(e, "2dG")
	assert.Equal(t, "c\nd", buf.String())
}

func TestYankToFirstLineIsLinewise(t *testing.T) {
	e, buf := newEditor("one\ntwo\nthree", 4)

	press(e, "ygg")
	assert.Equal(t, "one\ntwo\nthree", buf.String())
	assert.Equal(t, "one\ntwo\n", e.Register('0'))
}

func TestVisualLineToLastLine(t *testing.T) {
	e, buf := newEditor("one\ntwo\nthree", 0)

	press(e, "VGd")
	assert.Equal(t, "", buf.String())
}

func TestLinewiseDeleteAtBufferEdgeIsNoop(t *testing.T) {
	e, buf := newEditor("one\ntwo\n", 5)

	press(e, "dj")
	assert.Equal(t, "one\ntwo\n", buf.String())
	assert.Equal(t, "", e.Register('"'))

	e, buf = newEditor("one\ntwo\n", 0)
	press(e, "dk")
	assert.Equal(t, "one\ntwo\n", buf.String())
	assert.Equal(t, "", e.Register('"'))
}

func TestIndentCountedLines(t *testing.T) {
	e, buf := newEditor("a\nb\nc", 0)

	press(e, "2>>")
	assert.Equal(t, "    a\n    b\nc", buf.String())
	assert.Equal(t, 4, cursor(buf))
}

func TestRepeatAfterMotionRepeatsMotion(t *testing.T) {
	e, buf := newEditor("a\nb\nc", 0)

	press(e, "j")
	require.Equal(t, 2, cursor(buf))

	press(e, ".")
	assert.Equal(t, 4, cursor(buf))
}
