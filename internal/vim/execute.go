package vim

import (
	"strings"
	"unicode"
)

const indentUnit = "    "

// execute runs a fully parsed command and reports whether the keystroke
// sequence was consumed. Successful commands (other than repeat itself)
// become the new lastCommand.
func (e *Engine) execute(cmd Command, count int, hadCount bool) bool {
	ok := true
	switch cmd.Kind {
	case CmdMotion:
		ok = e.runMotion(cmd.Motion, count, hadCount)
	case CmdOperatorMotion:
		ok = e.runOperatorMotion(cmd.Op, cmd.Motion, count, hadCount)
	case CmdOperatorLine:
		e.runOperatorLine(cmd.Op, count)
	case CmdEnterMode:
		e.runEnterMode(cmd.Enter)
	case CmdAction:
		ok = e.runAction(cmd, count, hadCount)
	}
	if ok && cmd.Action != ActionRepeat {
		c := cmd
		e.lastCommand = &c
	}
	return ok
}

// motionTarget resolves a motion to a new offset, applying it count times
// with each step feeding the next. Motions that cannot move simply stay
// put; only failed finds and searches report false.
func (e *Engine) motionTarget(text []rune, loc int, m Motion, count int, hadCount bool) (int, bool) {
	switch m.Kind {
	case MotionGotoFirstLine, MotionGotoLastLine:
		// Absolute jumps: a count names a line, G without one means the
		// last line.
		starts := lineStarts(text)
		n := count - 1
		if m.Kind == MotionGotoLastLine && !hadCount {
			n = len(starts) - 1
		}
		if n >= len(starts) {
			n = len(starts) - 1
		}
		if n < 0 {
			n = 0
		}
		return starts[n], true
	case MotionSearchNext, MotionSearchPrev:
		if e.lastSearch.pattern == "" {
			e.setStatus("no previous search")
			return loc, false
		}
		forward := e.lastSearch.forward
		if m.Kind == MotionSearchPrev {
			forward = !forward
		}
		cur := loc
		pattern := []rune(e.lastSearch.pattern)
		for i := 0; i < count; i++ {
			next, ok := searchText(text, pattern, cur, forward)
			if !ok {
				e.setStatus("pattern not found: %s", e.lastSearch.pattern)
				return loc, false
			}
			cur = next
		}
		return cur, true
	case MotionFindForward, MotionFindBackward, MotionTillForward, MotionTillBackward:
		e.lastFind = findState{char: m.Char, kind: m.Kind, set: true}
		return findTarget(text, loc, m.Kind, m.Char, count)
	case MotionRepeatFind, MotionRepeatFindReverse:
		if !e.lastFind.set {
			return loc, false
		}
		kind := e.lastFind.kind
		if m.Kind == MotionRepeatFindReverse {
			kind = reverseFind(kind)
		}
		return findTarget(text, loc, kind, e.lastFind.char, count)
	}
	cur := loc
	for i := 0; i < count; i++ {
		next := motionStep(text, cur, m)
		if next == cur {
			break
		}
		cur = next
	}
	if cur > len(text) {
		cur = len(text)
	}
	if cur < 0 {
		cur = 0
	}
	return cur, true
}

func motionStep(text []rune, loc int, m Motion) int {
	switch m.Kind {
	case MotionLeft:
		return moveLeft(text, loc)
	case MotionRight:
		return moveRight(text, loc)
	case MotionUp:
		return moveVert(text, loc, -1)
	case MotionDown:
		return moveVert(text, loc, 1)
	case MotionWordForward:
		return wordForward(text, loc, false)
	case MotionBigWordForward:
		return wordForward(text, loc, true)
	case MotionWordBackward:
		return wordBackward(text, loc, false)
	case MotionBigWordBackward:
		return wordBackward(text, loc, true)
	case MotionWordEnd:
		return wordEnd(text, loc, false)
	case MotionBigWordEnd:
		return wordEnd(text, loc, true)
	case MotionLineStart:
		return lineStart(text, loc)
	case MotionFirstNonBlank:
		return firstNonBlank(text, loc)
	case MotionLineEnd:
		return lineEnd(text, loc)
	case MotionParagraphForward:
		return paragraphMove(text, loc, true)
	case MotionParagraphBackward:
		return paragraphMove(text, loc, false)
	case MotionSentenceForward:
		return sentenceMove(text, loc, true)
	case MotionSentenceBackward:
		return sentenceMove(text, loc, false)
	}
	return loc
}

func findTarget(text []rune, loc int, kind MotionKind, ch rune, count int) (int, bool) {
	forward := kind == MotionFindForward || kind == MotionTillForward
	till := kind == MotionTillForward || kind == MotionTillBackward
	cur := loc
	for i := 0; i < count; i++ {
		next, ok := findChar(text, cur, ch, forward, till)
		if !ok {
			return loc, false
		}
		cur = next
	}
	return cur, true
}

func reverseFind(kind MotionKind) MotionKind {
	switch kind {
	case MotionFindForward:
		return MotionFindBackward
	case MotionFindBackward:
		return MotionFindForward
	case MotionTillForward:
		return MotionTillBackward
	case MotionTillBackward:
		return MotionTillForward
	}
	return kind
}

func (e *Engine) runMotion(m Motion, count int, hadCount bool) bool {
	if m.IsTextObject() {
		// Text objects are operator and visual targets only.
		return false
	}
	text := e.text()
	loc, _ := e.buf.Selection()
	target, ok := e.motionTarget(text, loc, m, count, hadCount)
	if !ok {
		return true
	}
	e.buf.SetSelection(target, 0)
	e.buf.ScrollIntoView(target)
	return true
}

// runOperatorMotion computes the operator's range from the motion's
// classification: text objects as resolved, linewise motions expanded to
// full lines, everything else characterwise with inclusive motions
// covering the landing character.
func (e *Engine) runOperatorMotion(op Operator, m Motion, count int, hadCount bool) bool {
	text := e.text()
	loc, _ := e.buf.Selection()

	if m.IsTextObject() {
		r, ok := resolveTextObject(text, loc, m)
		if !ok {
			return false
		}
		e.applyOperator(op, r, false)
		return true
	}

	if m.Linewise() {
		target, ok := e.motionTarget(text, loc, m, count, hadCount)
		if !ok {
			return true
		}
		if target == loc && (m.Kind == MotionUp || m.Kind == MotionDown) {
			// No line above or below: the whole command fails
			// without touching the buffer.
			return true
		}
		lo, hi := loc, target
		if lo > hi {
			lo, hi = hi, lo
		}
		start, _, _ := lineBounds(text, lo)
		_, _, end := lineBounds(text, hi)
		e.applyOperator(op, Range{Start: start, End: end}, true)
		return true
	}

	target, ok := e.motionTarget(text, loc, m, count, hadCount)
	if !ok || target == loc {
		return true
	}
	lo, hi := loc, target
	if lo > hi {
		lo, hi = hi, lo
	}
	r := Range{Start: lo, End: hi}
	if m.Inclusive() {
		r.End++
		if r.End > len(text) {
			r.End = len(text)
		}
	}
	if r.Len() > 0 {
		e.applyOperator(op, r, false)
	}
	return true
}

// runOperatorLine executes the doubled shortcuts dd, yy and cc over count
// lines starting at the current one.
func (e *Engine) runOperatorLine(op Operator, count int) {
	text := e.text()
	loc, _ := e.buf.Selection()
	start, _, _ := lineBounds(text, loc)
	end := start
	for i := 0; i < count && end < len(text); i++ {
		_, _, en := lineBounds(text, end)
		if en == end {
			break
		}
		end = en
	}
	if end == start && op != OpChange {
		// Empty buffer: nothing to take.
		return
	}
	content := e.buf.Substring(Range{Start: start, End: end})

	switch op {
	case OpDelete:
		e.registers.record(content, true)
		del := Range{Start: start, End: end}
		// The final line has no trailing newline of its own; take the
		// preceding one so the line count still drops.
		if end == len(text) && (len(text) == 0 || text[len(text)-1] != '\n') && start > 0 {
			del.Start = start - 1
		}
		e.buf.Replace(del, "")
		e.setNormalCursor(start)
	case OpYank:
		e.registers.record(content, true)
		lines := strings.Count(content, "\n")
		if lines == 0 && content != "" {
			lines = 1
		}
		e.setStatus("%d %s yanked", lines, plural("line", lines))
	case OpChange:
		from := firstNonBlank(text, start)
		to := end
		if to > start && to <= len(text) && text[to-1] == '\n' {
			to--
		}
		if content != "" {
			e.registers.record(content, true)
		}
		if to > from {
			e.buf.Replace(Range{Start: from, End: to}, "")
		}
		e.buf.SetSelection(from, 0)
		e.setMode(ModeInsert)
	}
}

// applyOperator mutates the buffer and registers for a resolved range.
func (e *Engine) applyOperator(op Operator, r Range, linewise bool) {
	content := e.buf.Substring(r)
	switch op {
	case OpDelete:
		e.registers.record(content, linewise)
		e.buf.Replace(r, "")
		e.setNormalCursor(r.Start)
	case OpChange:
		e.registers.record(content, linewise)
		del := r
		if linewise && del.End > del.Start {
			// Keep the final newline so insertion lands on its own line.
			if s := []rune(content); len(s) > 0 && s[len(s)-1] == '\n' {
				del.End--
			}
		}
		e.buf.Replace(del, "")
		e.buf.SetSelection(del.Start, 0)
		e.setMode(ModeInsert)
	case OpYank:
		e.registers.record(content, linewise)
		if linewise {
			lines := strings.Count(content, "\n")
			if lines == 0 && content != "" {
				lines = 1
			}
			e.setStatus("%d %s yanked", lines, plural("line", lines))
		} else {
			n := len([]rune(content))
			e.setStatus("%d %s yanked", n, plural("character", n))
		}
	case OpIndent:
		e.shiftLines(r, true)
	case OpOutdent:
		e.shiftLines(r, false)
	}
}

// setNormalCursor clamps a post-edit cursor to a real character.
func (e *Engine) setNormalCursor(loc int) {
	n := e.buf.Length()
	if loc > n-1 {
		loc = n - 1
	}
	if loc < 0 {
		loc = 0
	}
	e.buf.SetSelection(loc, 0)
	e.buf.ScrollIntoView(loc)
}

// shiftLines indents or outdents every line the range touches, working
// bottom-up so earlier offsets stay valid.
func (e *Engine) shiftLines(r Range, indent bool) {
	text := e.text()
	var starts []int
	pos := r.Start
	for {
		s, _, en := lineBounds(text, pos)
		starts = append(starts, s)
		if en >= r.End || en >= len(text) || en == s {
			break
		}
		pos = en
	}
	for i := len(starts) - 1; i >= 0; i-- {
		ls := starts[i]
		if indent {
			e.buf.Replace(Range{Start: ls, End: ls}, indentUnit)
			continue
		}
		j := ls
		removed := 0
		for j < len(text) && removed < len(indentUnit) {
			if text[j] == ' ' {
				j++
				removed++
			} else if text[j] == '\t' && removed == 0 {
				j++
				break
			} else {
				break
			}
		}
		if j > ls {
			e.buf.Replace(Range{Start: ls, End: j}, "")
		}
	}
	// Cursor lands on the first non-blank of the topmost shifted line.
	after := e.text()
	anchor := starts[0]
	if anchor > len(after) {
		anchor = len(after)
	}
	e.setNormalCursor(firstNonBlank(after, anchor))
}

func (e *Engine) runEnterMode(enter EnterKind) {
	text := e.text()
	loc, _ := e.buf.Selection()
	switch enter {
	case EnterInsert:
		e.setMode(ModeInsert)
	case EnterInsertAfter:
		if loc < len(text) && text[loc] != '\n' {
			loc++
		}
		e.buf.SetSelection(loc, 0)
		e.setMode(ModeInsert)
	case EnterInsertLineStart:
		e.buf.SetSelection(firstNonBlank(text, loc), 0)
		e.setMode(ModeInsert)
	case EnterInsertLineEnd:
		_, contentEnd, _ := lineBounds(text, loc)
		e.buf.SetSelection(contentEnd, 0)
		e.setMode(ModeInsert)
	case EnterOpenBelow:
		_, contentEnd, _ := lineBounds(text, loc)
		e.buf.Replace(Range{Start: contentEnd, End: contentEnd}, "\n")
		e.buf.SetSelection(contentEnd+1, 0)
		e.buf.ScrollIntoView(contentEnd + 1)
		e.setMode(ModeInsert)
	case EnterOpenAbove:
		start, _, _ := lineBounds(text, loc)
		e.buf.Replace(Range{Start: start, End: start}, "\n")
		e.buf.SetSelection(start, 0)
		e.buf.ScrollIntoView(start)
		e.setMode(ModeInsert)
	case EnterVisual:
		e.setMode(ModeVisual)
		e.visualAnchor, e.visualCursor = loc, loc
		e.applyVisualSelection()
	case EnterVisualLine:
		e.setMode(ModeVisualLine)
		e.visualAnchor, e.visualCursor = loc, loc
		e.applyVisualSelection()
	case EnterReplace:
		e.setMode(ModeReplace)
	case EnterCommandLine:
		e.setMode(ModeCommandLine)
		e.cmdline = []rune{':'}
	case EnterSearchForward:
		e.setMode(ModeCommandLine)
		e.cmdline = []rune{'/'}
	case EnterSearchBackward:
		e.setMode(ModeCommandLine)
		e.cmdline = []rune{'?'}
	}
}

func (e *Engine) runAction(cmd Command, count int, hadCount bool) bool {
	text := e.text()
	loc, _ := e.buf.Selection()
	switch cmd.Action {
	case ActionDeleteChar:
		_, contentEnd, _ := lineBounds(text, loc)
		end := loc + count
		if end > contentEnd {
			end = contentEnd
		}
		if end <= loc {
			return true
		}
		r := Range{Start: loc, End: end}
		e.registers.record(e.buf.Substring(r), false)
		e.buf.Replace(r, "")
		e.clampCursorToLine(loc)
	case ActionDeleteCharBack:
		start, _, _ := lineBounds(text, loc)
		from := loc - count
		if from < start {
			from = start
		}
		if from >= loc {
			return true
		}
		r := Range{Start: from, End: loc}
		e.registers.record(e.buf.Substring(r), false)
		e.buf.Replace(r, "")
		e.buf.SetSelection(from, 0)
	case ActionPasteAfter:
		e.paste(true, count)
	case ActionPasteBefore:
		e.paste(false, count)
	case ActionUndo:
		for i := 0; i < count; i++ {
			e.buf.RequestUndo()
		}
		e.clampCursor()
	case ActionRepeat:
		if e.lastCommand == nil {
			return true
		}
		return e.execute(*e.lastCommand, count, hadCount)
	case ActionJoinLines:
		for i := 0; i < count; i++ {
			if !e.joinOnce() {
				break
			}
		}
	case ActionToggleCase:
		if loc < len(text) && text[loc] != '\n' {
			ch := text[loc]
			switch {
			case unicode.IsUpper(ch):
				ch = unicode.ToLower(ch)
			case unicode.IsLower(ch):
				ch = unicode.ToUpper(ch)
			}
			e.buf.Replace(Range{Start: loc, End: loc + 1}, string(ch))
			e.buf.SetSelection(loc, 0)
		}
	case ActionIndentLine, ActionOutdentLine:
		start, _, _ := lineBounds(text, loc)
		end := start
		for i := 0; i < count && end < len(text); i++ {
			_, _, en := lineBounds(text, end)
			if en == end {
				break
			}
			end = en
		}
		op := OpIndent
		if cmd.Action == ActionOutdentLine {
			op = OpOutdent
		}
		e.applyOperator(op, Range{Start: start, End: end}, true)
	case ActionGotoFirstLine:
		e.gotoLine(count - 1)
	case ActionGotoLine:
		if hadCount {
			e.gotoLine(count - 1)
		} else {
			e.gotoLine(len(lineStarts(text)) - 1)
		}
	case ActionSetMark:
		e.marks[cmd.Char] = loc
	case ActionGotoMark:
		off, ok := e.marks[cmd.Char]
		if !ok {
			e.setStatus("mark '%c' not set", cmd.Char)
			return true
		}
		e.setNormalCursor(off)
	case ActionReplaceChar:
		if loc < len(text) && text[loc] != '\n' {
			e.buf.Replace(Range{Start: loc, End: loc + 1}, string(cmd.Char))
			e.buf.SetSelection(loc, 0)
		}
	case ActionWriteQuit:
		if e.cfg.OnQuit != nil {
			e.cfg.OnQuit(true)
		}
	case ActionQuit:
		if e.cfg.OnQuit != nil {
			e.cfg.OnQuit(false)
		}
	}
	return true
}

// joinOnce splices the current line with the next, collapsing the newline
// and the next line's leading blanks into one space.
func (e *Engine) joinOnce() bool {
	text := e.text()
	loc, _ := e.buf.Selection()
	_, contentEnd, end := lineBounds(text, loc)
	if end >= len(text) {
		// No line below to join.
		return false
	}
	j := contentEnd + 1
	for j < len(text) && (text[j] == ' ' || text[j] == '\t') {
		j++
	}
	e.buf.Replace(Range{Start: contentEnd, End: j}, " ")
	e.buf.SetSelection(contentEnd, 0)
	return true
}

// paste inserts register '"' after or before the cursor. Linewise content
// goes on its own line; characterwise splices at the cursor.
func (e *Engine) paste(after bool, count int) {
	reg := e.registers.get('"')
	if reg == "" {
		e.setStatus("nothing in register")
		return
	}
	text := e.text()
	loc, _ := e.buf.Selection()
	content := strings.Repeat(reg, count)

	if registerLinewise(reg) {
		start, _, end := lineBounds(text, loc)
		pos := end
		cursor := pos
		if !after {
			pos = start
			cursor = pos
		} else if pos == len(text) && len(text) > 0 && text[len(text)-1] != '\n' {
			// Pasting below a final line that has no terminator.
			content = "\n" + strings.TrimSuffix(content, "\n")
			cursor = pos + 1
		}
		e.buf.Replace(Range{Start: pos, End: pos}, content)
		e.buf.SetSelection(cursor, 0)
		e.buf.ScrollIntoView(cursor)
		return
	}

	pos := loc
	if after && loc < len(text) && text[loc] != '\n' {
		pos = loc + 1
	}
	e.buf.Replace(Range{Start: pos, End: pos}, content)
	e.setNormalCursor(pos + len([]rune(content)) - 1)
}

// clampCursorToLine keeps the cursor off the line's trailing newline
// after a deletion at end of line.
func (e *Engine) clampCursorToLine(loc int) {
	text := e.text()
	if loc > len(text) {
		loc = len(text)
	}
	start, contentEnd, _ := lineBounds(text, loc)
	if loc >= contentEnd && contentEnd > start {
		loc = contentEnd - 1
	}
	e.buf.SetSelection(loc, 0)
}

func (e *Engine) clampCursor() {
	loc, _ := e.buf.Selection()
	e.setNormalCursor(loc)
}

// Visual-mode support.

// applyVisualSelection publishes the anchor..cursor span to the buffer so
// the host can highlight it. VisualLine expands to whole lines.
func (e *Engine) applyVisualSelection() {
	lo, hi := e.visualAnchor, e.visualCursor
	if lo > hi {
		lo, hi = hi, lo
	}
	n := e.buf.Length()
	if e.mode == ModeVisualLine {
		text := e.text()
		lo, _, _ = lineBounds(text, lo)
		_, _, hi = lineBounds(text, hi)
	} else {
		hi++
		if hi > n {
			hi = n
		}
	}
	e.buf.SetSelection(lo, hi-lo)
	e.buf.ScrollIntoView(e.visualCursor)
}

// extendVisual moves the free end of the selection, or snaps both ends to
// a text object.
func (e *Engine) extendVisual(m Motion, count int, hadCount bool) bool {
	text := e.text()
	if m.IsTextObject() {
		r, ok := resolveTextObject(text, e.visualCursor, m)
		if !ok {
			return false
		}
		e.visualAnchor = r.Start
		e.visualCursor = r.End - 1
		if e.visualCursor < e.visualAnchor {
			e.visualCursor = e.visualAnchor
		}
		e.applyVisualSelection()
		return true
	}
	target, ok := e.motionTarget(text, e.visualCursor, m, count, hadCount)
	if !ok {
		return true
	}
	if target >= len(text) && len(text) > 0 {
		target = len(text) - 1
	}
	e.visualCursor = target
	e.applyVisualSelection()
	return true
}

// visualOperate applies an operator to the live selection and leaves
// visual mode.
func (e *Engine) visualOperate(op Operator) {
	text := e.text()
	lo, hi := e.visualAnchor, e.visualCursor
	if lo > hi {
		lo, hi = hi, lo
	}
	linewise := e.mode == ModeVisualLine
	var r Range
	if linewise {
		start, _, _ := lineBounds(text, lo)
		_, _, end := lineBounds(text, hi)
		r = Range{Start: start, End: end}
	} else {
		end := hi + 1
		if end > len(text) {
			end = len(text)
		}
		r = Range{Start: lo, End: end}
	}
	cursor := e.visualCursor
	e.setMode(ModeNormal)

	content := e.buf.Substring(r)
	switch op {
	case OpDelete:
		e.registers.record(content, linewise)
		e.buf.Replace(r, "")
		e.setNormalCursor(r.Start)
	case OpYank:
		e.registers.record(content, linewise)
		if linewise {
			lines := strings.Count(content, "\n")
			if lines == 0 && content != "" {
				lines = 1
			}
			e.setStatus("%d %s yanked", lines, plural("line", lines))
		} else {
			n := len([]rune(content))
			e.setStatus("%d %s yanked", n, plural("character", n))
		}
		e.buf.SetSelection(cursor, 0)
	case OpChange:
		e.registers.record(content, linewise)
		del := r
		if linewise {
			if s := []rune(content); len(s) > 0 && s[len(s)-1] == '\n' {
				del.End--
			}
		}
		e.buf.Replace(del, "")
		e.buf.SetSelection(del.Start, 0)
		e.setMode(ModeInsert)
	}
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
