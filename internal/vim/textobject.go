package vim

import "unicode"

// Text objects resolve to a range around the cursor instead of a movement
// from it. Resolution failure (no enclosing pair, empty buffer) makes the
// whole command fail without touching the buffer.

// resolveTextObject dispatches on the object kind. The returned range is
// half-open over rune offsets.
func resolveTextObject(text []rune, off int, m Motion) (Range, bool) {
	switch m.Kind {
	case MotionInnerWord:
		return wordObject(text, off, false)
	case MotionAroundWord:
		return wordObject(text, off, true)
	case MotionInnerQuote:
		return quoteObject(text, off, m.Char, false)
	case MotionAroundQuote:
		return quoteObject(text, off, m.Char, true)
	case MotionInnerParen:
		return pairObject(text, off, '(', ')', false)
	case MotionAroundParen:
		return pairObject(text, off, '(', ')', true)
	case MotionInnerBrace:
		return pairObject(text, off, '{', '}', false)
	case MotionAroundBrace:
		return pairObject(text, off, '{', '}', true)
	case MotionInnerBracket:
		return pairObject(text, off, '[', ']', false)
	case MotionAroundBracket:
		return pairObject(text, off, '[', ']', true)
	}
	return Range{}, false
}

// wordObject expands to the contiguous run containing the cursor: a word
// run, a punctuation run, or a whitespace run, never crossing lines. The
// around form also consumes trailing spaces and tabs.
func wordObject(text []rune, off int, around bool) (Range, bool) {
	n := len(text)
	if n == 0 {
		return Range{}, false
	}
	if off >= n {
		off = n - 1
	}
	start, contentEnd, _ := lineBounds(text, off)
	if off >= contentEnd {
		// Cursor on the newline of an empty line.
		return Range{}, false
	}
	class := runClass(text[off])
	lo, hi := off, off+1
	for lo > start && runClass(text[lo-1]) == class {
		lo--
	}
	for hi < contentEnd && runClass(text[hi]) == class {
		hi++
	}
	if around {
		for hi < contentEnd && (text[hi] == ' ' || text[hi] == '\t') {
			hi++
		}
	}
	return Range{Start: lo, End: hi}, true
}

// runClass buckets a rune for word-object expansion.
func runClass(r rune) int {
	switch {
	case isWordRune(r):
		return 0
	case unicode.IsSpace(r):
		return 1
	default:
		return 2
	}
}

// quoteObject pairs up quote characters on the current line and picks the
// pair containing the cursor, or the first pair past it.
func quoteObject(text []rune, off int, q rune, around bool) (Range, bool) {
	start, contentEnd, _ := lineBounds(text, off)
	var positions []int
	for i := start; i < contentEnd; i++ {
		if text[i] == q {
			positions = append(positions, i)
		}
	}
	for i := 0; i+1 < len(positions); i += 2 {
		open, close := positions[i], positions[i+1]
		if off <= close {
			if around {
				return Range{Start: open, End: close + 1}, true
			}
			return Range{Start: open + 1, End: close}, true
		}
	}
	return Range{}, false
}

// pairObject scans backward for the nearest unmatched opener and forward
// for its closer, tracking nesting depth. Unlike quote objects the scan
// crosses line boundaries.
func pairObject(text []rune, off int, open, close rune, around bool) (Range, bool) {
	n := len(text)
	if n == 0 {
		return Range{}, false
	}
	if off >= n {
		off = n - 1
	}
	openPos := -1
	if text[off] == open {
		openPos = off
	} else {
		depth := 0
		for i := off - 1; i >= 0; i-- {
			switch text[i] {
			case close:
				depth++
			case open:
				if depth == 0 {
					openPos = i
				} else {
					depth--
				}
			}
			if openPos >= 0 {
				break
			}
		}
	}
	if openPos < 0 {
		return Range{}, false
	}
	depth := 0
	closePos := -1
	for i := openPos + 1; i < n; i++ {
		switch text[i] {
		case open:
			depth++
		case close:
			if depth == 0 {
				closePos = i
			} else {
				depth--
			}
		}
		if closePos >= 0 {
			break
		}
	}
	if closePos < 0 {
		return Range{}, false
	}
	if around {
		return Range{Start: openPos, End: closePos + 1}, true
	}
	return Range{Start: openPos + 1, End: closePos}, true
}
