package vim

// MotionKind enumerates every cursor motion and text object the engine
// understands. Motions serve double duty: alone they move the cursor, and
// after an operator they define the range the operator acts on.
type MotionKind int

const (
	MotionNone MotionKind = iota

	// Directional
	MotionLeft
	MotionRight
	MotionUp
	MotionDown

	// Words
	MotionWordForward
	MotionWordBackward
	MotionWordEnd
	MotionBigWordForward
	MotionBigWordBackward
	MotionBigWordEnd

	// Lines
	MotionLineStart
	MotionFirstNonBlank
	MotionLineEnd
	MotionGotoFirstLine
	MotionGotoLastLine

	// Blocks
	MotionParagraphForward
	MotionParagraphBackward
	MotionSentenceForward
	MotionSentenceBackward

	// Search
	MotionSearchNext
	MotionSearchPrev

	// Character find (two-key forms carry the target in Motion.Char)
	MotionFindForward
	MotionFindBackward
	MotionTillForward
	MotionTillBackward
	MotionRepeatFind
	MotionRepeatFindReverse

	// Text objects (two-key forms i{obj} / a{obj})
	MotionInnerWord
	MotionAroundWord
	MotionInnerQuote
	MotionAroundQuote
	MotionInnerParen
	MotionAroundParen
	MotionInnerBrace
	MotionAroundBrace
	MotionInnerBracket
	MotionAroundBracket
)

// Motion is a fully parsed motion. Char holds the search target for the
// find family and the delimiter for quote objects.
type Motion struct {
	Kind MotionKind
	Char rune
}

// IsTextObject reports whether the motion selects a region around the
// cursor rather than a movement from it.
func (m Motion) IsTextObject() bool {
	return m.Kind >= MotionInnerWord && m.Kind <= MotionAroundBracket
}

// Linewise reports whether an operator applied over this motion expands
// to whole lines.
func (m Motion) Linewise() bool {
	switch m.Kind {
	case MotionUp, MotionDown, MotionGotoFirstLine, MotionGotoLastLine:
		return true
	}
	return false
}

// Inclusive reports whether an operator range over this motion includes
// the landing character. Exclusive motions stop just short of it.
func (m Motion) Inclusive() bool {
	switch m.Kind {
	case MotionRight,
		MotionWordForward, MotionBigWordForward,
		MotionWordEnd, MotionBigWordEnd,
		MotionLineEnd,
		MotionFindForward, MotionFindBackward,
		MotionTillForward, MotionTillBackward,
		MotionRepeatFind, MotionRepeatFindReverse:
		return true
	}
	return false
}

// bareMotions maps single keystrokes to motions. The find family and text
// objects need a second key and are handled by the parser directly.
var bareMotions = map[rune]MotionKind{
	'h': MotionLeft,
	'l': MotionRight,
	'k': MotionUp,
	'j': MotionDown,
	'w': MotionWordForward,
	'b': MotionWordBackward,
	'e': MotionWordEnd,
	'W': MotionBigWordForward,
	'B': MotionBigWordBackward,
	'E': MotionBigWordEnd,
	'0': MotionLineStart,
	'^': MotionFirstNonBlank,
	'$': MotionLineEnd,
	'}': MotionParagraphForward,
	'{': MotionParagraphBackward,
	')': MotionSentenceForward,
	'(': MotionSentenceBackward,
	'n': MotionSearchNext,
	'N': MotionSearchPrev,
	';': MotionRepeatFind,
	',': MotionRepeatFindReverse,
}

// findMotions maps the first key of the two-key character-find forms.
var findMotions = map[rune]MotionKind{
	'f': MotionFindForward,
	'F': MotionFindBackward,
	't': MotionTillForward,
	'T': MotionTillBackward,
}

// textObject resolves an i/a prefix plus an object key. The delimiter
// rune for quote objects rides along in Motion.Char.
func textObject(prefix, obj rune) (Motion, bool) {
	inner := prefix == 'i'
	pick := func(in, around MotionKind) Motion {
		if inner {
			return Motion{Kind: in}
		}
		return Motion{Kind: around}
	}
	switch obj {
	case 'w':
		return pick(MotionInnerWord, MotionAroundWord), true
	case '"', '\'', '`':
		m := pick(MotionInnerQuote, MotionAroundQuote)
		m.Char = obj
		return m, true
	case '(', ')', 'b':
		return pick(MotionInnerParen, MotionAroundParen), true
	case '{', '}', 'B':
		return pick(MotionInnerBrace, MotionAroundBrace), true
	case '[', ']':
		return pick(MotionInnerBracket, MotionAroundBracket), true
	}
	return Motion{}, false
}
