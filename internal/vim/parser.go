package vim

// ParseStatus reports how far a keystroke buffer got toward a command.
type ParseStatus int

const (
	// ParsePending means the buffer is a valid prefix of at least one
	// command and should be retained for the next keystroke.
	ParsePending ParseStatus = iota
	// ParseComplete means the buffer resolved to exactly one command.
	ParseComplete
	// ParseInvalid means no command starts with this buffer. The caller
	// clears the buffer and reports the keystroke as not consumed.
	ParseInvalid
)

// parseCommand resolves a normal-mode keystroke buffer. Matching runs in
// priority order: bare motions first, then standalone commands, then
// operator plus motion. Two-key forms resolve only once both characters
// are present.
func parseCommand(buf []rune) (Command, ParseStatus) {
	switch len(buf) {
	case 1:
		return parseSingle(buf[0])
	case 2:
		return parseDouble(buf[0], buf[1])
	case 3:
		// Operator over a two-key motion: dfx, dt), diw, ca" ...
		if op, ok := operatorKeys[buf[0]]; ok {
			if m, st := parseMotionKeys(buf[1:], true); st == ParseComplete {
				return Command{Kind: CmdOperatorMotion, Op: op, Motion: m}, ParseComplete
			}
		}
	}
	return Command{}, ParseInvalid
}

func parseSingle(r rune) (Command, ParseStatus) {
	if kind, ok := bareMotions[r]; ok {
		return Command{Kind: CmdMotion, Motion: Motion{Kind: kind}}, ParseComplete
	}
	if _, ok := findMotions[r]; ok {
		return Command{}, ParsePending
	}
	if enter, ok := modeEntries[r]; ok {
		return Command{Kind: CmdEnterMode, Enter: enter}, ParseComplete
	}
	if action, ok := standaloneActions[r]; ok {
		return Command{Kind: CmdAction, Action: action}, ParseComplete
	}
	if _, ok := operatorKeys[r]; ok {
		return Command{}, ParsePending
	}
	switch r {
	case 'g', 'Z', '>', '<', 'r', 'm', '\'', '`':
		return Command{}, ParsePending
	}
	return Command{}, ParseInvalid
}

func parseDouble(a, b rune) (Command, ParseStatus) {
	if kind, ok := findMotions[a]; ok {
		return Command{Kind: CmdMotion, Motion: Motion{Kind: kind, Char: b}}, ParseComplete
	}
	switch a {
	case 'r':
		return Command{Kind: CmdAction, Action: ActionReplaceChar, Char: b}, ParseComplete
	case 'm':
		if isMarkName(b) {
			return Command{Kind: CmdAction, Action: ActionSetMark, Char: b}, ParseComplete
		}
		return Command{}, ParseInvalid
	case '\'', '`':
		if isMarkName(b) {
			return Command{Kind: CmdAction, Action: ActionGotoMark, Char: b}, ParseComplete
		}
		return Command{}, ParseInvalid
	case 'g':
		if b == 'g' {
			return Command{Kind: CmdAction, Action: ActionGotoFirstLine}, ParseComplete
		}
		return Command{}, ParseInvalid
	case 'Z':
		switch b {
		case 'Z':
			return Command{Kind: CmdAction, Action: ActionWriteQuit}, ParseComplete
		case 'Q':
			return Command{Kind: CmdAction, Action: ActionQuit}, ParseComplete
		}
		return Command{}, ParseInvalid
	case '>':
		if b == '>' {
			return Command{Kind: CmdAction, Action: ActionIndentLine}, ParseComplete
		}
		return Command{}, ParseInvalid
	case '<':
		if b == '<' {
			return Command{Kind: CmdAction, Action: ActionOutdentLine}, ParseComplete
		}
		return Command{}, ParseInvalid
	}
	if op, ok := operatorKeys[a]; ok {
		if b == a {
			return Command{Kind: CmdOperatorLine, Op: op}, ParseComplete
		}
		if m, st := parseMotionKeys([]rune{b}, true); st != ParseInvalid {
			if st == ParsePending {
				return Command{}, ParsePending
			}
			return Command{Kind: CmdOperatorMotion, Op: op, Motion: m}, ParseComplete
		}
	}
	return Command{}, ParseInvalid
}

// parseMotionKeys resolves the motion tail of an operator, and doubles as
// the visual-mode motion parser where text objects are legal targets.
func parseMotionKeys(buf []rune, allowTextObject bool) (Motion, ParseStatus) {
	switch len(buf) {
	case 1:
		if kind, ok := bareMotions[buf[0]]; ok {
			return Motion{Kind: kind}, ParseComplete
		}
		if buf[0] == 'G' {
			return Motion{Kind: MotionGotoLastLine}, ParseComplete
		}
		if buf[0] == 'g' {
			return Motion{}, ParsePending
		}
		if _, ok := findMotions[buf[0]]; ok {
			return Motion{}, ParsePending
		}
		if allowTextObject && (buf[0] == 'i' || buf[0] == 'a') {
			return Motion{}, ParsePending
		}
	case 2:
		if buf[0] == 'g' && buf[1] == 'g' {
			return Motion{Kind: MotionGotoFirstLine}, ParseComplete
		}
		if kind, ok := findMotions[buf[0]]; ok {
			return Motion{Kind: kind, Char: buf[1]}, ParseComplete
		}
		if allowTextObject && (buf[0] == 'i' || buf[0] == 'a') {
			if m, ok := textObject(buf[0], buf[1]); ok {
				return m, ParseComplete
			}
		}
	}
	return Motion{}, ParseInvalid
}

func isMarkName(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

var modeEntries = map[rune]EnterKind{
	'i': EnterInsert,
	'a': EnterInsertAfter,
	'I': EnterInsertLineStart,
	'A': EnterInsertLineEnd,
	'o': EnterOpenBelow,
	'O': EnterOpenAbove,
	'v': EnterVisual,
	'V': EnterVisualLine,
	'R': EnterReplace,
	':': EnterCommandLine,
	'/': EnterSearchForward,
	'?': EnterSearchBackward,
}

var standaloneActions = map[rune]Action{
	'x': ActionDeleteChar,
	'X': ActionDeleteCharBack,
	'p': ActionPasteAfter,
	'P': ActionPasteBefore,
	'u': ActionUndo,
	'.': ActionRepeat,
	'J': ActionJoinLines,
	'~': ActionToggleCase,
	'G': ActionGotoLine,
}
