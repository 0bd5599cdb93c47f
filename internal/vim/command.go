package vim

// CommandKind classifies a fully parsed normal-mode command.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdMotion         // bare motion, moves the cursor
	CmdOperatorMotion // operator applied over a motion or text object
	CmdOperatorLine   // doubled line shortcut: dd, yy, cc
	CmdEnterMode      // mode transition: i I a A o O v V R : / ?
	CmdAction         // standalone edit or jump
)

// EnterKind selects how a mode-entry command positions the cursor or
// which command-line variant it opens.
type EnterKind int

const (
	EnterNone EnterKind = iota
	EnterInsert
	EnterInsertAfter
	EnterInsertLineStart
	EnterInsertLineEnd
	EnterOpenBelow
	EnterOpenAbove
	EnterVisual
	EnterVisualLine
	EnterReplace
	EnterCommandLine
	EnterSearchForward
	EnterSearchBackward
)

// Action enumerates the standalone commands.
type Action int

const (
	ActionNone Action = iota
	ActionDeleteChar     // x
	ActionDeleteCharBack // X
	ActionPasteAfter     // p
	ActionPasteBefore    // P
	ActionUndo           // u
	ActionRepeat         // .
	ActionJoinLines      // J
	ActionToggleCase     // ~
	ActionIndentLine     // >>
	ActionOutdentLine    // <<
	ActionGotoFirstLine  // gg
	ActionGotoLine       // G
	ActionSetMark        // m{a-z}
	ActionGotoMark       // '{a-z} and `{a-z}
	ActionReplaceChar    // r{char}
	ActionWriteQuit      // ZZ
	ActionQuit           // ZQ
)

// Command is one fully parsed keystroke sequence, count excluded. The
// count is accumulated separately before any command characters arrive.
type Command struct {
	Kind   CommandKind
	Motion Motion
	Op     Operator
	Action Action
	Enter  EnterKind
	Char   rune // mark name or replacement character
}
