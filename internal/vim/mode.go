// Package vim implements a modal, keystroke-driven editing engine in the
// style of vi. The engine owns mode state, command parsing, motion
// resolution and operator execution, while the text itself lives behind
// the Buffer interface supplied by the host.
package vim

// Mode identifies the current editing mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	ModeVisualLine
	ModeCommandLine
	ModeReplace
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeVisualLine:
		return "VISUAL LINE"
	case ModeCommandLine:
		return "COMMAND"
	case ModeReplace:
		return "REPLACE"
	default:
		return "UNKNOWN"
	}
}
