package vim

// Operator is a pending edit action awaiting a motion or text object.
type Operator int

const (
	OpNone Operator = iota
	OpDelete
	OpChange
	OpYank
	OpIndent
	OpOutdent
	// OpFormat is reserved; no key binds it and applyOperator treats it
	// as a no-op.
	OpFormat
)

func (o Operator) String() string {
	switch o {
	case OpDelete:
		return "delete"
	case OpChange:
		return "change"
	case OpYank:
		return "yank"
	case OpIndent:
		return "indent"
	case OpOutdent:
		return "outdent"
	case OpFormat:
		return "format"
	default:
		return "none"
	}
}

// operatorKeys maps the operator keystrokes that accept a motion target.
// Indent and outdent exist only in their doubled line forms (>> and <<)
// and never take a motion.
var operatorKeys = map[rune]Operator{
	'd': OpDelete,
	'c': OpChange,
	'y': OpYank,
}
