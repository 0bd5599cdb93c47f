package vim

// Modifiers is a bit set of modifier keys held during a keystroke.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
	ModShift
)

// Key is a single keystroke delivered by the host. Printable keys carry
// Rune; control keys carry a Name using the host's key naming ("esc",
// "enter", "backspace").
type Key struct {
	Rune rune
	Name string
	Mods Modifiers
}

// IsRune reports whether the key is a plain printable character.
func (k Key) IsRune() bool {
	return k.Name == "" && k.Rune != 0 && k.Mods&(ModCtrl|ModAlt) == 0
}

// isEscape covers both the escape key and the Ctrl+[ alias.
func (k Key) isEscape() bool {
	return k.Name == "esc" || (k.Mods&ModCtrl != 0 && k.Rune == '[')
}
