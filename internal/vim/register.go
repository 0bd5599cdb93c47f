package vim

import "strings"

// registerStore holds named text registers. The unnamed register '"'
// receives every delete and yank, register '0' shadows it, and register
// '1' additionally records whole-line deletes and yanks.
type registerStore struct {
	regs map[rune]string
}

func newRegisterStore() *registerStore {
	return &registerStore{regs: make(map[rune]string)}
}

func (s *registerStore) get(name rune) string {
	return s.regs[name]
}

// record stores deleted or yanked text. Linewise content always carries a
// trailing newline so paste can recognize it, even when the source was
// the final line of a buffer with no terminator.
func (s *registerStore) record(text string, linewise bool) {
	if linewise && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	s.regs['"'] = text
	s.regs['0'] = text
	if linewise {
		s.regs['1'] = text
	}
}

// registerLinewise reports whether register content represents whole
// lines, which changes how paste positions the insertion.
func registerLinewise(text string) bool {
	return strings.HasSuffix(text, "\n")
}
