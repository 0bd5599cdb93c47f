package vim

import "unicode"

// Motion resolution works on a rune snapshot of the buffer. Every
// function takes and returns rune offsets; none of them mutate anything.
// A motion that cannot move returns its input offset unchanged, which the
// caller treats as failure when it happens on the first step.

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// lineBounds returns the start of the line containing off, the offset of
// its terminating newline (or buffer end), and the exclusive end of the
// line including the trailing newline when present.
func lineBounds(text []rune, off int) (start, contentEnd, end int) {
	n := len(text)
	if off > n {
		off = n
	}
	start = off
	for start > 0 && text[start-1] != '\n' {
		start--
	}
	contentEnd = off
	for contentEnd < n && text[contentEnd] != '\n' {
		contentEnd++
	}
	end = contentEnd
	if end < n {
		end++
	}
	return start, contentEnd, end
}

// lineStarts indexes the start offset of every line. An empty buffer has
// a single empty line.
func lineStarts(text []rune) []int {
	starts := []int{0}
	for i, r := range text {
		if r == '\n' && i+1 <= len(text) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func lineIsBlank(text []rune, start int) bool {
	for i := start; i < len(text) && text[i] != '\n'; i++ {
		if !unicode.IsSpace(text[i]) {
			return false
		}
	}
	return true
}

func moveLeft(text []rune, off int) int {
	if off > 0 && text[off-1] != '\n' {
		return off - 1
	}
	return off
}

func moveRight(text []rune, off int) int {
	if off < len(text) && text[off] != '\n' && off+1 < len(text) && text[off+1] != '\n' {
		return off + 1
	}
	return off
}

// moveVert moves one line up (delta -1) or down (+1), preserving the
// column clamped to the target line's last character.
func moveVert(text []rune, off, delta int) int {
	start, _, end := lineBounds(text, off)
	col := off - start
	var nstart int
	if delta < 0 {
		if start == 0 {
			return off
		}
		nstart, _, _ = lineBounds(text, start-1)
	} else {
		if end >= len(text) || end == start {
			return off
		}
		nstart = end
	}
	_, nend, _ := lineBounds(text, nstart)
	nlen := nend - nstart
	if col > nlen-1 {
		col = nlen - 1
	}
	if col < 0 {
		col = 0
	}
	return nstart + col
}

// wordForward skips the remainder of the current word then any separator
// run, landing on the next word start or buffer end.
func wordForward(text []rune, off int, big bool) int {
	n := len(text)
	i := off
	if i >= n {
		return n
	}
	if big {
		for i < n && !unicode.IsSpace(text[i]) {
			i++
		}
		for i < n && unicode.IsSpace(text[i]) {
			i++
		}
	} else {
		for i < n && isWordRune(text[i]) {
			i++
		}
		for i < n && !isWordRune(text[i]) {
			i++
		}
	}
	return i
}

// wordBackward skips separators behind the cursor then rewinds to the
// start of the previous word.
func wordBackward(text []rune, off int, big bool) int {
	i := off
	if i > 0 {
		i--
	}
	if big {
		for i > 0 && unicode.IsSpace(text[i]) {
			i--
		}
		for i > 0 && !unicode.IsSpace(text[i-1]) {
			i--
		}
	} else {
		for i > 0 && !isWordRune(text[i]) {
			i--
		}
		for i > 0 && isWordRune(text[i-1]) {
			i--
		}
	}
	return i
}

// wordEnd lands on the last character of the current word, or of the next
// word when the cursor already sits on a word's final character.
func wordEnd(text []rune, off int, big bool) int {
	n := len(text)
	if n == 0 {
		return off
	}
	isw := isWordRune
	if big {
		isw = func(r rune) bool { return !unicode.IsSpace(r) }
	}
	i := off
	if i < n && i+1 < n && isw(text[i]) && isw(text[i+1]) {
		for i+1 < n && isw(text[i+1]) {
			i++
		}
		return i
	}
	i++
	for i < n && !isw(text[i]) {
		i++
	}
	if i >= n {
		return off
	}
	for i+1 < n && isw(text[i+1]) {
		i++
	}
	return i
}

func lineStart(text []rune, off int) int {
	start, _, _ := lineBounds(text, off)
	return start
}

func firstNonBlank(text []rune, off int) int {
	start, contentEnd, _ := lineBounds(text, off)
	i := start
	for i < contentEnd && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if i == contentEnd {
		// All-blank line: fall back to the line start.
		return start
	}
	return i
}

func lineEnd(text []rune, off int) int {
	start, contentEnd, _ := lineBounds(text, off)
	if contentEnd == start {
		return start
	}
	return contentEnd - 1
}

// paragraphMove jumps to the start of the next (or previous) non-blank
// line beyond the nearest blank-line boundary.
func paragraphMove(text []rune, off int, forward bool) int {
	starts := lineStarts(text)
	li := 0
	for i, s := range starts {
		if s <= off {
			li = i
		}
	}
	if forward {
		j := li + 1
		for j < len(starts) && !lineIsBlank(text, starts[j]) {
			j++
		}
		for j < len(starts) && lineIsBlank(text, starts[j]) {
			j++
		}
		if j >= len(starts) {
			return len(text)
		}
		return starts[j]
	}
	j := li - 1
	for j >= 0 && !lineIsBlank(text, starts[j]) {
		j--
	}
	for j >= 0 && lineIsBlank(text, starts[j]) {
		j--
	}
	if j < 0 {
		return 0
	}
	return starts[j]
}

// sentenceStarts returns the offsets where sentences begin: the start of
// the buffer plus the first non-space character after each terminator
// (./!/?) that is followed by whitespace.
func sentenceStarts(text []rune) []int {
	starts := []int{0}
	n := len(text)
	for i := 0; i < n-1; i++ {
		if (text[i] == '.' || text[i] == '!' || text[i] == '?') && unicode.IsSpace(text[i+1]) {
			j := i + 1
			for j < n && unicode.IsSpace(text[j]) {
				j++
			}
			if j < n {
				starts = append(starts, j)
			}
		}
	}
	return starts
}

func sentenceMove(text []rune, off int, forward bool) int {
	starts := sentenceStarts(text)
	if forward {
		for _, s := range starts {
			if s > off {
				return s
			}
		}
		return len(text)
	}
	prev := 0
	for _, s := range starts {
		if s < off {
			prev = s
		}
	}
	return prev
}

// searchText finds the next occurrence of a literal pattern, wrapping
// around the buffer ends. It reports failure when the pattern is absent.
func searchText(text []rune, pattern []rune, from int, forward bool) (int, bool) {
	n, m := len(text), len(pattern)
	if m == 0 || m > n {
		return 0, false
	}
	matchAt := func(i int) bool {
		if i < 0 || i+m > n {
			return false
		}
		for k := 0; k < m; k++ {
			if text[i+k] != pattern[k] {
				return false
			}
		}
		return true
	}
	if forward {
		for step := 1; step <= n; step++ {
			i := (from + step) % n
			if matchAt(i) {
				return i, true
			}
		}
	} else {
		for step := 1; step <= n; step++ {
			i := ((from-step)%n + n) % n
			if matchAt(i) {
				return i, true
			}
		}
	}
	return 0, false
}

// findChar locates ch on the current line only. The till variants stop
// one character short of the target.
func findChar(text []rune, off int, ch rune, forward, till bool) (int, bool) {
	start, contentEnd, _ := lineBounds(text, off)
	if forward {
		for i := off + 1; i < contentEnd; i++ {
			if text[i] == ch {
				if till {
					return i - 1, true
				}
				return i, true
			}
		}
		return 0, false
	}
	for i := off - 1; i >= start; i-- {
		if text[i] == ch {
			if till {
				return i + 1, true
			}
			return i, true
		}
	}
	return 0, false
}
