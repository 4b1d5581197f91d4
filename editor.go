package mevcli

// In-place line editing. The line buffer never reallocates: insertion and
// deletion shift the tail of the line within the fixed buffer, and each
// operation repaints just enough of the display to stay consistent.

// insert places one byte at the cursor. Appending at the end of the line
// is the common case and echoes a single byte; a mid-line insert shifts
// the tail right and repaints from the insertion point.
func (s *Session) insert(b byte) {
	if s.lineLen >= s.maxLineLen {
		// No room.
		s.putch(bellByte)
		return
	}

	if s.cursor == s.lineLen {
		s.line[s.lineLen] = b
		s.lineLen++
		s.cursor++
		s.putch(b)
		return
	}

	// Open a gap at the cursor. copy has memmove semantics, so the
	// overlapping shift is safe.
	copy(s.line[s.cursor+1:s.lineLen+1], s.line[s.cursor:s.lineLen])
	s.line[s.cursor] = b
	s.cursor++
	s.lineLen++

	s.cursorCol(s.promptLen + s.cursor - 1)
	s.eraseRight() // not strictly needed, everything right gets redrawn
	for i := s.cursor - 1; i < s.lineLen; i++ {
		s.putch(s.line[i])
	}
	s.cursorCol(s.promptLen + s.cursor)
}

// cutTo removes the bytes in [pos, cursor). pos might be one char left,
// a word left, or zero. When the cursor is at the end of the line and
// exactly one byte goes, the classic backspace-space-backspace rubout is
// enough; otherwise the tail shifts down and the display is repainted
// from pos.
func (s *Session) cutTo(pos int) {
	if pos > s.cursor {
		s.fail("cutTo: target beyond cursor")
		pos = s.cursor
	}
	distance := s.cursor - pos

	if s.cursor == s.lineLen {
		s.cursor = pos
		s.lineLen = pos
		if distance == 1 {
			s.putstr("\b \b")
			return
		}
	} else {
		copy(s.line[pos:], s.line[s.cursor:s.lineLen])
		s.lineLen -= distance
		s.cursor = pos
	}

	// Move cursor to pos, erase rightward, redraw the tail, put the
	// cursor back.
	s.cursorCol(s.promptLen + s.cursor)
	s.eraseRight()
	for i := s.cursor; i < s.lineLen; i++ {
		s.putch(s.line[i])
	}
	s.cursorCol(s.promptLen + s.cursor)
}

// deleteLeft is the regular user-hits-delete: take one byte off at the
// cursor, if there is one.
func (s *Session) deleteLeft() {
	if s.cursor > 0 {
		s.cutTo(s.cursor - 1)
	}
}

// cutToStart cuts from the cursor leftwards to the beginning of the line.
func (s *Session) cutToStart() {
	s.cutTo(0)
}

// cutWord cuts from the cursor leftwards one word.
func (s *Session) cutWord() {
	s.cutTo(s.searchWordLeft())
}

// cutToEnd truncates the line at the cursor. Nothing remains to the
// right, so erasing the display is the whole repaint.
func (s *Session) cutToEnd() {
	if s.cursor < s.lineLen {
		s.eraseRight()
		s.lineLen = s.cursor
	}
}

func (s *Session) moveRight() {
	if s.cursor < s.lineLen {
		s.cursor++
		s.cursorCol(s.promptLen + s.cursor)
	}
}

func (s *Session) moveLeft() {
	if s.cursor > 0 {
		s.cursor--
		s.cursorCol(s.promptLen + s.cursor)
	}
}

func (s *Session) moveHome() {
	if s.cursor > 0 {
		s.cursor = 0
		s.cursorCol(s.promptLen)
	}
}

func (s *Session) moveEnd() {
	if s.cursor < s.lineLen {
		s.cursor = s.lineLen
		s.cursorCol(s.promptLen + s.cursor)
	}
}

// searchWordLeft scans leftwards from the cursor for a whitespace
// boundary and returns the index just right of it. Whitespace
// immediately left of the cursor is skipped first, so repeated word-left
// steps make progress. Any byte <= 0x20 counts as whitespace. Returns 0
// if no boundary is found.
func (s *Session) searchWordLeft() int {
	sawWord := false
	for i := s.cursor; i > 0; i-- {
		if s.line[i-1] <= ' ' {
			if sawWord {
				return i
			}
		} else {
			sawWord = true
		}
	}
	return 0
}

// searchWordRight is the mirror: scan rightwards, skipping any
// whitespace under the cursor first, and return the index of the next
// whitespace byte after a word, or lineLen if there is none.
func (s *Session) searchWordRight() int {
	sawWord := false
	for i := s.cursor; i < s.lineLen; i++ {
		if s.line[i] <= ' ' {
			if sawWord {
				return i
			}
		} else {
			sawWord = true
		}
	}
	return s.lineLen
}

func (s *Session) moveWordLeft() {
	s.cursor = s.searchWordLeft()
	s.cursorCol(s.promptLen + s.cursor)
}

func (s *Session) moveWordRight() {
	s.cursor = s.searchWordRight()
	s.cursorCol(s.promptLen + s.cursor)
}
