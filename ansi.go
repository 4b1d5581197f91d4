package mevcli

import "strconv"

// Terminal output primitives. Everything the engine draws is built from
// three operations: raw byte emission, absolute column positioning and
// erase-to-end-of-line. Full-line clears are never used, to keep the byte
// count and flicker down.

func (s *Session) putch(c byte) {
	s.out(c)
}

func (s *Session) putstr(str string) int {
	for i := 0; i < len(str); i++ {
		s.out(str[i])
	}
	return len(str)
}

func (s *Session) newline() {
	s.putstr("\r\n")
}

// drawPrompt emits the prompt and records its width. Prompts may be
// dynamic, so the width is recomputed on every draw.
func (s *Session) drawPrompt() {
	s.promptLen = s.putstr(s.promptFn())
}

// eraseRight clears from the cursor to the end of the displayed line.
func (s *Session) eraseRight() {
	s.putstr("\x1b[0K")
}

// cursorCol moves the terminal cursor to absolute column x (0-based).
// Column 0 takes the carriage-return shortcut; columns above 999 are
// silently dropped.
func (s *Session) cursorCol(x int) {
	if x > 999 {
		return
	}
	if x == 0 {
		s.putch('\r')
		return
	}
	// Terminal columns are 1-indexed.
	s.putstr("\x1b[")
	s.putstr(strconv.Itoa(x + 1))
	s.putch('G')
}
