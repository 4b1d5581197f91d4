package mevcli

// handleEscape runs the input byte through the escape/CSI recognizer.
// It returns true if the byte was consumed as (part of) an escape
// sequence and must not reach normal handling.
//
// The machine recognizes ESC [ A/B/C/D (cursor keys) and the ESC-b /
// ESC-f pair some terminals send for word-left/word-right. Anything else
// after an ESC is swallowed and discarded. Parameterized CSI sequences
// (e.g. ESC [ 3 ~) are not consumed as a unit: the first parameter byte
// resets the machine, and the sequence's final byte then arrives as
// ordinary input. Known limitation.
func (s *Session) handleEscape(b byte) bool {
	switch s.esc {
	case escIdle:
		if b == 0x1b {
			s.esc = escSawEscape
			return true
		}
		return false

	case escSawEscape:
		s.esc = escIdle
		switch b {
		case '[':
			s.esc = escSawCSI
		case 'b':
			s.moveWordLeft()
		case 'f':
			s.moveWordRight()
		default:
			// Escape-somethingweird; drop the escaped byte.
		}
		return true

	default: // escSawCSI
		switch b {
		case 'A':
			s.historyUp()
		case 'B':
			s.historyDown()
		case 'C':
			s.moveRight()
		case 'D':
			s.moveLeft()
		}
		s.esc = escIdle
		return true
	}
}
