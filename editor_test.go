package mevcli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendOnlyInsertions(t *testing.T) {
	s, rec := newTestSession(Config{}, nil)

	feed(s, "hello world")

	assert.Equal(t, "hello world", lineOf(s))
	assert.Equal(t, s.lineLen, s.cursor)
	// Appends echo exactly the inserted bytes, nothing else.
	assert.Equal(t, "hello world", rec.String())
}

func TestMidLineInsertShiftsTail(t *testing.T) {
	s, rec := newTestSession(Config{Prompt: func() string { return "> " }}, nil)

	feed(s, "hllo")
	feed(s, "\x01")    // ^A home
	feed(s, "\x1b[C")  // right
	rec.Reset()
	feed(s, "e")

	assert.Equal(t, "hello", lineOf(s))
	assert.Equal(t, 2, s.cursor)
	// Repaint: position to the insert column, erase right, redraw the
	// tail, reposition. Prompt is 2 wide, insert at line index 1 ->
	// column 3 (1-indexed escape says 4).
	assert.Equal(t, "\x1b[4G\x1b[0Kello\x1b[5G", rec.String())
}

func TestInsertThenDeleteLeftIsIdempotent(t *testing.T) {
	for pos := 0; pos <= 5; pos++ {
		s, _ := newTestSession(Config{}, nil)
		feed(s, "abcde")
		s.cursor = pos

		s.insert('x')
		s.deleteLeft()

		assert.Equal(t, "abcde", lineOf(s), "cursor position %d", pos)
		assert.Equal(t, pos, s.cursor, "cursor position %d", pos)
	}
}

func TestInsertAtFullLineBeepsOnly(t *testing.T) {
	s, rec := newTestSession(Config{MaxLineLen: 4}, nil)
	feed(s, "abcd")
	rec.Reset()

	feed(s, "e")

	assert.Equal(t, "abcd", lineOf(s))
	assert.Equal(t, 4, s.cursor)
	assert.Equal(t, string(rune(bellByte)), rec.String())
}

func TestDeleteLeftAtEndUsesRubout(t *testing.T) {
	s, rec := newTestSession(Config{}, nil)
	feed(s, "abc")
	rec.Reset()

	s.InputByte(0x7f)

	assert.Equal(t, "ab", lineOf(s))
	assert.Equal(t, "\b \b", rec.String())
}

func TestDeleteLeftAtStartIsNoop(t *testing.T) {
	s, rec := newTestSession(Config{}, nil)
	feed(s, "abc")
	feed(s, "\x01") // home
	rec.Reset()

	s.InputByte(0x7f)

	assert.Equal(t, "abc", lineOf(s))
	assert.Equal(t, "", rec.String())
}

func TestDeleteLeftMidLineRepaints(t *testing.T) {
	s, _ := newTestSession(Config{}, nil)
	feed(s, "abcd")
	feed(s, "\x1b[D") // left

	s.InputByte(0x7f)

	assert.Equal(t, "abd", lineOf(s))
	assert.Equal(t, 2, s.cursor)
}

func TestCutToStart(t *testing.T) {
	s, _ := newTestSession(Config{}, nil)
	feed(s, "one two three")
	feed(s, "\x1bb") // word left, cursor at start of "three"

	s.InputByte(0x15) // ^U

	assert.Equal(t, "three", lineOf(s))
	assert.Equal(t, 0, s.cursor)
}

func TestCutWord(t *testing.T) {
	s, _ := newTestSession(Config{}, nil)
	feed(s, "one two three")

	s.InputByte(0x17) // ^W

	assert.Equal(t, "one two ", lineOf(s))
	assert.Equal(t, 8, s.cursor)

	s.InputByte(0x17)

	assert.Equal(t, "one ", lineOf(s))
}

func TestCutToEnd(t *testing.T) {
	s, rec := newTestSession(Config{}, nil)
	feed(s, "one two")
	feed(s, "\x1bb") // start of "two"
	rec.Reset()

	s.InputByte(0x0b) // ^K

	assert.Equal(t, "one ", lineOf(s))
	assert.Equal(t, 4, s.cursor)
	assert.Equal(t, "\x1b[0K", rec.String())
}

func TestCutToEndAtEndIsNoop(t *testing.T) {
	s, rec := newTestSession(Config{}, nil)
	feed(s, "one")
	rec.Reset()

	s.InputByte(0x0b)

	assert.Equal(t, "one", lineOf(s))
	assert.Equal(t, "", rec.String())
}

func TestHomeAndEnd(t *testing.T) {
	s, rec := newTestSession(Config{Prompt: func() string { return "> " }}, nil)
	feed(s, "abc")
	rec.Reset()

	s.InputByte(0x01) // ^A
	assert.Equal(t, 0, s.cursor)
	assert.Equal(t, "\x1b[3G", rec.String())

	rec.Reset()
	s.InputByte(0x05) // ^E
	assert.Equal(t, 3, s.cursor)
	assert.Equal(t, "\x1b[6G", rec.String())
}

func TestMotionsClampAtBounds(t *testing.T) {
	s, rec := newTestSession(Config{}, nil)
	feed(s, "ab")
	rec.Reset()

	feed(s, "\x1b[C") // right at end of line
	assert.Equal(t, 2, s.cursor)
	assert.Equal(t, "", rec.String())

	feed(s, "\x01")
	rec.Reset()
	feed(s, "\x1b[D") // left at start
	assert.Equal(t, 0, s.cursor)
	assert.Equal(t, "", rec.String())
}

func TestWordBoundarySearch(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		cursor int
		left   int
		right  int
	}{
		{"mid word", "one two three", 5, 4, 7},
		{"at space after word", "one two three", 7, 4, 13},
		{"start of line", "one two", 0, 0, 3},
		{"end of line", "one two", 7, 4, 7},
		{"all spaces left", "   x", 3, 0, 4},
		{"no whitespace", "abcdef", 3, 0, 6},
		{"trailing spaces", "ab  ", 4, 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(Config{}, nil)
			feed(s, tt.line)
			s.cursor = tt.cursor

			assert.Equal(t, tt.left, s.searchWordLeft(), "left")
			assert.Equal(t, tt.right, s.searchWordRight(), "right")
		})
	}
}

func TestWordBoundarySymmetry(t *testing.T) {
	line := "alpha beta  gamma"
	for cursor := 0; cursor <= len(line); cursor++ {
		s, _ := newTestSession(Config{}, nil)
		feed(s, line)
		s.cursor = cursor

		left := s.searchWordLeft()
		s.cursor = left
		back := s.searchWordRight()

		assert.GreaterOrEqual(t, back, left, "cursor %d", cursor)
		require.LessOrEqual(t, left, cursor, "cursor %d", cursor)
	}
}

func TestCursorColShortcuts(t *testing.T) {
	s, rec := newTestSession(Config{}, nil)

	s.cursorCol(0)
	assert.Equal(t, "\r", rec.String())

	rec.Reset()
	s.cursorCol(11)
	assert.Equal(t, "\x1b[12G", rec.String())

	rec.Reset()
	s.cursorCol(1000) // beyond what the encoding supports
	assert.Equal(t, "", rec.String())
}

func TestLongLineEditingKeepsBufferConsistent(t *testing.T) {
	s, _ := newTestSession(Config{MaxLineLen: 20}, nil)

	feed(s, strings.Repeat("ab ", 6)) // 18 bytes
	feed(s, "\x01")                   // home
	feed(s, "xy")                     // insert at front

	assert.Equal(t, "xy"+strings.Repeat("ab ", 6), lineOf(s))
	assert.Equal(t, 2, s.cursor)
	assert.Equal(t, 20, s.lineLen)
}
