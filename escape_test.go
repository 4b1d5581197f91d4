package mevcli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrowKeysMoveCursor(t *testing.T) {
	s, _ := newTestSession(Config{}, nil)
	feed(s, "abc")

	feed(s, "\x1b[D")
	assert.Equal(t, 2, s.cursor)

	feed(s, "\x1b[D")
	assert.Equal(t, 1, s.cursor)

	feed(s, "\x1b[C")
	assert.Equal(t, 2, s.cursor)
}

func TestAltBFJumpByWord(t *testing.T) {
	s, _ := newTestSession(Config{}, nil)
	feed(s, "one two three")

	feed(s, "\x1bb")
	assert.Equal(t, 8, s.cursor)

	feed(s, "\x1bb")
	assert.Equal(t, 4, s.cursor)

	feed(s, "\x1bf")
	assert.Equal(t, 7, s.cursor)
}

func TestEscapedByteIsDiscarded(t *testing.T) {
	s, _ := newTestSession(Config{}, nil)

	feed(s, "\x1bxy")

	// The x was swallowed with the escape; the y is ordinary input.
	assert.Equal(t, "y", lineOf(s))
	assert.Equal(t, escIdle, s.esc)
}

func TestEscapeBytesNeverInserted(t *testing.T) {
	s, _ := newTestSession(Config{}, nil)

	feed(s, "ab\x1b[Dc")

	assert.Equal(t, "acb", lineOf(s))
}

func TestUnknownCSIFinalDiscarded(t *testing.T) {
	s, _ := newTestSession(Config{}, nil)
	feed(s, "ab")

	feed(s, "\x1b[Z")

	assert.Equal(t, "ab", lineOf(s))
	assert.Equal(t, 2, s.cursor)
	assert.Equal(t, escIdle, s.esc)
}

func TestParameterizedCSIIsNotConsumedAsAUnit(t *testing.T) {
	// ESC [ 3 ~ (delete-right on many terminals) is beyond the
	// recognizer: the parameter byte resets it and the final byte is
	// then treated as ordinary input.
	s, _ := newTestSession(Config{}, nil)

	feed(s, "\x1b[3~")

	assert.Equal(t, "~", lineOf(s))
}
