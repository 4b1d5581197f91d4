// Package mevcli is a small interactive command line for hosts that deliver
// input as a raw byte stream: SSH session channels, serial consoles, raw
// TTYs. It provides ANSI line editing (cursor movement, word jumps, kill
// keys), optional command history packed into a fixed byte arena, and
// dispatch of submitted lines against an application-supplied command table.
//
// The engine is fully synchronous: the host calls InputByte once per
// received byte, and any terminal output happens through the output
// callback before InputByte returns. All working storage is allocated up
// front by New; nothing grows afterwards. A Session is not safe for
// concurrent use.
package mevcli

import "io"

const (
	// DefaultMaxLineLen is the line capacity used when Config.MaxLineLen
	// is zero. Matches a classic 80-column terminal minus a short prompt.
	DefaultMaxLineLen = 78

	// DefaultMaxArgs is the argument cap used when Config.MaxArgs is zero.
	DefaultMaxArgs = 8

	// DefaultHistoryEntries is the entry-count cap used when history is
	// enabled but Config.HistoryEntries is zero.
	DefaultHistoryEntries = 16

	// DefaultPrompt is drawn when no Config.Prompt is supplied.
	DefaultPrompt = "> "
)

const bellByte = 7

// Handler is a command callback. It receives the descriptor's opaque value
// and the tokenized arguments (the command name itself is not included, so
// one argument means len(args) == 1). Handlers run on the same call stack
// as InputByte and must not feed bytes back into the session.
type Handler func(opaque any, args []string)

// Command describes one entry in the command table. The table is read-only
// and accessed in place, so it must stay valid for the session's lifetime.
type Command struct {
	// Name is matched case-insensitively against the first token of a
	// submitted line. Full-length match only, first match in table order
	// wins.
	Name string

	// Help is printed verbatim after Name in help listings; include any
	// leading whitespace or tabs needed to line columns up.
	Help string

	// Opaque is passed to Fn on every invocation, so one handler can
	// serve several commands.
	Opaque any

	// Fn is invoked when the command matches and the argument count is
	// acceptable.
	Fn Handler

	// NArgs is the exact number of expected arguments, or -1 for a
	// variable number. Either way the count is capped at Config.MaxArgs.
	NArgs int
}

// Config carries the initialization-time knobs for a Session. The zero
// value is usable: defaults apply and history is disabled.
type Config struct {
	// MaxLineLen is the line capacity in bytes, beyond the prompt.
	MaxLineLen int

	// MaxArgs caps how many argument tokens are collected per dispatch.
	// Tokens beyond the cap are dropped, not rejected.
	MaxArgs int

	// Prompt returns the prompt text. It is called every time the prompt
	// is redrawn, so it may change between commands (a handler that
	// changes it takes effect from the next prompt onward).
	Prompt func() string

	// HistoryBytes is the byte budget for the history arena. Zero
	// disables history entirely (up/down become no-ops).
	HistoryBytes int

	// HistoryEntries caps the number of stored history lines.
	HistoryEntries int

	// ExtraHelp, if non-empty, is printed after every help listing.
	ExtraHelp string

	// Assert is called when an internal invariant check fails. Nil means
	// the check is a no-op. This should never fire through correct use
	// of the public entry points.
	Assert func(msg string)
}

type escState int

const (
	escIdle escState = iota
	escSawEscape
	escSawCSI
)

// Session holds all state for one interactive command line: the
// in-progress line buffer, cursor, escape recognizer state and (if
// enabled) history. Create one with New.
type Session struct {
	out      func(byte)
	commands []Command

	promptFn  func() string
	extraHelp string
	assert    func(msg string)

	maxLineLen int
	maxArgs    int

	promptLen int // width of the last-drawn prompt, in columns
	lineLen   int // bytes of line currently valid
	cursor    int // 0 <= cursor <= lineLen
	esc       escState

	line []byte   // cap maxLineLen+1
	args []string // dispatch scratch, rebuilt per submitted line

	hist *history // nil when history is disabled
}

// New binds the command table and output callback, zeroes the editing
// state and draws the initial prompt. cmds is accessed in place and must
// remain valid for the life of the session.
func New(cfg Config, cmds []Command, out func(byte)) *Session {
	if cfg.MaxLineLen <= 0 {
		cfg.MaxLineLen = DefaultMaxLineLen
	}
	if cfg.MaxArgs <= 0 {
		cfg.MaxArgs = DefaultMaxArgs
	}
	promptFn := cfg.Prompt
	if promptFn == nil {
		promptFn = func() string { return DefaultPrompt }
	}

	s := &Session{
		out:        out,
		commands:   cmds,
		promptFn:   promptFn,
		extraHelp:  cfg.ExtraHelp,
		assert:     cfg.Assert,
		maxLineLen: cfg.MaxLineLen,
		maxArgs:    cfg.MaxArgs,
		line:       make([]byte, cfg.MaxLineLen+1),
		args:       make([]string, 0, cfg.MaxArgs),
	}
	if cfg.HistoryBytes > 0 {
		entries := cfg.HistoryEntries
		if entries <= 0 {
			entries = DefaultHistoryEntries
		}
		s.hist = newHistory(cfg.HistoryBytes, entries, cfg.MaxLineLen)
	}

	s.drawPrompt()
	return s
}

// InputByte feeds one input byte to the session. It is the sole
// steady-state entry point: it may emit bytes through the output callback
// and, on Enter, invoke at most one command handler before returning.
//
// Emacs/bash-style bindings: Enter submits, DEL deletes left, ^A/^E
// home/end, ^U cut to start, ^W cut word, ^K cut to end, arrows and
// Alt-b/Alt-f per the escape recognizer. Tab is reserved. Other control
// bytes and bytes above 0x7E are ignored.
func (s *Session) InputByte(b byte) {
	// Escape handling first: while a sequence is being tracked, every
	// byte belongs to it.
	if s.handleEscape(b) {
		return
	}

	switch b {
	case '\t':
		// Reserved for completion.

	case '\r':
		s.processLine()

	case 0x7f: // DEL
		s.deleteLeft()

	case 0x01: // ^A
		s.moveHome()

	case 0x05: // ^E
		s.moveEnd()

	case 0x15: // ^U
		s.cutToStart()

	case 0x17: // ^W
		s.cutWord()

	case 0x0b: // ^K
		s.cutToEnd()

	default:
		if b < ' ' || b > '~' {
			return
		}
		s.insert(b)
	}
}

func (s *Session) fail(msg string) {
	if s.assert != nil {
		s.assert(msg)
	}
}

// OutputTo adapts an io.Writer into the byte-at-a-time output callback
// New expects. Write errors are dropped; a host that cares should track
// them on its own writer.
func OutputTo(w io.Writer) func(byte) {
	buf := make([]byte, 1)
	return func(b byte) {
		buf[0] = b
		w.Write(buf) //nolint:errcheck
	}
}
