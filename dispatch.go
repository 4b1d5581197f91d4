package mevcli

// Line submission: trim, record in history, match the first token against
// the command table, tokenize the rest into arguments and invoke the
// handler. Every outcome (dispatched, help shown, blank line) ends with
// the line reset and a fresh prompt.

// processLine handles Enter.
func (s *Session) processLine() {
	line := s.line[:s.lineLen]
	s.newline()

	// Submitting ends any in-flight history browse; the browsed entry,
	// edited or not, is now the live line.
	if s.hist != nil {
		s.hist.browse = -1
	}

	// Skip leading whitespace to find the command.
	start := -1
	for i := 0; i < len(line); i++ {
		if line[i] > ' ' {
			start = i
			break
		}
	}
	if start == -1 {
		// No actual command on the line.
		s.reprompt()
		return
	}
	trimmed := line[start:]

	// History gets the full trimmed line, before tokenization.
	if s.hist != nil {
		s.hist.append(trimmed)
	}

	cmdEnd := len(trimmed)
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] <= ' ' {
			cmdEnd = i
			break
		}
	}
	token := trimmed[:cmdEnd]

	var cmd *Command
	for i := range s.commands {
		// TODO: accept a short but unambiguous prefix for convenience.
		if tokenMatches(token, s.commands[i].Name) {
			cmd = &s.commands[i]
			break
		}
	}
	if cmd == nil {
		s.help("Unknown command")
		s.reprompt()
		return
	}

	// Collect arguments: maximal runs of bytes > 0x20 after the command
	// token. Runs beyond maxArgs are dropped.
	args := s.args[:0]
	i := cmdEnd
	for i < len(trimmed) && len(args) < s.maxArgs {
		for i < len(trimmed) && trimmed[i] <= ' ' {
			i++
		}
		if i >= len(trimmed) {
			break
		}
		j := i
		for j < len(trimmed) && trimmed[j] > ' ' {
			j++
		}
		args = append(args, string(trimmed[i:j]))
		i = j
	}

	if cmd.NArgs != -1 && cmd.NArgs != len(args) {
		s.help("Command args are incorrect")
		s.reprompt()
		return
	}

	cmd.Fn(cmd.Opaque, args)
	s.reprompt()
}

// reprompt resets the line state and draws a fresh prompt, recomputing
// the prompt width (commands may have changed the prompt text).
func (s *Session) reprompt() {
	s.cursor = 0
	s.lineLen = 0
	s.drawPrompt()
}

// help renders the command listing, prefixed with why it appeared.
func (s *Session) help(why string) {
	s.newline()
	s.putstr(why)
	s.putstr(".  Commands are:\r\n\r\n")
	for i := range s.commands {
		s.putch('\t')
		s.putstr(s.commands[i].Name)
		s.putstr(s.commands[i].Help)
		s.newline()
	}
	s.newline()
	if s.extraHelp != "" {
		s.putstr(s.extraHelp)
	}
}

func lowerAlpha(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		c |= 0x20
	}
	return c
}

// tokenMatches is a case-insensitive full-length comparison; no prefix
// matching.
func tokenMatches(token []byte, name string) bool {
	if len(token) != len(name) {
		return false
	}
	for i := 0; i < len(name); i++ {
		if lowerAlpha(token[i]) != lowerAlpha(name[i]) {
			return false
		}
	}
	return true
}
