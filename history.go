package mevcli

// Command history lives in a fixed byte arena with a parallel length
// table: entry 0 starts at arena offset 0 and is the newest, older
// entries follow contiguously. Each stored length includes one trailing
// delimiter byte. Appending shifts the surviving entries up to make room
// at offset 0, dropping the oldest entries that no longer fit.
type history struct {
	arena  []byte
	lens   []int // per-entry byte length, delimiter included
	count  int   // valid entries
	browse int   // browse index; -1 = editing live line

	backup    []byte // in-progress line saved while browsing
	backupLen int
	backupCur int
}

func newHistory(arenaBytes, maxEntries, maxLineLen int) *history {
	return &history{
		arena:  make([]byte, arenaBytes),
		lens:   make([]int, maxEntries),
		browse: -1,
		backup: make([]byte, maxLineLen+1),
	}
}

// append stores line as the newest entry, evicting as many of the oldest
// entries as needed (but no more) to fit it within the arena and the
// entry-count cap. A line longer than the whole arena is not stored.
// Browse state resets to "not browsing".
func (h *history) append(line []byte) {
	h.browse = -1

	l := len(line) + 1
	if l > len(h.arena) {
		return
	}

	// Count the entries that survive: newest first, stopping at the
	// first one that would push the total past the arena or the
	// entry cap.
	keep, used := 0, 0
	for keep < h.count {
		if keep+1 >= len(h.lens) {
			break
		}
		if used+h.lens[keep]+l > len(h.arena) {
			break
		}
		used += h.lens[keep]
		keep++
	}

	// Shift survivors up by l. copy is overlap-safe, which matters
	// here: source and destination share the arena.
	copy(h.arena[l:l+used], h.arena[:used])
	copy(h.lens[1:keep+1], h.lens[:keep])

	copy(h.arena, line)
	h.arena[len(line)] = 0
	h.lens[0] = l
	h.count = keep + 1
}

// entry returns the stored bytes of entry i (0 = newest), without the
// trailing delimiter. The slice aliases the arena; callers copy.
func (h *history) entry(i int) []byte {
	off := 0
	for j := 0; j < i; j++ {
		off += h.lens[j]
	}
	return h.arena[off : off+h.lens[i]-1]
}

// historyUp steps to the next-older entry (Up arrow). On first use it
// snapshots the in-progress line so abandoning the browse can restore
// it. At the oldest entry, or with no history at all, it just beeps.
func (s *Session) historyUp() {
	h := s.hist
	if h == nil {
		return
	}
	if h.count == 0 || h.browse == h.count-1 {
		s.putch(bellByte)
		return
	}
	if h.browse == -1 {
		copy(h.backup, s.line[:s.lineLen])
		h.backupLen = s.lineLen
		h.backupCur = s.cursor
	}
	h.browse++
	s.setLine(h.entry(h.browse), h.lens[h.browse]-1)
}

// historyDown steps back toward newer entries (Down arrow). Below the
// newest entry the saved in-progress line comes back and browsing ends.
// Beeps if not browsing.
func (s *Session) historyDown() {
	h := s.hist
	if h == nil {
		return
	}
	if h.browse == -1 {
		s.putch(bellByte)
		return
	}
	if h.browse == 0 {
		h.browse = -1
		s.setLine(h.backup[:h.backupLen], h.backupCur)
		return
	}
	h.browse--
	s.setLine(h.entry(h.browse), h.lens[h.browse]-1)
}

// setLine replaces the live line with a copy of content (editing it
// never touches the stored entry) and redraws the whole line.
func (s *Session) setLine(content []byte, cursor int) {
	copy(s.line, content)
	s.lineLen = len(content)
	s.cursor = cursor

	s.cursorCol(s.promptLen)
	s.eraseRight()
	for i := 0; i < s.lineLen; i++ {
		s.putch(s.line[i])
	}
	if s.cursor != s.lineLen {
		s.cursorCol(s.promptLen + s.cursor)
	}
}
