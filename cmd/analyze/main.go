// analyze — mevclid log analyzer
// Usage: go run ./cmd/analyze [--top N] [--log-dir PATH]
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ── Types ──────────────────────────────────────────────────────────────────────

type eventEntry struct {
	TS    string `json:"ts"`
	Level string `json:"level"`
	Src   string `json:"src"`
	Msg   string `json:"msg"`
}

type counter map[string]int

func (c counter) topN(n int) []kv {
	kvs := make([]kv, 0, len(c))
	for k, v := range c {
		kvs = append(kvs, kv{k, v})
	}
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].V > kvs[j].V })
	if n > 0 && len(kvs) > n {
		kvs = kvs[:n]
	}
	return kvs
}

type kv struct {
	K string
	V int
}

// ── Loaders ────────────────────────────────────────────────────────────────────

func loadEvents(path string) ([]eventEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []eventEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var v eventEntry
		if err := json.Unmarshal([]byte(line), &v); err == nil {
			out = append(out, v)
		}
	}
	return out, sc.Err()
}

func loadSessions(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".log") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// sessionCommands pulls the command records out of one session log; each
// line looks like "[ts] prback [a b]".
func sessionCommands(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var cmds []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		content := line
		if idx := strings.Index(line, "] "); idx >= 0 {
			content = line[idx+2:]
		}
		if content != "" {
			cmds = append(cmds, content)
		}
	}
	return cmds
}

// ── Formatting ─────────────────────────────────────────────────────────────────

func printTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	sep := make([]string, len(headers))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	row2line := func(cells []string) string {
		parts := make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		return strings.Join(parts, "  ")
	}
	fmt.Println(row2line(headers))
	fmt.Println(strings.Join(sep, "  "))
	for _, row := range rows {
		fmt.Println(row2line(row))
	}
}

func section(title string) {
	fmt.Printf("\n%s\n%s\n", title, strings.Repeat("─", len(title)))
}

// ── Main ───────────────────────────────────────────────────────────────────────

func main() {
	topN := flag.Int("top", 20, "Number of top entries to show")
	logDir := flag.String("log-dir", "./mevclid_logs", "Path to mevclid log directory")
	flag.Parse()

	eventPath := filepath.Join(*logDir, "events.jsonl")
	sessionDir := filepath.Join(*logDir, "sessions")

	now := time.Now().UTC()
	fmt.Printf("\n%s\n", strings.Repeat("═", 62))
	fmt.Printf("  MEVCLID REPORT  —  %s UTC\n", now.Format("2006-01-02 15:04"))
	fmt.Printf("%s\n", strings.Repeat("═", 62))

	events, err := loadEvents(eventPath)
	if err != nil {
		fmt.Printf("\n(no event log at %s)\n", eventPath)
	} else {
		levels := counter{}
		sources := counter{}
		connects := 0
		for _, e := range events {
			levels[e.Level]++
			if e.Level == "CONNECT" {
				sources[e.Src]++
				connects++
			}
		}

		section(fmt.Sprintf("Events (%d total, %d connects)", len(events), connects))
		var rows [][]string
		for _, e := range levels.topN(0) {
			rows = append(rows, []string{e.K, fmt.Sprint(e.V)})
		}
		printTable([]string{"LEVEL", "COUNT"}, rows)

		if len(sources) > 0 {
			section("Top sources")
			rows = rows[:0]
			for _, e := range sources.topN(*topN) {
				rows = append(rows, []string{e.K, fmt.Sprint(e.V)})
			}
			printTable([]string{"SOURCE", "CONNECTS"}, rows)
		}
	}

	paths, err := loadSessions(sessionDir)
	if err != nil {
		fmt.Printf("\n(no session logs under %s)\n\n", sessionDir)
		return
	}

	commands := counter{}
	total := 0
	for _, p := range paths {
		for _, c := range sessionCommands(p) {
			// Bucket by command word, not full invocation.
			word := c
			if idx := strings.IndexByte(c, ' '); idx >= 0 {
				word = c[:idx]
			}
			commands[word]++
			total++
		}
	}

	section(fmt.Sprintf("Commands (%d sessions, %d invocations)", len(paths), total))
	var rows [][]string
	for _, e := range commands.topN(*topN) {
		rows = append(rows, []string{e.K, fmt.Sprint(e.V)})
	}
	printTable([]string{"COMMAND", "COUNT"}, rows)

	fmt.Printf("\n%s\n\n", strings.Repeat("═", 62))
}
