// mevcli demo — runs an interactive session on the local terminal.
// Usage: go run ./cmd/mevcli [--history N]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/evansm7/mevcli"
)

const extraHelp = "\r\n" +
	"\t[ You can navigate a line using cursors (use them with CTRL\r\n" +
	"\t  to navigate by word), and ^A/^E to skip to the start/end.\r\n" +
	"\t  Erase by word (^W), or to line start (^U) are also supported. ]\r\n"

func main() {
	histBytes := flag.Int("history", 512, "History arena size in bytes (0 disables history)")
	flag.Parse()

	prompt := "test> "
	quit := false

	prback := func(_ any, args []string) {
		fmt.Printf("Got %d args.", len(args))
		if len(args) > 0 {
			fmt.Printf("  In reverse order, they are: ")
			for i := len(args) - 1; i >= 0; i-- {
				fmt.Printf("'%s' ", args[i])
			}
		}
		fmt.Printf("\r\n")
	}
	prcaps := func(_ any, args []string) {
		for _, a := range args {
			fmt.Printf(" '%s'", strings.ToUpper(a))
		}
		fmt.Printf("\r\n")
	}
	// One handler for both mode commands; the opaque value carries the
	// prompt to switch to.
	setMode := func(opaque any, _ []string) {
		prompt = opaque.(string)
	}

	cmds := []mevcli.Command{
		{Name: "prback", Help: " <args...>\tPrint args backwards", NArgs: -1, Fn: prback},
		{Name: "prcaps", Help: " <a> <b>\t\tPrint both args IN CAPS", NArgs: 2, Fn: prcaps},
		{Name: "special", Help: "\t\t\tEnter special mode", NArgs: 0, Opaque: "specialmode> ", Fn: setMode},
		{Name: "unspecial", Help: "\t\tExit special mode", NArgs: 0, Opaque: "test> ", Fn: setMode},
		{Name: "quit", Help: "\t\t\tQuit back to sanity", NArgs: 0, Fn: func(any, []string) { quit = true }},
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatal(err)
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	sess := mevcli.New(mevcli.Config{
		Prompt:       func() string { return prompt },
		HistoryBytes: *histBytes,
		ExtraHelp:    extraHelp,
	}, cmds, mevcli.OutputTo(os.Stdout))

	buf := make([]byte, 1)
	for !quit {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			break
		}
		if n == 0 {
			continue
		}
		if buf[0] == 0x03 { // ^C
			break
		}
		sess.InputByte(buf[0])
	}
	fmt.Printf("\r\n")
}
