package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/evansm7/mevcli"
)

const cliExtraHelp = "\r\n" +
	"\t[ You can navigate a line using cursors (use them with CTRL\r\n" +
	"\t  to navigate by word), and ^A/^E to skip to the start/end.\r\n" +
	"\t  Erase by word (^W), or to line start (^U) are also supported. ]\r\n"

// cliCommands builds the per-session command table. Handlers write to
// the session's channel writer and log through the session logger. home
// is the prompt that unspecial switches back to.
func cliCommands(w io.Writer, slog *sessionLogger, prompt *string, done *bool, home string) []mevcli.Command {
	prback := func(_ any, args []string) {
		slog.log("prback %v", args)
		fmt.Fprintf(w, "Got %d args.", len(args))
		if len(args) > 0 {
			fmt.Fprintf(w, "  In reverse order, they are: ")
			for i := len(args) - 1; i >= 0; i-- {
				fmt.Fprintf(w, "'%s' ", args[i])
			}
		}
		fmt.Fprintf(w, "\r\n")
	}
	prcaps := func(_ any, args []string) {
		slog.log("prcaps %v", args)
		for _, a := range args {
			fmt.Fprintf(w, " '%s'", strings.ToUpper(a))
		}
		fmt.Fprintf(w, "\r\n")
	}
	setMode := func(opaque any, _ []string) {
		slog.log("mode -> %s", opaque)
		*prompt = opaque.(string)
	}
	logout := func(any, []string) {
		slog.log("logout")
		*done = true
	}

	return []mevcli.Command{
		{Name: "prback", Help: " <args...>\tPrint args backwards", NArgs: -1, Fn: prback},
		{Name: "prcaps", Help: " <a> <b>\t\tPrint both args IN CAPS", NArgs: 2, Fn: prcaps},
		{Name: "special", Help: "\t\t\tEnter special mode", NArgs: 0, Opaque: "specialmode> ", Fn: setMode},
		{Name: "unspecial", Help: "\t\tExit special mode", NArgs: 0, Opaque: home, Fn: setMode},
		{Name: "logout", Help: "\t\t\tEnd the session", NArgs: 0, Fn: logout},
	}
}
