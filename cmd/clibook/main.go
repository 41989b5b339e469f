// Command clibook is a multi-call binary bundling every applet. It
// dispatches on the name it was invoked as, or on its first argument,
// so symlinking clibook to "wc" makes it behave as wc.
package main

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/dkuku/rust-cli-book/pkg/applets/cal"
	"github.com/dkuku/rust-cli-book/pkg/applets/cat"
	"github.com/dkuku/rust-cli-book/pkg/applets/comm"
	"github.com/dkuku/rust-cli-book/pkg/applets/cut"
	"github.com/dkuku/rust-cli-book/pkg/applets/echo"
	"github.com/dkuku/rust-cli-book/pkg/applets/find"
	"github.com/dkuku/rust-cli-book/pkg/applets/fortune"
	"github.com/dkuku/rust-cli-book/pkg/applets/grep"
	"github.com/dkuku/rust-cli-book/pkg/applets/head"
	"github.com/dkuku/rust-cli-book/pkg/applets/tail"
	"github.com/dkuku/rust-cli-book/pkg/applets/uniq"
	"github.com/dkuku/rust-cli-book/pkg/applets/wc"
	"github.com/dkuku/rust-cli-book/pkg/core"
)

type appletFunc func(stdio *core.Stdio, args []string) int

var applets = map[string]appletFunc{
	"cal":     cal.Run,
	"cat":     cat.Run,
	"comm":    comm.Run,
	"cut":     cut.Run,
	"echo":    echo.Run,
	"find":    find.Run,
	"fortune": fortune.Run,
	"grep":    grep.Run,
	"head":    head.Run,
	"tail":    tail.Run,
	"uniq":    uniq.Run,
	"wc":      wc.Run,
}

func main() {
	stdio := core.DefaultStdio()

	applet, args := resolveApplet(os.Args)
	if applet == "" {
		printAppletList(stdio)
		os.Exit(core.ExitUsage)
	}

	run, ok := applets[applet]
	if !ok {
		stdio.Errorf("clibook: applet not found: %s\n", applet)
		printAppletList(stdio)
		os.Exit(core.ExitUsage)
	}

	// Applets expect args without the applet name.
	os.Exit(run(stdio, args))
}

func resolveApplet(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}

	// If invoked as "clibook applet ..."
	if filepath.Base(args[0]) == "clibook" {
		if len(args) > 1 {
			return args[1], args[2:]
		}
		return "", nil
	}

	// If invoked as a symlink named after the applet
	applet := filepath.Base(args[0])
	return applet, args[1:]
}

func printAppletList(stdio *core.Stdio) {
	names := make([]string, 0, len(applets))
	for name := range applets {
		names = append(names, name)
	}
	sort.Strings(names)

	stdio.Println("Currently defined functions:")
	for _, name := range names {
		stdio.Print(" ", name)
	}
	stdio.Println()
}
