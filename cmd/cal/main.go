// Command cal is a standalone entry point for the cal applet.
package main

import (
	"os"

	"github.com/dkuku/rust-cli-book/pkg/applets/cal"
	"github.com/dkuku/rust-cli-book/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(cal.Run(stdio, os.Args[1:]))
}
