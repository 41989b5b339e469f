// Command fortune is a standalone entry point for the fortune applet.
package main

import (
	"os"

	"github.com/dkuku/rust-cli-book/pkg/applets/fortune"
	"github.com/dkuku/rust-cli-book/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(fortune.Run(stdio, os.Args[1:]))
}
