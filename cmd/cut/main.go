// Command cut is a standalone entry point for the cut applet.
package main

import (
	"os"

	"github.com/dkuku/rust-cli-book/pkg/applets/cut"
	"github.com/dkuku/rust-cli-book/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(cut.Run(stdio, os.Args[1:]))
}
