// Command tail is a standalone entry point for the tail applet.
package main

import (
	"os"

	"github.com/dkuku/rust-cli-book/pkg/applets/tail"
	"github.com/dkuku/rust-cli-book/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(tail.Run(stdio, os.Args[1:]))
}
