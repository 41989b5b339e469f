// Command comm is a standalone entry point for the comm applet.
package main

import (
	"os"

	"github.com/dkuku/rust-cli-book/pkg/applets/comm"
	"github.com/dkuku/rust-cli-book/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(comm.Run(stdio, os.Args[1:]))
}
