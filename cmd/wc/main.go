// Command wc is a standalone entry point for the wc applet.
package main

import (
	"os"

	"github.com/dkuku/rust-cli-book/pkg/applets/wc"
	"github.com/dkuku/rust-cli-book/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(wc.Run(stdio, os.Args[1:]))
}
