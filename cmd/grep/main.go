// Command grep is a standalone entry point for the grep applet.
package main

import (
	"os"

	"github.com/dkuku/rust-cli-book/pkg/applets/grep"
	"github.com/dkuku/rust-cli-book/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(grep.Run(stdio, os.Args[1:]))
}
