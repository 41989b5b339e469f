// Command uniq is a standalone entry point for the uniq applet.
package main

import (
	"os"

	"github.com/dkuku/rust-cli-book/pkg/applets/uniq"
	"github.com/dkuku/rust-cli-book/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(uniq.Run(stdio, os.Args[1:]))
}
