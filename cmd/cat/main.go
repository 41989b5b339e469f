// Command cat is a standalone entry point for the cat applet.
package main

import (
	"os"

	"github.com/dkuku/rust-cli-book/pkg/applets/cat"
	"github.com/dkuku/rust-cli-book/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(cat.Run(stdio, os.Args[1:]))
}
