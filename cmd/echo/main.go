// Command echo is a standalone entry point for the echo applet.
package main

import (
	"os"

	"github.com/dkuku/rust-cli-book/pkg/applets/echo"
	"github.com/dkuku/rust-cli-book/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(echo.Run(stdio, os.Args[1:]))
}
