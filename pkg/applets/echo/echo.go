// Package echo implements the echo command.
package echo

import (
	"strings"

	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/core/cli"
)

func spec() *cli.Spec {
	return &cli.Spec{
		Name:    "echo",
		Version: "0.1.0",
		About:   "display a line of text",
		Positionals: []cli.Positional{
			{Name: "text", Value: "TEXT", Help: "Input text", Required: true, Multiple: true},
		},
		Flags: []cli.Flag{
			{Name: "omit_newline", Short: 'n', Long: "omit-newline", Help: "Do not print newline"},
		},
	}
}

// Run executes the echo command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	s := spec()
	inv, err := s.Parse(args)
	if err != nil {
		return cli.Exit(stdio, s, err)
	}

	text, err := inv.Strings("text")
	if err != nil {
		stdio.Errorf("echo: %v\n", err)
		return core.ExitFailure
	}
	if text == nil {
		// Unreachable for a required parameter; retrieval without a
		// collection is a deliberate silent no-op.
		return core.ExitSuccess
	}

	ending := "\n"
	if inv.Bool("omit_newline") {
		ending = ""
	}
	stdio.Print(strings.Join(text, " ") + ending)
	return core.ExitSuccess
}
