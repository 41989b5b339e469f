// Package uniq implements the uniq command.
package uniq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/core/cli"
)

func spec() *cli.Spec {
	return &cli.Spec{
		Name:    "uniq",
		Version: "0.1.0",
		About:   "filter adjacent repeated lines",
		Positionals: []cli.Positional{
			{Name: "in_file", Value: "IN_FILE", Help: "Input file", Default: "-"},
			{Name: "out_file", Value: "OUT_FILE", Help: "Output file"},
		},
		Flags: []cli.Flag{
			{Name: "count", Short: 'c', Long: "count", Help: "Show counts"},
		},
	}
}

// Run executes the uniq command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	s := spec()
	inv, err := s.Parse(args)
	if err != nil {
		return cli.Exit(stdio, s, err)
	}

	inFile, _ := inv.String("in_file")
	in, err := core.OpenInput(stdio, inFile)
	if err != nil {
		return core.FileError(stdio, "uniq", inFile, err)
	}
	defer in.Close()

	var out io.Writer = stdio.Out
	if inv.Present("out_file") {
		outFile, _ := inv.String("out_file")
		f, err := os.Create(outFile)
		if err != nil {
			return core.FileError(stdio, "uniq", outFile, err)
		}
		defer f.Close()
		out = f
	}

	if err := unique(in, out, inv.Bool("count")); err != nil {
		stdio.Errorf("uniq: %v\n", err)
		return core.ExitFailure
	}
	return core.ExitSuccess
}

// unique collapses adjacent duplicate lines. Lines are compared with
// trailing whitespace stripped but written with their original bytes.
func unique(in io.Reader, out io.Writer, showCount bool) error {
	emit := func(count int, text string) error {
		if count == 0 {
			return nil
		}
		var err error
		if showCount {
			_, err = fmt.Fprintf(out, "%4d %s", count, text)
		} else {
			_, err = fmt.Fprint(out, text)
		}
		return err
	}

	reader := bufio.NewReader(in)
	previous := ""
	count := 0
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if strings.TrimRight(line, " \t\r\n") != strings.TrimRight(previous, " \t\r\n") || count == 0 {
				if err := emit(count, previous); err != nil {
					return err
				}
				previous = line
				count = 0
			}
			count++
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
	}
	return emit(count, previous)
}
