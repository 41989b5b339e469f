// Package cat implements the cat command.
package cat

import (
	"bufio"

	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/core/cli"
)

type options struct {
	numberLines    bool
	numberNonblank bool
	showEnds       bool
	squeezeBlank   bool
}

func spec() *cli.Spec {
	return &cli.Spec{
		Name:    "cat",
		Version: "0.1.0",
		About:   "concatenate files to standard output",
		Positionals: []cli.Positional{
			{Name: "files", Value: "FILE", Help: "Input file(s)", Multiple: true, Default: "-"},
		},
		Flags: []cli.Flag{
			{Name: "number", Short: 'n', Long: "number", Help: "Add numbers to lines"},
			{Name: "number_nonblank", Short: 'b', Long: "number-nonblank", Help: "Add numbers to non blank lines"},
			{Name: "show_ends", Short: 'E', Long: "show-ends", Help: "Display $ at the end of the line"},
			{Name: "squeeze_blank", Short: 's', Long: "squeeze-blank", Help: "Suppress repeated empty output lines"},
		},
	}
}

// Run executes the cat command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	s := spec()
	inv, err := s.Parse(args)
	if err != nil {
		return cli.Exit(stdio, s, err)
	}

	opts := options{
		numberLines:    inv.Bool("number"),
		numberNonblank: inv.Bool("number_nonblank"),
		showEnds:       inv.Bool("show_ends"),
		squeezeBlank:   inv.Bool("squeeze_blank"),
	}
	if opts.numberNonblank {
		opts.numberLines = false
	}
	files, _ := inv.Strings("files")

	exitCode := core.ExitSuccess
	for _, file := range files {
		if err := catFile(stdio, file, &opts); err != nil {
			stdio.Errorf("Failed to open %s: %v\n", file, err)
			exitCode = core.ExitFailure
		}
	}
	return exitCode
}

func catFile(stdio *core.Stdio, path string, opts *options) error {
	f, err := core.OpenInput(stdio, path)
	if err != nil {
		return err
	}
	defer f.Close()

	endChar := ""
	if opts.showEnds {
		endChar = "$"
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNumber := 0
	previousEmpty := false

	for scanner.Scan() {
		line := scanner.Text()
		isEmpty := len(line) == 0
		if opts.squeezeBlank && previousEmpty && isEmpty {
			continue
		}
		previousEmpty = isEmpty

		if opts.numberLines || (opts.numberNonblank && !isEmpty) {
			lineNumber++
			stdio.Printf("%6d\t%s%s\n", lineNumber, line, endChar)
		} else {
			stdio.Printf("%s%s\n", line, endChar)
		}
	}
	return scanner.Err()
}
