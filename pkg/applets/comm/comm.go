// Package comm implements the comm command.
package comm

import (
	"bufio"
	"io"
	"strings"

	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/core/cli"
)

type options struct {
	showCol1    bool
	showCol2    bool
	showCol3    bool
	insensitive bool
	delimiter   string
}

func spec() *cli.Spec {
	return &cli.Spec{
		Name:    "comm",
		Version: "0.1.0",
		About:   "compare two sorted files line by line",
		Positionals: []cli.Positional{
			{Name: "file1", Value: "FILE1", Help: "Input file 1", Required: true},
			{Name: "file2", Value: "FILE2", Help: "Input file 2", Required: true},
		},
		Flags: []cli.Flag{
			{Name: "suppress1", Short: '1', Help: "Suppress printing of column 1"},
			{Name: "suppress2", Short: '2', Help: "Suppress printing of column 2"},
			{Name: "suppress3", Short: '3', Help: "Suppress printing of column 3"},
			{Name: "insensitive", Short: 'i', Help: "Case insensitive comparison"},
			{Name: "delimiter", Short: 'd', Long: "output-delimiter", Help: "Output delimiter", TakesValue: true, Default: "\t"},
		},
	}
}

// Run executes the comm command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	s := spec()
	inv, err := s.Parse(args)
	if err != nil {
		return cli.Exit(stdio, s, err)
	}

	file1, _ := inv.String("file1")
	file2, _ := inv.String("file2")
	if file1 == "-" && file2 == "-" {
		return core.UsageError(stdio, "comm", `Both input files cannot be STDIN ("-")`)
	}

	delim, _ := inv.String("delimiter")
	opts := options{
		showCol1:    !inv.Bool("suppress1"),
		showCol2:    !inv.Bool("suppress2"),
		showCol3:    !inv.Bool("suppress3"),
		insensitive: inv.Bool("insensitive"),
		delimiter:   delim,
	}

	in1, err := core.OpenInput(stdio, file1)
	if err != nil {
		return core.FileError(stdio, "comm", file1, err)
	}
	defer in1.Close()
	in2, err := core.OpenInput(stdio, file2)
	if err != nil {
		return core.FileError(stdio, "comm", file2, err)
	}
	defer in2.Close()

	if err := compare(stdio, in1, in2, &opts); err != nil {
		stdio.Errorf("comm: %v\n", err)
		return core.ExitFailure
	}
	return core.ExitSuccess
}

type column int

const (
	col1 column = iota
	col2
	col3
)

func (o *options) print(stdio *core.Stdio, col column, text string) {
	var prefix string
	switch col {
	case col1:
		if !o.showCol1 {
			return
		}
	case col2:
		if !o.showCol2 {
			return
		}
		if o.showCol1 {
			prefix = o.delimiter
		}
	case col3:
		if !o.showCol3 {
			return
		}
		if o.showCol1 {
			prefix += o.delimiter
		}
		if o.showCol2 {
			prefix += o.delimiter
		}
	}
	stdio.Println(prefix + text)
}

func (o *options) key(line string) string {
	if o.insensitive {
		return strings.ToLower(line)
	}
	return line
}

// compare merges two sorted line streams into the classic three columns:
// unique to the first, unique to the second, common to both.
func compare(stdio *core.Stdio, in1, in2 io.Reader, opts *options) error {
	s1 := bufio.NewScanner(in1)
	s2 := bufio.NewScanner(in2)

	next := func(s *bufio.Scanner) (string, bool) {
		if s.Scan() {
			return s.Text(), true
		}
		return "", false
	}

	line1, ok1 := next(s1)
	line2, ok2 := next(s2)
	for ok1 || ok2 {
		switch {
		case !ok2:
			opts.print(stdio, col1, line1)
			line1, ok1 = next(s1)
		case !ok1:
			opts.print(stdio, col2, line2)
			line2, ok2 = next(s2)
		default:
			k1, k2 := opts.key(line1), opts.key(line2)
			switch {
			case k1 < k2:
				opts.print(stdio, col1, line1)
				line1, ok1 = next(s1)
			case k1 > k2:
				opts.print(stdio, col2, line2)
				line2, ok2 = next(s2)
			default:
				opts.print(stdio, col3, line1)
				line1, ok1 = next(s1)
				line2, ok2 = next(s2)
			}
		}
	}
	if err := s1.Err(); err != nil {
		return err
	}
	return s2.Err()
}
