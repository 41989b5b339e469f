// Package cut implements the cut command.
package cut

import (
	"bufio"
	"strings"

	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/core/cli"
	"github.com/dkuku/rust-cli-book/pkg/core/textutil"
)

type extractMode int

const (
	modeFields extractMode = iota
	modeBytes
	modeChars
)

type options struct {
	mode      extractMode
	positions []textutil.Range
	delimiter byte
}

func spec() *cli.Spec {
	return &cli.Spec{
		Name:    "cut",
		Version: "0.1.0",
		About:   "remove sections from each line",
		Positionals: []cli.Positional{
			{Name: "file", Value: "FILE", Help: "Input file", Default: "-"},
		},
		Flags: []cli.Flag{
			{Name: "delimiter", Short: 'd', Long: "delim", Help: "Field delimiter", TakesValue: true, Default: "\t"},
			{Name: "fields", Short: 'f', Long: "fields", Help: "Selected fields", TakesValue: true},
			{Name: "bytes", Short: 'b', Long: "bytes", Help: "Selected bytes", TakesValue: true},
			{Name: "chars", Short: 'c', Long: "chars", Help: "Selected characters", TakesValue: true},
		},
	}
}

// Run executes the cut command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	s := spec()
	inv, err := s.Parse(args)
	if err != nil {
		return cli.Exit(stdio, s, err)
	}

	delim, _ := inv.String("delimiter")
	if len(delim) != 1 {
		return core.UsageError(stdio, "cut", "--delim must be a single byte")
	}

	var opts *options
	for _, sel := range []struct {
		name string
		mode extractMode
	}{
		{"fields", modeFields},
		{"bytes", modeBytes},
		{"chars", modeChars},
	} {
		name, mode := sel.name, sel.mode
		if !inv.Present(name) {
			continue
		}
		if opts != nil {
			return core.UsageError(stdio, "cut", "only one of --fields, --bytes, or --chars may be given")
		}
		listVal, _ := inv.String(name)
		positions, err := textutil.ParsePositionList(listVal)
		if err != nil {
			return core.UsageError(stdio, "cut", err.Error())
		}
		opts = &options{mode: mode, positions: positions, delimiter: delim[0]}
	}
	if opts == nil {
		return core.UsageError(stdio, "cut", "must have --fields, --bytes, or --chars")
	}

	file, _ := inv.String("file")
	f, err := core.OpenInput(stdio, file)
	if err != nil {
		return core.FileError(stdio, "cut", file, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		stdio.Println(extract(scanner.Text(), opts))
	}
	if err := scanner.Err(); err != nil {
		stdio.Errorf("cut: %v\n", err)
		return core.ExitFailure
	}
	return core.ExitSuccess
}

func extract(line string, opts *options) string {
	switch opts.mode {
	case modeBytes:
		return textutil.ExtractBytes(line, opts.positions)
	case modeChars:
		return textutil.ExtractChars(line, opts.positions)
	default:
		delim := string(opts.delimiter)
		fields := strings.Split(line, delim)
		return strings.Join(textutil.ExtractFields(fields, opts.positions), delim)
	}
}
