// Package wc implements the wc (word count) command.
package wc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/core/cli"
)

type options struct {
	lines bool
	words bool
	bytes bool
	chars bool
}

// Counts holds the counts for one input.
type Counts struct {
	Lines int
	Words int
	Bytes int
	Chars int
}

// Add accumulates other into c.
func (c *Counts) Add(other Counts) {
	c.Lines += other.Lines
	c.Words += other.Words
	c.Bytes += other.Bytes
	c.Chars += other.Chars
}

func spec() *cli.Spec {
	return &cli.Spec{
		Name:    "wc",
		Version: "0.1.0",
		About:   "print line, word, and byte counts",
		Positionals: []cli.Positional{
			{Name: "files", Value: "FILE", Help: "Input file(s)", Multiple: true, Default: "-"},
		},
		Flags: []cli.Flag{
			{Name: "lines", Short: 'l', Long: "lines", Help: "Show line count"},
			{Name: "words", Short: 'w', Long: "words", Help: "Show word count"},
			{Name: "bytes", Short: 'c', Long: "bytes", Help: "Show byte count"},
			{Name: "chars", Short: 'm', Long: "chars", Help: "Show character count"},
		},
	}
}

// Run executes the wc command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	s := spec()
	inv, err := s.Parse(args)
	if err != nil {
		return cli.Exit(stdio, s, err)
	}

	opts := options{
		lines: inv.Bool("lines"),
		words: inv.Bool("words"),
		bytes: inv.Bool("bytes"),
		chars: inv.Bool("chars"),
	}
	if opts.bytes && opts.chars {
		return core.UsageError(stdio, "wc", "the argument '--bytes' cannot be used with '--chars'")
	}
	if !opts.lines && !opts.words && !opts.bytes && !opts.chars {
		opts.lines, opts.words, opts.bytes = true, true, true
	}

	files, _ := inv.Strings("files")
	multiple := len(files) > 1
	exitCode := core.ExitSuccess
	var total Counts

	for _, file := range files {
		counts, err := countFile(stdio, file)
		if err != nil {
			stdio.Errorf("%s: %v\n", file, err)
			exitCode = core.ExitFailure
			continue
		}
		printCounts(stdio, counts, file, &opts)
		total.Add(counts)
	}
	if multiple {
		printCounts(stdio, total, "total", &opts)
	}
	return exitCode
}

// Count tallies lines, words, bytes, and runes from r. A word is a maximal
// run of non-whitespace. A final fragment without a terminating newline
// still counts as a line.
func Count(r io.Reader) (Counts, error) {
	var counts Counts
	br := bufio.NewReader(r)
	inWord := false
	inLine := false

	for {
		ru, size, err := br.ReadRune()
		if err != nil {
			if err == io.EOF {
				if inLine {
					counts.Lines++
				}
				return counts, nil
			}
			return counts, err
		}
		counts.Bytes += size
		counts.Chars++
		if ru == '\n' {
			counts.Lines++
			inLine = false
		} else {
			inLine = true
		}
		if unicode.IsSpace(ru) {
			inWord = false
		} else if !inWord {
			inWord = true
			counts.Words++
		}
	}
}

func countFile(stdio *core.Stdio, path string) (Counts, error) {
	f, err := core.OpenInput(stdio, path)
	if err != nil {
		return Counts{}, err
	}
	defer f.Close()
	return Count(f)
}

func printCounts(stdio *core.Stdio, counts Counts, name string, opts *options) {
	var b strings.Builder
	field := func(enabled bool, n int) {
		if enabled {
			fmt.Fprintf(&b, "%8d", n)
		}
	}
	field(opts.lines, counts.Lines)
	field(opts.words, counts.Words)
	field(opts.bytes, counts.Bytes)
	field(opts.chars, counts.Chars)
	if name != "-" {
		b.WriteString(" " + name)
	}
	stdio.Println(b.String())
}
