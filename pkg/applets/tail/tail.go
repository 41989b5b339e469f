// Package tail implements the tail command.
package tail

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/core/cli"
)

// takeValue selects which part of the input to print. A leading '+'
// counts from the start of the file, otherwise the count is taken from
// the end. "+0" means the whole file.
type takeValue struct {
	plusZero bool
	num      int64
}

func spec() *cli.Spec {
	return &cli.Spec{
		Name:    "tail",
		Version: "0.1.0",
		About:   "output the last part of files",
		Positionals: []cli.Positional{
			{Name: "files", Value: "FILE", Help: "Input file(s)", Required: true, Multiple: true},
		},
		Flags: []cli.Flag{
			{Name: "lines", Short: 'n', Long: "lines", Help: "Number of lines", TakesValue: true, Default: "10"},
			{Name: "bytes", Short: 'c', Long: "bytes", Help: "Number of bytes", TakesValue: true},
			{Name: "quiet", Short: 'q', Long: "quiet", Help: "Suppress headers"},
		},
	}
}

// Run executes the tail command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	s := spec()
	inv, err := s.Parse(args)
	if err != nil {
		return cli.Exit(stdio, s, err)
	}

	if inv.Present("bytes") && inv.Present("lines") {
		return core.UsageError(stdio, "tail", "the argument '--lines' cannot be used with '--bytes'")
	}

	linesVal, _ := inv.String("lines")
	lines, err := parseNum(linesVal)
	if err != nil {
		return core.UsageError(stdio, "tail", "illegal line count -- "+linesVal)
	}

	var bytes *takeValue
	if inv.Present("bytes") {
		bytesVal, _ := inv.String("bytes")
		b, err := parseNum(bytesVal)
		if err != nil {
			return core.UsageError(stdio, "tail", "illegal byte count -- "+bytesVal)
		}
		bytes = &b
	}

	files, _ := inv.Strings("files")
	quiet := inv.Bool("quiet")
	multiple := len(files) > 1
	exitCode := core.ExitSuccess

	for i, file := range files {
		if err := tailFile(stdio, file, lines, bytes, multiple && !quiet, i > 0); err != nil {
			stdio.Errorf("%s: %v\n", file, err)
			exitCode = core.ExitFailure
		}
	}
	return exitCode
}

func tailFile(stdio *core.Stdio, path string, lines takeValue, bytes *takeValue, header, later bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	totalLines, totalBytes, err := countLinesBytes(f)
	if err != nil {
		return err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}

	if header {
		if later {
			stdio.Println()
		}
		stdio.Printf("==> %s <==\n", path)
	}

	if bytes != nil {
		return printBytes(stdio, f, *bytes, totalBytes)
	}
	return printLines(stdio, f, lines, totalLines)
}

func countLinesBytes(r io.Reader) (int64, int64, error) {
	var lines, bytes int64
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		bytes += int64(len(line))
		if line != "" {
			lines++
		}
		if err == io.EOF {
			return lines, bytes, nil
		}
		if err != nil {
			return 0, 0, err
		}
	}
}

func printLines(stdio *core.Stdio, r io.Reader, tv takeValue, total int64) error {
	start, ok := getStartIndex(tv, total)
	if !ok {
		return nil
	}
	reader := bufio.NewReader(r)
	var idx int64
	for {
		line, err := reader.ReadString('\n')
		if line != "" && idx >= start {
			stdio.Print(line)
		}
		idx++
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func printBytes(stdio *core.Stdio, f io.ReadSeeker, tv takeValue, total int64) error {
	start, ok := getStartIndex(tv, total)
	if !ok {
		return nil
	}
	if _, err := f.Seek(start, io.SeekStart); err != nil {
		return err
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	if len(data) > 0 {
		stdio.Print(strings.ToValidUTF8(string(data), "�"))
	}
	return nil
}

// parseNum interprets a count argument. An unsigned value counts from
// the end, so "3", "-3", and "+3" are three-from-the-end, three-from-
// the-end, and starting-at-the-third respectively.
func parseNum(val string) (takeValue, error) {
	if val == "+0" {
		return takeValue{plusZero: true}, nil
	}
	signed := val
	if !strings.HasPrefix(val, "+") && !strings.HasPrefix(val, "-") {
		signed = "-" + val
	}
	n, err := strconv.ParseInt(signed, 10, 64)
	if err != nil {
		return takeValue{}, err
	}
	return takeValue{num: n}, nil
}

// getStartIndex converts a takeValue and an element total into the
// zero-based index to start printing from. The second return is false
// when nothing should be printed.
func getStartIndex(tv takeValue, total int64) (int64, bool) {
	switch {
	case tv.plusZero:
		return 0, total > 0
	case tv.num == 0 || total == 0:
		return 0, false
	case tv.num > 0:
		if tv.num > total {
			return 0, false
		}
		return tv.num - 1, true
	default:
		start := total + tv.num
		if start < 0 {
			start = 0
		}
		return start, true
	}
}
