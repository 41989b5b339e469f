// Package head implements the head command.
package head

import (
	"bufio"
	"io"
	"strconv"

	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/core/cli"
)

func spec() *cli.Spec {
	return &cli.Spec{
		Name:    "head",
		Version: "0.1.0",
		About:   "output the first part of files",
		Positionals: []cli.Positional{
			{Name: "files", Value: "FILE", Help: "Input file(s)", Multiple: true, Default: "-"},
		},
		Flags: []cli.Flag{
			{Name: "lines", Short: 'n', Long: "lines", Help: "Number of lines", TakesValue: true, Default: "10"},
			{Name: "bytes", Short: 'c', Long: "bytes", Help: "Number of bytes", TakesValue: true},
		},
	}
}

// Run executes the head command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	s := spec()
	inv, err := s.Parse(args)
	if err != nil {
		return cli.Exit(stdio, s, err)
	}

	linesVal, _ := inv.String("lines")
	lines, err := parsePositive(linesVal)
	if err != nil {
		return core.UsageError(stdio, "head", "illegal line count -- "+linesVal)
	}

	bytes := -1
	if inv.Present("bytes") {
		bytesVal, _ := inv.String("bytes")
		bytes, err = parsePositive(bytesVal)
		if err != nil {
			return core.UsageError(stdio, "head", "illegal byte count -- "+bytesVal)
		}
	}

	files, _ := inv.Strings("files")
	multiple := len(files) > 1
	exitCode := core.ExitSuccess

	for i, file := range files {
		if multiple {
			if i > 0 {
				stdio.Println()
			}
			stdio.Printf("==> %s <==\n", file)
		}
		if err := headFile(stdio, file, lines, bytes); err != nil {
			stdio.Errorf("%s: %v\n", file, err)
			exitCode = core.ExitFailure
		}
	}
	return exitCode
}

func parsePositive(val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

func headFile(stdio *core.Stdio, path string, lines, bytes int) error {
	f, err := core.OpenInput(stdio, path)
	if err != nil {
		return err
	}
	defer f.Close()

	if bytes >= 0 {
		buf := make([]byte, bytes)
		n, err := io.ReadFull(f, buf)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return err
		}
		_, err = stdio.Out.Write(buf[:n])
		return err
	}

	// Read with line terminators preserved so a file without a trailing
	// newline is reproduced exactly.
	reader := bufio.NewReader(f)
	for i := 0; i < lines; i++ {
		line, err := reader.ReadString('\n')
		if line != "" {
			stdio.Print(line)
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
	return nil
}
