// Package grep implements the grep command.
package grep

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/core/cli"
)

type options struct {
	pattern *regexp.Regexp
	invert  bool
	count   bool
}

func spec() *cli.Spec {
	return &cli.Spec{
		Name:    "grep",
		Version: "0.1.0",
		About:   "print lines matching a pattern",
		Positionals: []cli.Positional{
			{Name: "pattern", Value: "PATTERN", Help: "Search pattern", Required: true},
			{Name: "files", Value: "FILES", Help: "Input file(s)", Multiple: true, Default: "-"},
		},
		Flags: []cli.Flag{
			{Name: "recursive", Short: 'r', Long: "recursive", Help: "Recursive search"},
			{Name: "insensitive", Short: 'i', Long: "insensitive", Help: "Case insensitive"},
			{Name: "count", Short: 'c', Long: "count", Help: "Count occurrences"},
			{Name: "invert_match", Short: 'v', Long: "invert-match", Help: "Invert match"},
		},
	}
}

// Run executes the grep command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	s := spec()
	inv, err := s.Parse(args)
	if err != nil {
		return cli.Exit(stdio, s, err)
	}

	patternVal, _ := inv.String("pattern")
	expr := patternVal
	if inv.Bool("insensitive") {
		expr = "(?i)" + expr
	}
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return core.UsageError(stdio, "grep", `Invalid pattern "`+patternVal+`"`)
	}

	opts := options{
		pattern: pattern,
		invert:  inv.Bool("invert_match"),
		count:   inv.Bool("count"),
	}

	paths, _ := inv.Strings("files")
	sources, errs := findSources(paths, inv.Bool("recursive"))
	exitCode := core.ExitSuccess
	for _, e := range errs {
		stdio.Errorf("grep: %s\n", e)
		exitCode = core.ExitFailure
	}

	showName := len(sources) > 1
	for _, source := range sources {
		if err := grepSource(stdio, source, showName, &opts); err != nil {
			stdio.Errorf("grep: %s: %v\n", source, err)
			exitCode = core.ExitFailure
		}
	}
	return exitCode
}

// findSources expands the argument paths into concrete inputs: plain files
// and "-" pass through, directories are walked when recursive is set and
// reported as errors otherwise.
func findSources(paths []string, recursive bool) ([]string, []string) {
	var sources, errs []string
	for _, path := range paths {
		if path == "-" {
			sources = append(sources, path)
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			errs = append(errs, path+": "+err.Error())
			continue
		}
		if !info.IsDir() {
			sources = append(sources, path)
			continue
		}
		if !recursive {
			errs = append(errs, path+" is a directory")
			continue
		}
		walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				errs = append(errs, p+": "+err.Error())
				return nil
			}
			if d.Type().IsRegular() {
				sources = append(sources, p)
			}
			return nil
		})
		if walkErr != nil {
			errs = append(errs, path+": "+walkErr.Error())
		}
	}
	return sources, errs
}

func grepSource(stdio *core.Stdio, source string, showName bool, opts *options) error {
	f, err := core.OpenInput(stdio, source)
	if err != nil {
		return err
	}
	defer f.Close()

	prefix := ""
	if showName {
		prefix = source + ":"
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	matches := 0
	for scanner.Scan() {
		line := scanner.Text()
		if opts.pattern.MatchString(line) != opts.invert {
			matches++
			if !opts.count {
				stdio.Printf("%s%s\n", prefix, line)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if opts.count {
		stdio.Printf("%s%d\n", prefix, matches)
	}
	return nil
}
