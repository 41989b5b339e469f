// Package find implements the find command.
package find

import (
	"io/fs"
	"path/filepath"
	"regexp"

	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/core/cli"
)

type entryType int

const (
	typeFile entryType = iota
	typeDir
	typeLink
)

type options struct {
	names []*regexp.Regexp
	types []entryType
}

func spec() *cli.Spec {
	return &cli.Spec{
		Name:    "find",
		Version: "0.1.0",
		About:   "search for files in a directory hierarchy",
		Positionals: []cli.Positional{
			{Name: "paths", Value: "PATH", Help: "Search paths", Multiple: true, Default: "."},
		},
		Flags: []cli.Flag{
			{Name: "name", Short: 'n', Long: "name", Help: "Name pattern", TakesValue: true, Repeatable: true},
			{Name: "type", Short: 't', Long: "type", Help: "Entry type (f, d, or l)", TakesValue: true, Repeatable: true},
		},
	}
}

// Run executes the find command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	s := spec()
	inv, err := s.Parse(args)
	if err != nil {
		return cli.Exit(stdio, s, err)
	}

	opts := options{}
	for _, val := range inv.Values("name") {
		re, err := regexp.Compile(val)
		if err != nil {
			return core.UsageError(stdio, "find", `Invalid --name "`+val+`"`)
		}
		opts.names = append(opts.names, re)
	}
	for _, val := range inv.Values("type") {
		et, ok := parseEntryType(val)
		if !ok {
			return core.UsageError(stdio, "find", `Invalid --type "`+val+`"`)
		}
		opts.types = append(opts.types, et)
	}

	paths, _ := inv.Strings("paths")
	exitCode := core.ExitSuccess
	for _, path := range paths {
		err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				stdio.Errorf("find: %s: %v\n", p, err)
				exitCode = core.ExitFailure
				return nil
			}
			if opts.matches(p, d) {
				stdio.Println(p)
			}
			return nil
		})
		if err != nil {
			stdio.Errorf("find: %s: %v\n", path, err)
			exitCode = core.ExitFailure
		}
	}
	return exitCode
}

func parseEntryType(val string) (entryType, bool) {
	switch val {
	case "f", "file":
		return typeFile, true
	case "d", "dir":
		return typeDir, true
	case "l", "link":
		return typeLink, true
	}
	return 0, false
}

func (o *options) matches(path string, d fs.DirEntry) bool {
	if len(o.names) > 0 && !o.matchesName(filepath.Base(path)) {
		return false
	}
	if len(o.types) > 0 && !o.matchesType(d) {
		return false
	}
	return true
}

func (o *options) matchesName(base string) bool {
	for _, re := range o.names {
		if re.MatchString(base) {
			return true
		}
	}
	return false
}

func (o *options) matchesType(d fs.DirEntry) bool {
	for _, et := range o.types {
		switch et {
		case typeFile:
			if d.Type().IsRegular() {
				return true
			}
		case typeDir:
			if d.IsDir() {
				return true
			}
		case typeLink:
			if d.Type()&fs.ModeSymlink != 0 {
				return true
			}
		}
	}
	return false
}
