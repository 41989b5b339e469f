// Package fortune implements the fortune command.
package fortune

import (
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/core/cli"
)

// Fortune is one record from a fortune file.
type Fortune struct {
	Source string
	Text   string
}

func spec() *cli.Spec {
	return &cli.Spec{
		Name:    "fortune",
		Version: "0.1.0",
		About:   "print a random epigram",
		Positionals: []cli.Positional{
			{Name: "sources", Value: "FILES", Help: "Input files or directories", Required: true, Multiple: true},
		},
		Flags: []cli.Flag{
			{Name: "pattern", Short: 'm', Help: "Pattern", TakesValue: true},
			{Name: "seed", Short: 's', Long: "seed", Help: "Random seed", TakesValue: true},
			{Name: "insensitive", Short: 'i', Long: "insensitive", Help: "Case-insensitive pattern matching"},
		},
	}
}

// Run executes the fortune command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	s := spec()
	inv, err := s.Parse(args)
	if err != nil {
		return cli.Exit(stdio, s, err)
	}

	var seed *int64
	if inv.Present("seed") {
		seedVal, _ := inv.String("seed")
		n, err := strconv.ParseUint(seedVal, 10, 64)
		if err != nil {
			return core.UsageError(stdio, "fortune", "'"+seedVal+"' not a valid integer")
		}
		signed := int64(n)
		seed = &signed
	}

	sources, _ := inv.Strings("sources")
	paths, err := FindFiles(sources)
	if err != nil {
		stdio.Errorf("fortune: %v\n", err)
		return core.ExitFailure
	}
	fortunes, err := ReadFortunes(paths)
	if err != nil {
		stdio.Errorf("fortune: %v\n", err)
		return core.ExitFailure
	}

	if inv.Present("pattern") {
		patternVal, _ := inv.String("pattern")
		expr := patternVal
		if inv.Bool("insensitive") {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return core.UsageError(stdio, "fortune", `Invalid --pattern "`+patternVal+`"`)
		}
		found := false
		for _, f := range fortunes {
			if re.MatchString(f.Source) || re.MatchString(f.Text) {
				stdio.Println(f.Text)
				found = true
			}
		}
		if !found {
			stdio.Println("No fortunes found")
		}
		return core.ExitSuccess
	}

	if text, ok := Pick(fortunes, seed); ok {
		stdio.Println(text)
	}
	return core.ExitSuccess
}

// FindFiles expands sources into a sorted, deduplicated list of fortune
// files. Directories are walked, skipping ".dat" index files; every source
// must exist.
func FindFiles(sources []string) ([]string, error) {
	var files []string
	for _, source := range sources {
		info, err := os.Stat(source)
		if err != nil {
			return nil, &pathError{source}
		}
		if !info.IsDir() {
			files = append(files, source)
			continue
		}
		err = filepath.WalkDir(source, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() && filepath.Ext(p) != ".dat" {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return dedup(files), nil
}

type pathError struct{ path string }

func (e *pathError) Error() string { return e.path + ": Path does not exist" }

func dedup(sorted []string) []string {
	var out []string
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}

// ReadFortunes loads %-separated records from each file, trimming
// whitespace and dropping empty records.
func ReadFortunes(paths []string) ([]Fortune, error) {
	var fortunes []Fortune
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		source := filepath.Base(path)
		for _, chunk := range strings.Split(string(data), "%") {
			text := strings.TrimSpace(chunk)
			if text != "" {
				fortunes = append(fortunes, Fortune{Source: source, Text: text})
			}
		}
	}
	return fortunes, nil
}

// Pick chooses one fortune uniformly. A non-nil seed makes the choice
// reproducible.
func Pick(fortunes []Fortune, seed *int64) (string, bool) {
	if len(fortunes) == 0 {
		return "", false
	}
	var rng *rand.Rand
	if seed != nil {
		rng = rand.New(rand.NewSource(*seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return fortunes[rng.Intn(len(fortunes))].Text, true
}
