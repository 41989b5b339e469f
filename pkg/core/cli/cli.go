// Package cli matches an argument vector against a static specification.
//
// A Spec declares the flags and positional parameters an applet accepts,
// together with its version and about metadata. Parse scans an argv slice
// (program name excluded) and produces a typed Invocation, a *UsageError,
// or one of the ErrHelp/ErrVersion sentinels for the implicit --help and
// --version flags.
//
// Reading values back out of an Invocation is a second, deliberately
// distinct fallible step: looking up a name the Spec never declared yields
// a *RetrievalError rather than being folded into parse-time validation.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dkuku/rust-cli-book/pkg/core"
)

// Sentinels returned by Parse when an implicit flag was given.
var (
	ErrHelp    = errors.New("help requested")
	ErrVersion = errors.New("version requested")
)

// Flag declares a boolean or value-taking option.
type Flag struct {
	Name       string // retrieval key
	Short      byte   // single-character form, 0 for none
	Long       string // long form without leading dashes, "" for none
	Help       string
	TakesValue bool
	Repeatable bool   // value flag may occur multiple times
	Default    string // reported when a value flag is absent
}

// Positional declares a positional parameter.
type Positional struct {
	Name     string // retrieval key
	Value    string // display name in usage text, e.g. "TEXT"
	Help     string
	Required bool
	Multiple bool
	Default  string // bound when the parameter is optional and absent
}

// Spec is the immutable description of an applet's command-line surface.
// Build one per run; it never changes after construction.
type Spec struct {
	Name        string
	Version     string
	About       string
	Positionals []Positional
	Flags       []Flag
}

// UsageError reports an argument vector that does not satisfy the Spec.
type UsageError struct {
	Prog string
	Msg  string
}

func (e *UsageError) Error() string { return e.Prog + ": " + e.Msg }

// RetrievalError reports a value lookup against a name the Spec never
// declared. It is a different failure class from UsageError: the argv was
// valid, the applet asked the parse result a question it cannot answer.
type RetrievalError struct {
	Prog string
	Name string
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("%s: no parameter named %q", e.Prog, e.Name)
}

// Invocation is the result of a successful Parse. It is consumed by the
// single execution flow that produced it and never mutated.
type Invocation struct {
	spec      *Spec
	flags     map[string]string
	repeated  map[string][]string
	pos       map[string][]string
	defaulted map[string]bool
}

func (s *Spec) usageErr(msg string) *UsageError {
	return &UsageError{Prog: s.Name, Msg: msg}
}

func (s *Spec) findShort(c byte) *Flag {
	for i := range s.Flags {
		if s.Flags[i].Short == c {
			return &s.Flags[i]
		}
	}
	return nil
}

func (s *Spec) findLong(name string) *Flag {
	for i := range s.Flags {
		if s.Flags[i].Long == name && name != "" {
			return &s.Flags[i]
		}
	}
	return nil
}

func (s *Spec) findFlag(name string) *Flag {
	for i := range s.Flags {
		if s.Flags[i].Name == name {
			return &s.Flags[i]
		}
	}
	return nil
}

func (s *Spec) findPositional(name string) *Positional {
	for i := range s.Positionals {
		if s.Positionals[i].Name == name {
			return &s.Positionals[i]
		}
	}
	return nil
}

// Parse matches args against the Spec. Value-taking flags consume the rest
// of their short cluster or the following argument verbatim, so negative
// numbers like "-n -3" survive intact.
func (s *Spec) Parse(args []string) (*Invocation, error) {
	inv := &Invocation{
		spec:      s,
		flags:     make(map[string]string),
		repeated:  make(map[string][]string),
		pos:       make(map[string][]string),
		defaulted: make(map[string]bool),
	}
	var operands []string

scan:
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			operands = append(operands, args[i+1:]...)
			break scan
		case arg == "--help":
			return nil, ErrHelp
		case arg == "--version":
			return nil, ErrVersion
		case strings.HasPrefix(arg, "--"):
			name := arg[2:]
			value := ""
			hasValue := false
			if eq := strings.IndexByte(name, '='); eq >= 0 {
				name, value, hasValue = name[:eq], name[eq+1:], true
			}
			f := s.findLong(name)
			if f == nil {
				return nil, s.usageErr("unexpected argument '--" + name + "'")
			}
			if !f.TakesValue {
				if hasValue {
					return nil, s.usageErr("unexpected value for '--" + name + "'")
				}
				inv.flags[f.Name] = "true"
				continue
			}
			if !hasValue {
				if i+1 >= len(args) {
					return nil, s.usageErr("a value is required for '--" + name + "'")
				}
				i++
				value = args[i]
			}
			inv.setValue(f, value)
		case len(arg) > 1 && arg[0] == '-':
			for j := 1; j < len(arg); j++ {
				c := arg[j]
				f := s.findShort(c)
				if f == nil {
					if c == 'h' {
						return nil, ErrHelp
					}
					if c == 'V' {
						return nil, ErrVersion
					}
					return nil, s.usageErr("invalid option -- '" + string(c) + "'")
				}
				if !f.TakesValue {
					inv.flags[f.Name] = "true"
					continue
				}
				if j+1 < len(arg) {
					inv.setValue(f, arg[j+1:])
				} else {
					if i+1 >= len(args) {
						return nil, s.usageErr("a value is required for '-" + string(c) + "'")
					}
					i++
					inv.setValue(f, args[i])
				}
				continue scan
			}
		default:
			operands = append(operands, arg)
		}
	}

	if err := s.bindPositionals(inv, operands); err != nil {
		return nil, err
	}
	return inv, nil
}

// bindPositionals assigns operands to positional definitions in order. A
// Multiple positional claims everything not needed by later singles.
func (s *Spec) bindPositionals(inv *Invocation, operands []string) error {
	rest := operands
	for idx := range s.Positionals {
		p := &s.Positionals[idx]
		if p.Multiple {
			later := len(s.Positionals) - idx - 1
			take := len(rest) - later
			if take > 0 {
				inv.pos[p.Name] = append([]string(nil), rest[:take]...)
				rest = rest[take:]
			}
		} else if len(rest) > 0 {
			inv.pos[p.Name] = rest[:1:1]
			rest = rest[1:]
		}
		if _, bound := inv.pos[p.Name]; !bound {
			if p.Required {
				return s.usageErr(
					"the following required arguments were not provided: " + p.display())
			}
			if p.Default != "" {
				inv.pos[p.Name] = []string{p.Default}
				inv.defaulted[p.Name] = true
			}
		}
	}
	if len(rest) > 0 {
		return s.usageErr("unexpected argument '" + rest[0] + "'")
	}
	return nil
}

func (p *Positional) display() string {
	d := "<" + p.Value + ">"
	if p.Multiple {
		d += "..."
	}
	return d
}

func (inv *Invocation) setValue(f *Flag, value string) {
	if f.Repeatable {
		inv.repeated[f.Name] = append(inv.repeated[f.Name], value)
		return
	}
	inv.flags[f.Name] = value
}

// Values returns every value supplied for a repeatable flag, in order.
func (inv *Invocation) Values(name string) []string {
	return inv.repeated[name]
}

// Strings returns the ordered values collected for a positional parameter.
// The slice is nil when an optional parameter was absent with no default;
// for a required parameter a successful Parse guarantees at least one
// element.
func (inv *Invocation) Strings(name string) ([]string, error) {
	if inv.spec.findPositional(name) == nil {
		return nil, &RetrievalError{Prog: inv.spec.Name, Name: name}
	}
	return inv.pos[name], nil
}

// String returns the value of a value flag (its Default when absent) or the
// first value of a positional parameter.
func (inv *Invocation) String(name string) (string, error) {
	if f := inv.spec.findFlag(name); f != nil && f.TakesValue {
		if v, ok := inv.flags[name]; ok {
			return v, nil
		}
		return f.Default, nil
	}
	if inv.spec.findPositional(name) != nil {
		if vs := inv.pos[name]; len(vs) > 0 {
			return vs[0], nil
		}
		return "", nil
	}
	return "", &RetrievalError{Prog: inv.spec.Name, Name: name}
}

// Bool reports whether a boolean flag was present.
func (inv *Invocation) Bool(name string) bool {
	return inv.flags[name] == "true"
}

// Present reports whether a flag or positional was explicitly supplied,
// as opposed to absent or filled in from its default.
func (inv *Invocation) Present(name string) bool {
	if _, ok := inv.flags[name]; ok {
		return true
	}
	if len(inv.repeated[name]) > 0 {
		return true
	}
	_, bound := inv.pos[name]
	return bound && !inv.defaulted[name]
}

// UsageLine returns the one-line synopsis.
func (s *Spec) UsageLine() string {
	var b strings.Builder
	b.WriteString("Usage: " + s.Name)
	if len(s.Flags) > 0 {
		b.WriteString(" [OPTIONS]")
	}
	for _, p := range s.Positionals {
		if p.Required {
			b.WriteString(" " + p.display())
		} else {
			d := "[" + p.Value + "]"
			if p.Multiple {
				d += "..."
			}
			b.WriteString(" " + d)
		}
	}
	return b.String()
}

// Usage returns the full help text derived from the Spec.
func (s *Spec) Usage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n%s\n\n%s\n", s.Name, s.Version, s.About, s.UsageLine())
	if len(s.Positionals) > 0 {
		b.WriteString("\nArguments:\n")
		for _, p := range s.Positionals {
			fmt.Fprintf(&b, "  %-20s %s\n", p.display(), p.Help)
		}
	}
	b.WriteString("\nOptions:\n")
	for _, f := range s.Flags {
		b.WriteString("  " + optionColumn(&f) + "\n")
	}
	fmt.Fprintf(&b, "  %-20s %s\n", "-h, --help", "Print help")
	fmt.Fprintf(&b, "  %-20s %s\n", "-V, --version", "Print version")
	return b.String()
}

func optionColumn(f *Flag) string {
	var forms []string
	if f.Short != 0 {
		forms = append(forms, "-"+string(f.Short))
	}
	if f.Long != "" {
		forms = append(forms, "--"+f.Long)
	}
	col := strings.Join(forms, ", ")
	if f.TakesValue {
		col += " <" + strings.ToUpper(f.Name) + ">"
	}
	return fmt.Sprintf("%-20s %s", col, f.Help)
}

// Exit maps a Parse failure onto the process contract: the implicit help
// and version flags print to stdout and succeed, anything else is a usage
// failure on stderr.
func Exit(stdio *core.Stdio, s *Spec, err error) int {
	switch {
	case errors.Is(err, ErrHelp):
		stdio.Print(s.Usage())
		return core.ExitSuccess
	case errors.Is(err, ErrVersion):
		stdio.Printf("%s %s\n", s.Name, s.Version)
		return core.ExitSuccess
	}
	stdio.Errorf("%s\n%s\n", err, s.UsageLine())
	return core.ExitUsage
}
