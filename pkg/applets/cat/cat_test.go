package cat_test

import (
	"testing"

	"github.com/dkuku/rust-cli-book/pkg/applets/cat"
	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/testutil"
)

func TestCat(t *testing.T) {
	files := map[string]string{
		"plain.txt": "one\ntwo\nthree\n",
		"blank.txt": "a\n\n\n\nb\n",
		"tabs.txt":  "x\ty\n",
	}

	tests := []testutil.AppletTestCase{
		{Name: "stdin", Args: []string{}, Input: "hello\nworld\n", WantCode: core.ExitSuccess, WantOut: "hello\nworld\n"},
		{Name: "single_file", Args: []string{"plain.txt"}, Files: files, WantCode: core.ExitSuccess, WantOut: "one\ntwo\nthree\n"},
		{Name: "two_files", Args: []string{"plain.txt", "tabs.txt"}, Files: files, WantCode: core.ExitSuccess, WantOut: "one\ntwo\nthree\nx\ty\n"},
		{Name: "number", Args: []string{"-n", "plain.txt"}, Files: files, WantCode: core.ExitSuccess,
			WantOut: "     1\tone\n     2\ttwo\n     3\tthree\n"},
		{Name: "number_nonblank", Args: []string{"-b", "blank.txt"}, Files: files, WantCode: core.ExitSuccess,
			WantOut: "     1\ta\n\n\n\n     2\tb\n"},
		{Name: "show_ends", Args: []string{"-E", "plain.txt"}, Files: files, WantCode: core.ExitSuccess,
			WantOut: "one$\ntwo$\nthree$\n"},
		{Name: "squeeze_blank", Args: []string{"-s", "blank.txt"}, Files: files, WantCode: core.ExitSuccess,
			WantOut: "a\n\nb\n"},
		{Name: "missing_file", Args: []string{"nope.txt"}, WantCode: core.ExitFailure, WantErr: "Failed to open nope.txt"},
		{Name: "missing_then_good", Args: []string{"nope.txt", "plain.txt"}, Files: files,
			WantCode: core.ExitFailure, WantOut: "one\ntwo\nthree\n", WantErr: "Failed to open nope.txt"},
		{Name: "bad_flag", Args: []string{"-z"}, WantCode: core.ExitUsage, WantErr: "invalid option -- 'z'"},
	}

	testutil.RunAppletTests(t, cat.Run, tests)
}
