package uniq_test

import (
	"path/filepath"
	"testing"

	"github.com/dkuku/rust-cli-book/pkg/applets/uniq"
	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/testutil"
)

func TestUniq(t *testing.T) {
	files := map[string]string{
		"skip.txt":  "a\na\nb\na\n",
		"three.txt": "x\nx\nx\n",
		"empty.txt": "",
	}

	tests := []testutil.AppletTestCase{
		{Name: "stdin", Args: []string{}, Input: "a\na\nb\n", WantCode: core.ExitSuccess, WantOut: "a\nb\n"},
		{Name: "stdin_count", Args: []string{"-c"}, Input: "a\na\nb\n", WantCode: core.ExitSuccess,
			WantOut: "   2 a\n   1 b\n"},
		{Name: "file", Args: []string{"skip.txt"}, Files: files, WantCode: core.ExitSuccess,
			WantOut: "a\nb\na\n"},
		{Name: "file_count", Args: []string{"-c", "three.txt"}, Files: files, WantCode: core.ExitSuccess,
			WantOut: "   3 x\n"},
		{Name: "empty", Args: []string{"empty.txt"}, Files: files, WantCode: core.ExitSuccess, WantOut: ""},
		{Name: "no_trailing_newline", Args: []string{}, Input: "a\na", WantCode: core.ExitSuccess,
			WantOut: "a\n"},
		{Name: "trailing_whitespace_equal", Args: []string{"-c"}, Input: "a\na \n", WantCode: core.ExitSuccess,
			WantOut: "   2 a\n"},
		{Name: "out_file", Args: []string{"skip.txt", "out.txt"}, Files: files, WantCode: core.ExitSuccess,
			WantOut: "",
			Check: func(t *testing.T, dir string) {
				testutil.AssertFileContent(t, filepath.Join(dir, "out.txt"), "a\nb\na\n")
			}},
		{Name: "missing_file", Args: []string{"nope.txt"}, WantCode: core.ExitFailure, WantErr: "nope.txt"},
	}

	testutil.RunAppletTests(t, uniq.Run, tests)
}
