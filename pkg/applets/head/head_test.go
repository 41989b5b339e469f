package head_test

import (
	"testing"

	"github.com/dkuku/rust-cli-book/pkg/applets/head"
	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/testutil"
)

func TestHead(t *testing.T) {
	files := map[string]string{
		"ten.txt":        "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n",
		"three.txt":      "a\nb\nc\n",
		"no_newline.txt": "x\ny",
	}

	tests := []testutil.AppletTestCase{
		{Name: "default_ten", Args: []string{"ten.txt"}, Files: files, WantCode: core.ExitSuccess,
			WantOut: "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n"},
		{Name: "fewer_lines_than_limit", Args: []string{"three.txt"}, Files: files, WantCode: core.ExitSuccess,
			WantOut: "a\nb\nc\n"},
		{Name: "two_lines", Args: []string{"-n", "2", "ten.txt"}, Files: files, WantCode: core.ExitSuccess,
			WantOut: "1\n2\n"},
		{Name: "lines_long_flag", Args: []string{"--lines", "2", "ten.txt"}, Files: files, WantCode: core.ExitSuccess,
			WantOut: "1\n2\n"},
		{Name: "bytes", Args: []string{"-c", "4", "ten.txt"}, Files: files, WantCode: core.ExitSuccess,
			WantOut: "1\n2\n"},
		{Name: "no_trailing_newline", Args: []string{"no_newline.txt"}, Files: files, WantCode: core.ExitSuccess,
			WantOut: "x\ny"},
		{Name: "stdin", Args: []string{"-n", "1"}, Input: "top\nbottom\n", WantCode: core.ExitSuccess,
			WantOut: "top\n"},
		{Name: "multiple_files", Args: []string{"-n", "1", "three.txt", "ten.txt"}, Files: files,
			WantCode: core.ExitSuccess,
			WantOut:  "==> three.txt <==\na\n\n==> ten.txt <==\n1\n"},
		{Name: "bad_line_count", Args: []string{"-n", "foo", "three.txt"}, Files: files,
			WantCode: core.ExitUsage, WantErr: "illegal line count -- foo"},
		{Name: "zero_line_count", Args: []string{"-n", "0", "three.txt"}, Files: files,
			WantCode: core.ExitUsage, WantErr: "illegal line count -- 0"},
		{Name: "bad_byte_count", Args: []string{"-c", "x", "three.txt"}, Files: files,
			WantCode: core.ExitUsage, WantErr: "illegal byte count -- x"},
		{Name: "missing_file", Args: []string{"nope.txt"}, WantCode: core.ExitFailure, WantErr: "nope.txt"},
	}

	testutil.RunAppletTests(t, head.Run, tests)
}
