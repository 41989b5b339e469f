package tail_test

import (
	"testing"

	"github.com/dkuku/rust-cli-book/pkg/applets/tail"
	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/testutil"
)

func TestTail(t *testing.T) {
	files := map[string]string{
		"twelve.txt": "one\ntwo\nthree\nfour\nfive\nsix\nseven\neight\nnine\nten\neleven\ntwelve\n",
		"short.txt":  "a\nb\nc\n",
		"alpha.txt":  "abcdefgh\n",
		"empty.txt":  "",
	}

	tests := []testutil.AppletTestCase{
		{Name: "default_last_ten", Args: []string{"twelve.txt"}, Files: files,
			WantCode: core.ExitSuccess,
			WantOut:  "three\nfour\nfive\nsix\nseven\neight\nnine\nten\neleven\ntwelve\n"},
		{Name: "last_two_lines", Args: []string{"-n", "2", "short.txt"}, Files: files,
			WantCode: core.ExitSuccess, WantOut: "b\nc\n"},
		{Name: "negative_count_same_as_bare", Args: []string{"-n", "-2", "short.txt"}, Files: files,
			WantCode: core.ExitSuccess, WantOut: "b\nc\n"},
		{Name: "from_start_with_plus", Args: []string{"-n", "+2", "short.txt"}, Files: files,
			WantCode: core.ExitSuccess, WantOut: "b\nc\n"},
		{Name: "plus_zero_whole_file", Args: []string{"-n", "+0", "short.txt"}, Files: files,
			WantCode: core.ExitSuccess, WantOut: "a\nb\nc\n"},
		{Name: "zero_lines_prints_nothing", Args: []string{"-n", "0", "short.txt"}, Files: files,
			WantCode: core.ExitSuccess, WantOut: ""},
		{Name: "last_bytes", Args: []string{"-c", "4", "alpha.txt"}, Files: files,
			WantCode: core.ExitSuccess, WantOut: "fgh\n"},
		{Name: "bytes_from_start", Args: []string{"-c", "+3", "alpha.txt"}, Files: files,
			WantCode: core.ExitSuccess, WantOut: "cdefgh\n"},
		{Name: "empty_file", Args: []string{"empty.txt"}, Files: files,
			WantCode: core.ExitSuccess, WantOut: ""},
		{Name: "multiple_files_headers", Args: []string{"-n", "1", "short.txt", "alpha.txt"}, Files: files,
			WantCode: core.ExitSuccess,
			WantOut:  "==> short.txt <==\nc\n\n==> alpha.txt <==\nabcdefgh\n"},
		{Name: "quiet_suppresses_headers", Args: []string{"-q", "-n", "1", "short.txt", "alpha.txt"}, Files: files,
			WantCode: core.ExitSuccess, WantOut: "c\nabcdefgh\n"},
		{Name: "illegal_line_count", Args: []string{"-n", "foo", "short.txt"}, Files: files,
			WantCode: core.ExitUsage, WantErr: "illegal line count -- foo"},
		{Name: "illegal_byte_count", Args: []string{"-c", "3.14", "short.txt"}, Files: files,
			WantCode: core.ExitUsage, WantErr: "illegal byte count -- 3.14"},
		{Name: "lines_conflicts_bytes", Args: []string{"-n", "1", "-c", "1", "short.txt"}, Files: files,
			WantCode: core.ExitUsage, WantErr: "cannot be used with"},
		{Name: "missing_file", Args: []string{"nope.txt"}, WantCode: core.ExitFailure,
			WantErr: "nope.txt:"},
		{Name: "no_files", Args: []string{}, WantCode: core.ExitUsage,
			WantErr: "required arguments were not provided"},
	}

	testutil.RunAppletTests(t, tail.Run, tests)
}
