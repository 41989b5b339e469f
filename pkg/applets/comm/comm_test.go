package comm_test

import (
	"testing"

	"github.com/dkuku/rust-cli-book/pkg/applets/comm"
	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/testutil"
)

func TestComm(t *testing.T) {
	files := map[string]string{
		"a.txt":     "apple\nbanana\ncherry\n",
		"b.txt":     "banana\ncherry\ndate\n",
		"upper.txt": "APPLE\nBANANA\n",
		"lower.txt": "apple\n",
	}

	tests := []testutil.AppletTestCase{
		{Name: "three_columns", Args: []string{"a.txt", "b.txt"}, Files: files, WantCode: core.ExitSuccess,
			WantOut: "apple\n\t\tbanana\n\t\tcherry\n\tdate\n"},
		{Name: "suppress_first", Args: []string{"-1", "a.txt", "b.txt"}, Files: files, WantCode: core.ExitSuccess,
			WantOut: "\tbanana\n\tcherry\ndate\n"},
		{Name: "suppress_all_but_common", Args: []string{"-12", "a.txt", "b.txt"}, Files: files,
			WantCode: core.ExitSuccess, WantOut: "banana\ncherry\n"},
		{Name: "custom_delimiter", Args: []string{"-d", "|", "a.txt", "b.txt"}, Files: files,
			WantCode: core.ExitSuccess, WantOut: "apple\n||banana\n||cherry\n|date\n"},
		{Name: "insensitive", Args: []string{"-i", "-12", "upper.txt", "lower.txt"}, Files: files,
			WantCode: core.ExitSuccess, WantOut: "APPLE\n"},
		{Name: "stdin_first", Args: []string{"-", "b.txt"}, Input: "banana\n", Files: files,
			WantCode: core.ExitSuccess, WantOut: "\t\tbanana\n\tcherry\n\tdate\n"},
		{Name: "both_stdin", Args: []string{"-", "-"}, WantCode: core.ExitUsage,
			WantErr: `Both input files cannot be STDIN ("-")`},
		{Name: "missing_second_file", Args: []string{"a.txt"}, Files: files, WantCode: core.ExitUsage,
			WantErr: "required arguments were not provided"},
		{Name: "missing_file", Args: []string{"a.txt", "nope.txt"}, Files: files, WantCode: core.ExitFailure,
			WantErr: "nope.txt"},
	}

	testutil.RunAppletTests(t, comm.Run, tests)
}
