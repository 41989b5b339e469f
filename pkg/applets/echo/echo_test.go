package echo_test

import (
	"testing"

	"github.com/dkuku/rust-cli-book/pkg/applets/echo"
	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/testutil"
)

func TestEcho(t *testing.T) {
	tests := []testutil.AppletTestCase{
		{Name: "two_words", Args: []string{"foo", "bar"}, WantCode: core.ExitSuccess, WantOut: "foo bar\n"},
		{Name: "single_word", Args: []string{"hello"}, WantCode: core.ExitSuccess, WantOut: "hello\n"},
		{Name: "no_newline", Args: []string{"-n", "foo", "bar"}, WantCode: core.ExitSuccess, WantOut: "foo bar"},
		{Name: "no_newline_long", Args: []string{"--omit-newline", "foo"}, WantCode: core.ExitSuccess, WantOut: "foo"},
		{Name: "flag_after_text", Args: []string{"foo", "-n"}, WantCode: core.ExitSuccess, WantOut: "foo"},

		// A token with embedded whitespace stays one token
		{Name: "token_preserved", Args: []string{"hello world", "x"}, WantCode: core.ExitSuccess, WantOut: "hello world x\n"},
		{Name: "empty_token", Args: []string{""}, WantCode: core.ExitSuccess, WantOut: "\n"},
		{Name: "double_dash", Args: []string{"--", "-n", "hello"}, WantCode: core.ExitSuccess, WantOut: "-n hello\n"},

		// Missing required TEXT
		{Name: "no_args", Args: []string{}, WantCode: core.ExitUsage, WantErr: "required arguments were not provided"},
		{Name: "flag_only", Args: []string{"-n"}, WantCode: core.ExitUsage, WantErr: "required arguments were not provided"},
		{Name: "unknown_flag", Args: []string{"-x", "hello"}, WantCode: core.ExitUsage, WantErr: "invalid option -- 'x'"},

		{Name: "help", Args: []string{"--help"}, WantCode: core.ExitSuccess, WantErr: ""},
		{Name: "version", Args: []string{"--version"}, WantCode: core.ExitSuccess, WantOut: "echo 0.1.0\n"},
	}

	testutil.RunAppletTests(t, echo.Run, tests)
}

func TestEchoNoStdoutOnUsageError(t *testing.T) {
	out, errBuf, code := testutil.CaptureAndRun(t, echo.Run, nil, "")
	testutil.AssertExitCode(t, code, core.ExitUsage)
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if errBuf.Len() == 0 {
		t.Error("expected a message on stderr")
	}
}

// FuzzEchoJoin checks the join and idempotence properties: output is the
// space-joined tokens plus a newline, byte-identical across repeated runs.
func FuzzEchoJoin(f *testing.F) {
	f.Add("hello", "world")
	f.Add("", "")
	f.Add("a b", "c")
	f.Fuzz(func(t *testing.T, t1, t2 string) {
		t1 = string(testutil.ClampBytes([]byte(t1), testutil.MaxFuzzBytes))
		t2 = string(testutil.ClampBytes([]byte(t2), testutil.MaxFuzzBytes))
		args := []string{"--", t1, t2}

		out1, _, code := testutil.CaptureAndRun(t, echo.Run, args, "")
		testutil.AssertExitCode(t, code, core.ExitSuccess)
		want := t1 + " " + t2 + "\n"
		if out1.String() != want {
			t.Errorf("output = %q, want %q", out1.String(), want)
		}

		out2, _, _ := testutil.CaptureAndRun(t, echo.Run, args, "")
		if out1.String() != out2.String() {
			t.Errorf("repeated run differed: %q vs %q", out1.String(), out2.String())
		}
	})
}
