package cal_test

import (
	"strings"
	"testing"

	"github.com/dkuku/rust-cli-book/pkg/applets/cal"
	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/testutil"
)

func TestCal(t *testing.T) {
	february2020 := strings.Join([]string{
		"   February 2020      ",
		"Su Mo Tu We Th Fr Sa  ",
		"                   1  ",
		" 2  3  4  5  6  7  8  ",
		" 9 10 11 12 13 14 15  ",
		"16 17 18 19 20 21 22  ",
		"23 24 25 26 27 28 29  ",
		"                      ",
	}, "\n") + "\n"

	tests := []testutil.AppletTestCase{
		{Name: "month_by_number", Args: []string{"-m", "2", "2020"}, WantCode: core.ExitSuccess,
			WantOut: february2020},
		{Name: "month_by_name", Args: []string{"-m", "feb", "2020"}, WantCode: core.ExitSuccess,
			WantOut: february2020},
		{Name: "bad_month", Args: []string{"-m", "13", "2020"}, WantCode: core.ExitUsage,
			WantErr: "month '13' not in the range 1 through 12"},
		{Name: "bad_month_name", Args: []string{"-m", "foo", "2020"}, WantCode: core.ExitUsage,
			WantErr: "month 'foo' not in the range 1 through 12"},
		{Name: "bad_year", Args: []string{"0"}, WantCode: core.ExitUsage,
			WantErr: "year '0' not in the range 1 through 9999"},
		{Name: "year_flag_conflicts_month", Args: []string{"-y", "-m", "2"}, WantCode: core.ExitUsage,
			WantErr: "cannot be used with"},
		{Name: "year_flag_conflicts_year_arg", Args: []string{"-y", "2020"}, WantCode: core.ExitUsage,
			WantErr: "cannot be used with"},
	}

	testutil.RunAppletTests(t, cal.Run, tests)
}

func TestCalWholeYear(t *testing.T) {
	out, _, code := testutil.CaptureAndRun(t, cal.Run, []string{"2020"}, "")
	testutil.AssertExitCode(t, code, core.ExitSuccess)
	output := out.String()
	testutil.AssertOutputContains(t, output, "2020")
	testutil.AssertOutputContains(t, output, "January")
	testutil.AssertOutputContains(t, output, "December")
	if strings.Contains(output, "\x1b[7m") {
		t.Error("no highlight expected when stdout is not a terminal")
	}
}
