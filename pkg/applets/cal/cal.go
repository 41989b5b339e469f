// Package cal implements the cal command.
package cal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/dkuku/rust-cli-book/pkg/core"
	"github.com/dkuku/rust-cli-book/pkg/core/cli"
)

var monthNames = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

const (
	highlightOn  = "\x1b[7m"
	highlightOff = "\x1b[0m"
)

func spec() *cli.Spec {
	return &cli.Spec{
		Name:    "cal",
		Version: "0.1.0",
		About:   "display a calendar",
		Positionals: []cli.Positional{
			{Name: "year", Value: "YEAR", Help: "Year (1-9999)"},
		},
		Flags: []cli.Flag{
			{Name: "month", Short: 'm', Help: "Month name or number (1-12)", TakesValue: true},
			{Name: "show_year", Short: 'y', Long: "year", Help: "Show whole current year"},
		},
	}
}

// Run executes the cal command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	s := spec()
	inv, err := s.Parse(args)
	if err != nil {
		return cli.Exit(stdio, s, err)
	}

	now := time.Now()
	if inv.Bool("show_year") && (inv.Present("year") || inv.Present("month")) {
		return core.UsageError(stdio, "cal", "the argument '--year' cannot be used with '-m' or '[YEAR]'")
	}

	year := now.Year()
	if inv.Present("year") {
		yearVal, _ := inv.String("year")
		year, err = parseYear(yearVal)
		if err != nil {
			return core.UsageError(stdio, "cal", err.Error())
		}
	}

	// Highlighting is only useful on a real terminal.
	var today time.Time
	if f, ok := stdio.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		today = now
	}

	if inv.Present("month") {
		monthVal, _ := inv.String("month")
		month, err := parseMonth(monthVal)
		if err != nil {
			return core.UsageError(stdio, "cal", err.Error())
		}
		for _, row := range formatMonth(year, month, true, today) {
			stdio.Println(row)
		}
		return core.ExitSuccess
	}

	for _, row := range formatYear(year, today) {
		stdio.Println(row)
	}
	return core.ExitSuccess
}

// formatMonth renders one month as eight rows, each 22 characters wide:
// header, weekday banner, and six week rows.
func formatMonth(year, month int, printYear bool, today time.Time) []string {
	rows := []string{
		formatMonthHeader(year, month, printYear),
		"Su Mo Tu We Th Fr Sa  ",
	}
	return append(rows, formatDays(year, month, today)...)
}

func formatMonthHeader(year, month int, printYear bool) string {
	name := monthNames[month-1]
	if printYear {
		name = fmt.Sprintf("%s %d", name, year)
	}
	return center(name, 20) + "  "
}

func formatDays(year, month int, today time.Time) []string {
	cells := make([]string, 42)
	for i := range cells {
		cells[i] = "  "
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	padding := int(first.Weekday())
	days := lastDayInMonth(year, month)
	isToday := func(day int) bool {
		return today.Year() == year && int(today.Month()) == month && today.Day() == day
	}

	for day := 1; day <= days; day++ {
		cell := fmt.Sprintf("%2d", day)
		if isToday(day) {
			cell = highlightOn + cell + highlightOff
		}
		cells[padding+day-1] = cell
	}

	rows := make([]string, 0, 6)
	for week := 0; week < 6; week++ {
		rows = append(rows, strings.Join(cells[week*7:week*7+7], " ")+"  ")
	}
	return rows
}

// formatYear renders a centered year banner followed by the twelve months
// in four rows of three columns.
func formatYear(year int, today time.Time) []string {
	rows := []string{center(strconv.Itoa(year), 64), ""}
	for quarter := 0; quarter < 4; quarter++ {
		months := [3][]string{}
		for i := range months {
			months[i] = formatMonth(year, quarter*3+i+1, false, today)
		}
		for line := 0; line < len(months[0]); line++ {
			rows = append(rows, months[0][line]+months[1][line]+months[2][line])
		}
		if quarter < 3 {
			rows = append(rows, "")
		}
	}
	return rows
}

func lastDayInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1).Day()
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func parseMonth(val string) (int, error) {
	if n, err := strconv.Atoi(val); err == nil {
		if n >= 1 && n <= 12 {
			return n, nil
		}
		return 0, fmt.Errorf("month '%s' not in the range 1 through 12", val)
	}
	lower := strings.ToLower(val)
	for i, name := range monthNames {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("month '%s' not in the range 1 through 12", val)
}

func parseYear(val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil || n < 1 || n > 9999 {
		return 0, fmt.Errorf("year '%s' not in the range 1 through 9999", val)
	}
	return n, nil
}
