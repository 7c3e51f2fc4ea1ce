// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package reporters

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/flatcar/utf/harness/testresult"
)

const header = "--- TESTS ---"

type consoleReporter struct {
	w     io.Writer
	quiet bool

	pass   *color.Color
	fail   *color.Color
	detail *color.Color
}

// NewConsoleReporter prints one line per test and a final tally to w.
// In quiet mode passing tests are not printed at all.
func NewConsoleReporter(w io.Writer, quiet, colorize bool) Reporter {
	r := &consoleReporter{
		w:      w,
		quiet:  quiet,
		pass:   color.New(color.FgGreen, color.Bold),
		fail:   color.New(color.FgRed, color.Bold),
		detail: color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{r.pass, r.fail, r.detail} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// IsTerminal reports whether colored output makes sense for w: it must
// be a terminal and NO_COLOR must not be set.
func IsTerminal(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (r *consoleReporter) Begin() {
	fmt.Fprintln(r.w, header)
}

func (r *consoleReporter) TestStarted(name string) {
	if !r.quiet {
		fmt.Fprintf(r.w, "%s...", name)
	}
}

func (r *consoleReporter) TestFinished(name string, outcome testresult.Outcome) {
	if outcome.Passed() {
		if !r.quiet {
			fmt.Fprintln(r.w, r.pass.Sprint(testresult.Pass))
		}
		return
	}

	// the name was held back, print it now that it matters
	if r.quiet {
		fmt.Fprintf(r.w, "%s...", name)
	}
	fmt.Fprintln(r.w, r.fail.Sprint(testresult.Fail))
	fmt.Fprintln(r.w, r.detail.Sprintf("Line %d: %s", outcome.Line, outcome.Message))
}

func (r *consoleReporter) End(pass, fail int) {
	fmt.Fprintf(r.w, "%d tests passed, %d tests failed\n", pass, fail)
}
