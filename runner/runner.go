// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

// Package runner is the command line front end of a test binary. It
// selects tests from a harness.Registry by name, runs them in
// registration order and prints a tally.
package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/coreos/pkg/capnslog"
	"github.com/spf13/cobra"

	"github.com/flatcar/utf/cli"
	"github.com/flatcar/utf/harness"
	"github.com/flatcar/utf/harness/reporters"
)

var (
	plog = capnslog.NewPackageLogger("github.com/flatcar/utf", "runner")

	// ErrTestsFailed is returned for a run with failures when
	// Options.Strict is set.
	ErrTestsFailed = errors.New("tests failed")
)

// UnknownTestError is returned when a test name given on the command
// line is not registered. No test runs in that case.
type UnknownTestError struct {
	Name string
}

func (e *UnknownTestError) Error() string {
	return fmt.Sprintf("%s is not a test", e.Name)
}

type Summary struct {
	Passed int
	Failed int
}

// Main runs the command line against the Default registry. It does not
// return. A test binary's main function is usually just:
//
//	func main() {
//		runner.Main()
//	}
func Main() {
	cli.Execute(NewCommand(harness.Default, &Options{}))
}

// NewCommand builds the root command of a test binary. Positional
// arguments name the tests to run; without any, every test runs.
func NewCommand(reg *harness.Registry, opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   filepath.Base(os.Args[0]) + " [TEST_NAME ...]",
		Short: "Run the test cases compiled into this binary",
		Long: `Run the test cases compiled into this binary.

Only the test cases whose names are listed are run. If no test names are
specified, all discovered tests are run in the order they were declared.
Use -- before names that start with a dash.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, reg, args)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	// replaces cobra's own help flag, see exitFlag
	opts.addExitFlag(cmd.Flags(), &opts.help, "help", "h",
		"show this help message and exit").help = true
	opts.AddFlags(cmd.Flags())
	return cmd
}

func (o *Options) run(cmd *cobra.Command, reg *harness.Registry, args []string) error {
	w := cmd.OutOrStdout()

	if f := o.firstExit(); f != nil {
		if f.names > len(args) {
			f.names = len(args)
		}
		if _, err := selectTests(reg, args[:f.names]); err != nil {
			return err
		}
		if f.name == "help" {
			return cmd.Help()
		}
		for _, name := range reg.Names() {
			fmt.Fprintln(w, name)
		}
		return nil
	}

	rep := reporters.Reporters{
		reporters.NewConsoleReporter(w, o.Quiet, o.Color.Enabled(w)),
		reporters.NewLogReporter(),
	}
	summary, err := Run(reg, args, rep)
	if err != nil {
		return err
	}
	o.Summary = summary

	if o.Strict && summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrTestsFailed,
			summary.Failed, summary.Passed+summary.Failed)
	}
	return nil
}

// Run executes the named tests, or all of them if names is empty, in
// registration order. Every name must be registered; the first one that
// is not aborts the run before anything executes.
func Run(reg *harness.Registry, names []string, rep reporters.Reporter) (Summary, error) {
	var summary Summary

	sel, err := selectTests(reg, names)
	if err != nil {
		return summary, err
	}

	rep.Begin()
	for i, test := range reg.Tests() {
		if !sel.includes(i) {
			continue
		}
		if harness.RunOne(test, rep).Passed() {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}
	rep.End(summary.Passed, summary.Failed)
	return summary, nil
}

// selection marks registry positions chosen on the command line. A nil
// selection includes everything.
type selection map[int]bool

func selectTests(reg *harness.Registry, names []string) (selection, error) {
	if len(names) == 0 {
		plog.Debugf("Running all %d tests", reg.Len())
		return nil, nil
	}

	sel := make(selection, len(names))
	for _, name := range names {
		i := reg.Index(name)
		if i < 0 {
			return nil, &UnknownTestError{Name: name}
		}
		sel[i] = true
	}
	plog.Debugf("Running %d of %d tests", len(sel), reg.Len())
	return sel, nil
}

func (s selection) includes(i int) bool {
	return s == nil || s[i]
}
