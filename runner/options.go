// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/flatcar/utf/harness/reporters"
)

// Options configure a run of the test binary. They are normally filled
// from the command line by AddFlags.
type Options struct {
	Quiet     bool
	ShowNames bool
	Color     ColorMode
	// Strict makes a run with failing tests an error. By default the
	// exit status only reflects usage errors.
	Strict bool

	// Summary holds the counts of the last run.
	Summary Summary

	help  bool
	seq   int
	exits []*exitFlag
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.addExitFlag(fs, &o.ShowNames, "show_test_names", "n",
		"print the names of all discovered test cases and exit")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false,
		"print a reduced summary of test results (only show tests that fail)")
	fs.Var(&o.Color, "color", "colorize output: auto, always or never")
	fs.BoolVar(&o.Strict, "strict", false,
		"exit with an error status if any test fails")
}

// ColorMode selects when PASS/FAIL markers are colorized. The zero value
// behaves like ColorAuto.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func (m *ColorMode) String() string {
	if *m == "" {
		return string(ColorAuto)
	}
	return string(*m)
}

func (m *ColorMode) Set(s string) error {
	switch mode := ColorMode(s); mode {
	case ColorAuto, ColorAlways, ColorNever:
		*m = mode
		return nil
	}
	return fmt.Errorf("invalid color mode %q", s)
}

func (m *ColorMode) Type() string {
	return "mode"
}

// Enabled decides whether output written to w gets colors.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return reporters.IsTerminal(w)
}
