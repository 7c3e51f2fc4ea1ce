// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"strconv"

	"github.com/spf13/pflag"
)

// exitFlag is a boolean flag that ends the command line where it
// appears, like -h and -n. pflag sets every flag before RunE sees the
// positional arguments, so the flag notes how many of them came first;
// those names are still checked.
type exitFlag struct {
	name  string
	fs    *pflag.FlagSet
	value *bool
	seq   *int

	// order is the value of seq when the flag was first set
	order int
	names int

	// help must always read as false to cobra, otherwise it prints the
	// usage before RunE can look at the names ahead of -h.
	help bool
}

func (f *exitFlag) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if v && !*f.value {
		*f.seq++
		f.order = *f.seq
		f.names = f.fs.NArg()
	}
	*f.value = v
	return nil
}

func (f *exitFlag) String() string {
	if f.help {
		return "false"
	}
	return strconv.FormatBool(*f.value)
}

func (f *exitFlag) Type() string {
	return "bool"
}

func (o *Options) addExitFlag(fs *pflag.FlagSet, value *bool, name, shorthand, usage string) *exitFlag {
	f := &exitFlag{name: name, fs: fs, value: value, seq: &o.seq}
	fs.VarPF(f, name, shorthand, usage).NoOptDefVal = "true"
	o.exits = append(o.exits, f)
	return f
}

// firstExit returns the -h or -n flag that came first on the command
// line, or nil if neither was given.
func (o *Options) firstExit() *exitFlag {
	var first *exitFlag
	for _, f := range o.exits {
		if *f.value && (first == nil || f.order < first.order) {
			first = f
		}
	}
	return first
}
