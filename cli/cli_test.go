// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/coreos/pkg/capnslog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreRun(t *testing.T) {
	var calls []string
	root := &cobra.Command{
		Use: "root",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			calls = append(calls, "original")
		},
		Run: func(cmd *cobra.Command, args []string) {
			calls = append(calls, "run")
		},
	}
	WrapPreRun(root, func(cmd *cobra.Command, args []string) error {
		calls = append(calls, "wrapper")
		return nil
	})
	root.SetArgs(nil)

	require.NoError(t, root.Execute())
	assert.Equal(t, []string{"wrapper", "original", "run"}, calls)
}

func TestWrapPreRunError(t *testing.T) {
	ran := false
	root := &cobra.Command{
		Use:           "root",
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, args []string) {
			ran = true
		},
	}
	boom := errors.New("boom")
	WrapPreRun(root, func(cmd *cobra.Command, args []string) error {
		return boom
	})
	root.SetArgs(nil)

	assert.ErrorIs(t, root.Execute(), boom)
	assert.False(t, ran)
}

func TestAddLogFlags(t *testing.T) {
	defer func() {
		logDebug, logVerbose, logLevel = false, false, capnslog.NOTICE
		capnslog.SetFormatter(capnslog.NewStringFormatter(os.Stderr))
		capnslog.SetGlobalLogLevel(capnslog.INFO)
	}()

	var stderr bytes.Buffer
	root := &cobra.Command{
		Use: "root",
		Run: func(cmd *cobra.Command, args []string) {
			plog.Debug("visible at debug")
		},
	}
	AddLogFlags(root)
	root.SetArgs([]string{"-d"})
	root.SetErr(&stderr)

	require.NoError(t, root.Execute())
	assert.Equal(t, capnslog.DEBUG, logLevel)
	assert.Contains(t, stderr.String(), "visible at debug")
}
