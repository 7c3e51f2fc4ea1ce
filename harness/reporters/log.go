// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package reporters

import (
	"github.com/coreos/pkg/capnslog"

	"github.com/flatcar/utf/harness/testresult"
)

var plog = capnslog.NewPackageLogger("github.com/flatcar/utf", "harness/reporters")

type logReporter struct{}

// NewLogReporter mirrors a run into the capnslog stream, which is only
// visible at --verbose or --debug.
func NewLogReporter() Reporter {
	return logReporter{}
}

func (logReporter) Begin() {
	plog.Debug("Starting test run")
}

func (logReporter) TestStarted(name string) {
	plog.Debugf("=== RUN %s", name)
}

func (logReporter) TestFinished(name string, outcome testresult.Outcome) {
	if outcome.Passed() {
		plog.Debugf("--- %s: %s (%v)", outcome.Result, name, outcome.Duration)
		return
	}
	plog.Infof("--- %s: %s (%v) %s:%d: %s", outcome.Result, name,
		outcome.Duration, outcome.File, outcome.Line, outcome.Message)
}

func (logReporter) End(pass, fail int) {
	plog.Infof("Run finished: %d passed, %d failed", pass, fail)
}
