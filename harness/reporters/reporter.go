// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package reporters

import (
	"github.com/flatcar/utf/harness/testresult"
)

type Reporters []Reporter

func (reps Reporters) Begin() {
	for _, r := range reps {
		r.Begin()
	}
}

func (reps Reporters) TestStarted(name string) {
	for _, r := range reps {
		r.TestStarted(name)
	}
}

func (reps Reporters) TestFinished(name string, outcome testresult.Outcome) {
	for _, r := range reps {
		r.TestFinished(name, outcome)
	}
}

func (reps Reporters) End(pass, fail int) {
	for _, r := range reps {
		r.End(pass, fail)
	}
}

// Reporter receives the progress of a run. TestStarted is always
// followed by TestFinished for the same test before the next one starts.
type Reporter interface {
	Begin()
	TestStarted(name string)
	TestFinished(name string, outcome testresult.Outcome)
	End(pass, fail int)
}
