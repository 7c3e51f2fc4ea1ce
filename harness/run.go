// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package harness

import (
	"fmt"
	"time"

	"github.com/flatcar/utf/harness/callsite"
	"github.com/flatcar/utf/harness/reporters"
	"github.com/flatcar/utf/harness/testresult"
)

// Run calls the test body once and returns a fresh outcome. A panic in
// the body other than a failed assertion is reported as a failure at the
// line that panicked.
func (test *Test) Run() (outcome testresult.Outcome) {
	t := &T{
		name:    test.Name,
		outcome: testresult.Outcome{Result: testresult.Pass},
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(failNow); !ok {
				loc := callsite.Panicking()
				t.outcome.Result = testresult.Fail
				t.outcome.Message = fmt.Sprintf("panic: %v", r)
				t.outcome.File = loc.File
				t.outcome.Line = loc.Line
			}
		}
		t.outcome.Duration = time.Since(start)
		outcome = t.outcome
	}()

	test.Func(t)
	return
}

// RunOne runs a single test and hands its progress to rep.
func RunOne(test *Test, rep reporters.Reporter) testresult.Outcome {
	rep.TestStarted(test.Name)
	outcome := test.Run()
	plog.Debugf("%s finished in %v", test.Name, outcome.Duration)
	rep.TestFinished(test.Name, outcome)
	return outcome
}
