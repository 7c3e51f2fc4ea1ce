// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package testresult

import (
	"time"
)

const (
	Fail TestResult = "FAIL"
	Pass TestResult = "PASS"
)

type TestResult string

// Outcome is the result of a single run of one test. Message, File and
// Line describe the first failing assertion and are only set when the
// result is Fail.
type Outcome struct {
	Result   TestResult
	Message  string
	File     string
	Line     int
	Duration time.Duration
}

func (o Outcome) Passed() bool {
	return o.Result == Pass
}
