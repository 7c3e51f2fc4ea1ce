// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package harness

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/stretchr/testify/assert"

	"github.com/flatcar/utf/harness/callsite"
	"github.com/flatcar/utf/harness/testresult"
)

// failNow unwinds a test body after its first failure. Test.Run
// recovers it.
type failNow struct{}

// T is passed to every test body. The first failing assertion records
// its source text and line, then stops the body; nothing after it runs.
// Assertions must be called from the goroutine running the test.
type T struct {
	name    string
	outcome testresult.Outcome
}

func (t *T) Name() string {
	return t.name
}

func (t *T) Failed() bool {
	return t.outcome.Result == testresult.Fail
}

func (t *T) AssertTrue(cond bool) {
	if !cond {
		t.fail("AssertTrue", "AssertTrue(false)")
	}
}

func (t *T) AssertFalse(cond bool) {
	if cond {
		t.fail("AssertFalse", "AssertFalse(true)")
	}
}

// AssertEqual compares a and b with deep equality; byte slices are
// compared by content.
func (t *T) AssertEqual(a, b interface{}) {
	if !assert.ObjectsAreEqual(a, b) {
		t.fail("AssertEqual", fmt.Sprintf("AssertEqual(%#v, %#v)", a, b))
	}
}

func (t *T) AssertNotEqual(a, b interface{}) {
	if assert.ObjectsAreEqual(a, b) {
		t.fail("AssertNotEqual", fmt.Sprintf("AssertNotEqual(%#v, %#v)", a, b))
	}
}

// AssertAlmostEqual requires |a - b| < epsilon. A difference of exactly
// epsilon fails.
func (t *T) AssertAlmostEqual(a, b, epsilon float64) {
	if !AlmostEqual(a, b, epsilon) {
		t.fail("AssertAlmostEqual", fmt.Sprintf("AssertAlmostEqual(%v, %v, %v)", a, b, epsilon))
	}
}

// Fail stops the test and reports msg as the failure.
func (t *T) Fail(msg string) {
	t.failMessage(msg)
}

func (t *T) Failf(format string, args ...interface{}) {
	t.failMessage(fmt.Sprintf(format, args...))
}

// AlmostEqual reports whether |a - b| < epsilon. The arguments are
// compared as the shortest decimals that round-trip to them, which is
// what was written in the source, so AlmostEqual(5.0, 5.001, 0.001) is
// false even though the binary difference is slightly below 0.001.
func AlmostEqual(a, b, epsilon float64) bool {
	for _, f := range []float64{a, b, epsilon} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return a-b < epsilon && b-a < epsilon
		}
	}
	d := new(big.Rat).Sub(decimal(a), decimal(b))
	return d.Abs(d).Cmp(decimal(epsilon)) < 0
}

func decimal(f float64) *big.Rat {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 64))
	if !ok {
		// finite floats always format to something SetString accepts
		panic(fmt.Sprintf("harness: cannot convert %v", f))
	}
	return r
}

// fail must be called directly by an exported assertion so the call
// site is two frames up.
func (t *T) fail(fn, fallback string) {
	loc := callsite.Caller(2, fn)
	msg := loc.Expr
	if msg == "" {
		msg = fallback
	}
	t.record(msg, loc)
}

func (t *T) failMessage(msg string) {
	t.record(msg, callsite.Here(2))
}

func (t *T) record(msg string, loc callsite.Location) {
	t.outcome.Result = testresult.Fail
	t.outcome.Message = msg
	t.outcome.File = loc.File
	t.outcome.Line = loc.Line
	panic(failNow{})
}
