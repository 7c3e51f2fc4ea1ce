// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/flatcar/utf/harness"
)

func init() {
	harness.Register("alwaysPass", func(t *harness.T) {
		t.AssertTrue(true)
		t.AssertEqual("flatcar", "flatcar")
	})

	harness.Register("alwaysFail", func(t *harness.T) {
		t.AssertFalse(false)
		t.AssertTrue(false)
		t.AssertEqual(1, 2)
	})

	harness.Register("closeEnough", func(t *harness.T) {
		t.AssertAlmostEqual(1.0, 1.0005, 0.01)
	})
}
