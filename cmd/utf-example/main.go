// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/flatcar/utf/runner"
)

func main() {
	runner.Main()
}
