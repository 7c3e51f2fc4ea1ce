// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

// This example program shows how a test binary is put together with the
// harness package. main.go is the whole of the glue; tests.go declares
// the tests, which register themselves before main runs.
//
//	$ ./utf-example
//	--- TESTS ---
//	alwaysPass...PASS
//	alwaysFail...FAIL
//	Line 18: t.AssertTrue(false)
//	closeEnough...PASS
//	2 tests passed, 1 tests failed
//
//	$ ./utf-example -q closeEnough alwaysFail
//	--- TESTS ---
//	alwaysFail...FAIL
//	Line 18: t.AssertTrue(false)
//	1 tests passed, 1 tests failed
package main
