// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package must provides fatal assertion helpers for the benchmark driver.
// A benchmark that continues past a violated invariant produces numbers
// that are worse than no numbers, so every assertion here halts the
// program. The package is intended for use in main packages only.
package must

import (
	"fmt"

	"github.com/neon-sunset/rosetta-avx-test/log"
)

// Func is the function called to report a violated assertion and interrupt
// execution. It is overridable for testing. Func is passed the call depth
// of the caller of the must function.
var Func func(depth int, v ...interface{}) = func(depth int, v ...interface{}) {
	s := fmt.Sprint(v...)
	log.Error.Print(s)
	panic(s)
}

// Nil asserts that v is nil; v is typically a value of type error.
func Nil(v interface{}, args ...interface{}) {
	if v == nil {
		return
	}
	if len(args) == 0 {
		Func(2, v)
		return
	}
	Func(2, fmt.Sprint(args...), ": ", v)
}

// Nilf asserts that v is nil, formatting the failure message in the manner
// of fmt.Sprintf.
func Nilf(v interface{}, format string, args ...interface{}) {
	if v == nil {
		return
	}
	Func(2, fmt.Sprintf(format, args...), ": ", v)
}

// True is a no-op if b is true; otherwise it reports a fatal assertion
// failure formatted in the manner of fmt.Sprint.
func True(b bool, v ...interface{}) {
	if b {
		return
	}
	if len(v) == 0 {
		Func(2, "must: assertion failed")
		return
	}
	Func(2, v...)
}

// Truef is a no-op if b is true; otherwise it reports a fatal assertion
// failure formatted in the manner of fmt.Sprintf.
func Truef(b bool, format string, v ...interface{}) {
	if b {
		return
	}
	Func(2, fmt.Sprintf(format, v...))
}
