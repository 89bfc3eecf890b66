// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package must_test

import (
	"fmt"
	"testing"

	"github.com/neon-sunset/rosetta-avx-test/must"
)

func TestAssertions(t *testing.T) {
	var got string
	saved := must.Func
	defer func() { must.Func = saved }()
	must.Func = func(depth int, v ...interface{}) {
		got = fmt.Sprint(v...)
	}

	got = ""
	must.True(true, "unused")
	if got != "" {
		t.Errorf("True(true) reported %q", got)
	}
	must.True(false)
	if got != "must: assertion failed" {
		t.Errorf("True(false) reported %q", got)
	}
	must.Truef(false, "len=%d", 3)
	if got != "len=3" {
		t.Errorf("Truef(false) reported %q", got)
	}

	got = ""
	must.Nil(nil, "unused")
	if got != "" {
		t.Errorf("Nil(nil) reported %q", got)
	}
	must.Nilf(fmt.Errorf("boom"), "alloc %d", 7)
	if got != "alloc 7: boom" {
		t.Errorf("Nilf(err) reported %q", got)
	}
}
