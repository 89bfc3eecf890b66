// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSizeMiB(t *testing.T) {
	for arg, want := range map[string]int{
		"1":    1,
		"16":   16,
		"2048": 2048,
	} {
		got, err := parseSizeMiB(arg)
		require.NoError(t, err, arg)
		assert.Equal(t, want, got, arg)
	}
}

func TestParseSizeMiBInvalid(t *testing.T) {
	for _, arg := range []string{"abc", "-5", "0", "1.5", ""} {
		_, err := parseSizeMiB(arg)
		assert.Error(t, err, "argument %q must be rejected", arg)
	}
}

func TestRootCommandRejectsBadArgs(t *testing.T) {
	// Invalid sizes must fail before any buffer is allocated or any
	// kernel is run; with a multi-GiB default this would otherwise be
	// very visible in test time.
	for _, args := range [][]string{
		{"abc"},
		{"-5"},
		{"0"},
		{"16", "32"},
	} {
		cmd := newRootCommand()
		cmd.SetArgs(args)
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		assert.Error(t, cmd.Execute(), "args %v", args)
	}
}

func TestVerifyOnly(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--verify-only", "1"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	require.NoError(t, cmd.Execute())
}
