// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command rosetta-avx-test verifies and times the three uppercase kernels
// over a large random buffer, so instruction-level throughput can be
// compared between hosts (e.g. native execution vs. binary translation).
package main

import (
	"os"

	"github.com/neon-sunset/rosetta-avx-test/log"
)

func main() {
	log.SetFlags(0)
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
