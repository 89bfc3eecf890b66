// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"time"

	"github.com/neon-sunset/rosetta-avx-test/log"
)

// Config fixes the iteration counts of a benchmark run. The counts are
// constants, not derived from variance: adaptive stopping would make runs
// on different hosts incomparable.
type Config struct {
	// Warmup invocations run first and are discarded; they stabilize
	// caches, branch predictors, and any lazy translation the execution
	// layer performs.
	Warmup int
	// Iters timed invocations follow.
	Iters int
}

// DefaultConfig returns the fixed counts used by the CLI.
func DefaultConfig() Config {
	return Config{Warmup: 16, Iters: 128}
}

// A Result is the reduction of one kernel's timed invocations.
type Result struct {
	// Mean is the arithmetic mean wall-clock duration of one invocation
	// over the full buffer.
	Mean time.Duration
	// MiBPerSec is the combined read+write bandwidth: bytes moved in
	// both directions divided by Mean. The factor of two is a reporting
	// convention kept for parity with earlier runs of this benchmark.
	MiBPerSec float64
}

// String renders the result the way the driver prints it.
func (r Result) String() string {
	return fmt.Sprintf("avg %.2f µs, %.2f MiB/s", float64(r.Mean.Nanoseconds())/1e3, r.MiBPerSec)
}

// Run times k over the given buffers: cfg.Warmup discarded invocations,
// then cfg.Iters timed ones, reduced to the mean and derived bandwidth.
// src is never written; dst is clobbered. The kernel's own precondition
// panics if the buffers are shorter than k.MinLen.
func Run(k Kernel, dst, src []byte, cfg Config) Result {
	if cfg.Warmup < 0 || cfg.Iters <= 0 {
		panic("bench.Run: iteration counts must be positive")
	}
	log.Printf("kernel %q: warming up (%d invocations)", k.Name, cfg.Warmup)
	for i := 0; i < cfg.Warmup; i++ {
		k.Transform(dst, src)
	}
	log.Printf("kernel %q: running (%d timed invocations)", k.Name, cfg.Iters)
	var total time.Duration
	for i := 0; i < cfg.Iters; i++ {
		start := time.Now()
		k.Transform(dst, src)
		total += time.Since(start)
	}
	mean := total / time.Duration(cfg.Iters)
	return Result{
		Mean:      mean,
		MiBPerSec: bandwidthMiB(len(src), mean),
	}
}

// bandwidthMiB converts one mean invocation time over nByte bytes into
// combined read+write MiB/s.
func bandwidthMiB(nByte int, mean time.Duration) float64 {
	if mean <= 0 {
		return 0
	}
	bytesMoved := 2 * float64(nByte)
	return bytesMoved / mean.Seconds() / (1 << 20)
}
