// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package simd provides vectorized in-register implementations of ASCII
// uppercasing over byte slices, at three fixed chunk granularities: one
// 16-byte vector per iteration, two independent 16-byte vectors per
// iteration, and one 32-byte vector per iteration. The variants produce
// byte-identical output; they exist separately so the benchmark driver can
// compare their throughput on a given CPU or emulation layer.
//
// The lanes are processed with SWAR arithmetic on 64-bit machine words.
// The Go compiler cannot be trusted to autovectorize the per-lane range
// test, so the looping logic is written out explicitly, word by word.
//
// The fixed-width variants cover the end of the buffer with an overlapping
// chunk anchored at len-width instead of a scalar remainder loop. Bytes
// near the end may therefore be written twice. This is safe here because
// uppercasing is idempotent and each output byte depends only on the input
// byte at the same position; do not copy the technique for transforms
// without both properties.
//
// Functions with fixed-width names (ToUpper8X16 and friends) require the
// buffer to hold at least one chunk and panic otherwise. ToUpper8 and
// ToUpper8Inplace accept any length and fall back to a scalar loop below
// one vector.
package simd
