// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package mem allocates the page-aligned byte buffers the benchmark runs
// over. Page alignment keeps vector loads and stores at the buffer
// boundaries well-defined and removes misalignment effects from the
// measurement. Buffers are ordinary slices; release is the garbage
// collector's job.
package mem

import (
	"math/rand"
	"unsafe"

	"github.com/neon-sunset/rosetta-avx-test/traverse"
)

// PageSize is the alignment boundary for benchmark buffers.
const PageSize = 4096

// RoundUpPow2 returns val rounded up to a multiple of alignment, assuming
// alignment is a power of 2.
func RoundUpPow2(val, alignment int) int {
	return (val + alignment - 1) & (^(alignment - 1))
}

// IsAligned reports whether the backing array of b starts on a multiple
// of align. align must be a power of 2.
func IsAligned(b []byte, align int) bool {
	if len(b) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&b[0]))&uintptr(align-1) == 0
}

// AlignedBytes returns a zero-initialized slice of exactly n bytes whose
// backing array starts on a PageSize boundary. It panics if n <= 0; a
// benchmark buffer of no bytes is a caller bug, not a request to satisfy.
func AlignedBytes(n int) []byte {
	if n <= 0 {
		panic("mem.AlignedBytes: length must be positive")
	}
	// Over-allocate and re-slice to the first page boundary. The runtime
	// has no aligned allocator; for large buffers the allocation is
	// page-aligned anyway and the offset is zero.
	raw := make([]byte, n+PageSize-1)
	offset := 0
	if rem := uintptr(unsafe.Pointer(&raw[0])) & (PageSize - 1); rem != 0 {
		offset = PageSize - int(rem)
	}
	return raw[offset : offset+n : offset+n]
}

// fillShardBytes is the fixed shard granularity of FillRandom. Fixed-size
// shards keep the fill deterministic for a given seed regardless of how
// many CPUs the shards land on.
const fillShardBytes = 1 << 20

// FillRandom overwrites buf with uniformly distributed random bytes.  The
// fill is sharded across CPUs; the result is deterministic for a given
// seed and buffer length regardless of parallelism.
func FillRandom(buf []byte, seed int64) {
	nShard := (len(buf) + fillShardBytes - 1) / fillShardBytes
	_ = traverse.Parallel.Each(nShard, func(i int) error {
		start := i * fillShardBytes
		end := start + fillShardBytes
		if end > len(buf) {
			end = len(buf)
		}
		// Each shard gets an independent source so shards never contend.
		rng := rand.New(rand.NewSource(seed + int64(i)))
		shard := buf[start:end]
		pos := 0
		for ; pos+8 <= len(shard); pos += 8 {
			v := rng.Uint64()
			shard[pos] = byte(v)
			shard[pos+1] = byte(v >> 8)
			shard[pos+2] = byte(v >> 16)
			shard[pos+3] = byte(v >> 24)
			shard[pos+4] = byte(v >> 32)
			shard[pos+5] = byte(v >> 40)
			shard[pos+6] = byte(v >> 48)
			shard[pos+7] = byte(v >> 56)
		}
		for ; pos < len(shard); pos++ {
			shard[pos] = byte(rng.Uint64())
		}
		return nil
	})
}
