// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/neon-sunset/rosetta-avx-test/simd"
)

// toUpper8Standard is the obvious scalar implementation; all vector
// variants must match it byte for byte.
func toUpper8Standard(dst, src []byte) {
	for pos, curByte := range src {
		if 'a' <= curByte && curByte <= 'z' {
			curByte -= 32
		}
		dst[pos] = curByte
	}
}

type upperVariant struct {
	name   string
	minLen int
	fn     func(dst, src []byte)
}

func upperVariants() []upperVariant {
	return []upperVariant{
		{"ToUpper8X16", 16, simd.ToUpper8X16},
		{"ToUpper8X16x2", 32, simd.ToUpper8X16x2},
		{"ToUpper8X32", 32, simd.ToUpper8X32},
		{"ToUpper8", 0, simd.ToUpper8},
	}
}

func TestToUpper8Random(t *testing.T) {
	maxSize := 500
	nIter := 200
	srcArr := simd.MakeUnsafe(maxSize)
	want := make([]byte, maxSize)
	got := make([]byte, maxSize+1)
	for iter := 0; iter < nIter; iter++ {
		size := 32 + rand.Intn(maxSize-32)
		srcSlice := srcArr[:size]
		for pos := range srcSlice {
			srcSlice[pos] = byte(rand.Intn(256))
		}
		toUpper8Standard(want[:size], srcSlice)
		for _, v := range upperVariants() {
			sentinel := byte(rand.Intn(256))
			got[size] = sentinel
			v.fn(got[:size], srcSlice)
			if !bytes.Equal(got[:size], want[:size]) {
				t.Fatalf("Mismatched %s result (len %d).", v.name, size)
			}
			if got[size] != sentinel {
				t.Fatalf("%s clobbered a byte past the end.", v.name)
			}
		}
	}
}

func TestToUpper8Short(t *testing.T) {
	// Below one vector ToUpper8 takes the scalar path.
	for size := 0; size < 16; size++ {
		src := make([]byte, size)
		for pos := range src {
			src[pos] = byte(rand.Intn(256))
		}
		want := make([]byte, size)
		toUpper8Standard(want, src)
		got := make([]byte, size)
		simd.ToUpper8(got, src)
		if !bytes.Equal(got, want) {
			t.Fatalf("Mismatched ToUpper8 result at len %d.", size)
		}
	}
}

func TestToUpper8MinLength(t *testing.T) {
	// A buffer of exactly one chunk must be handled by the overlapping
	// tail alone.
	for _, v := range upperVariants() {
		size := v.minLen
		if size == 0 {
			continue
		}
		src := make([]byte, size)
		for pos := range src {
			src[pos] = byte(rand.Intn(256))
		}
		want := make([]byte, size)
		toUpper8Standard(want, src)
		got := make([]byte, size)
		v.fn(got, src)
		if !bytes.Equal(got, want) {
			t.Fatalf("Mismatched %s result at minimum length %d.", v.name, size)
		}
	}
}

func TestToUpper8NonMultiple(t *testing.T) {
	// Lengths that are not a multiple of the chunk width exercise the
	// overlapping tail together with the main loop.
	for _, size := range []int{33, 47, 63, 65, 95, 127, 4095, 4097} {
		src := make([]byte, size)
		for pos := range src {
			src[pos] = byte(rand.Intn(256))
		}
		want := make([]byte, size)
		toUpper8Standard(want, src)
		for _, v := range upperVariants() {
			got := make([]byte, size)
			v.fn(got, src)
			if !bytes.Equal(got, want) {
				t.Fatalf("Mismatched %s result at len %d.", v.name, size)
			}
		}
	}
}

func TestToUpper8CrossVariant(t *testing.T) {
	size := 12345
	src := make([]byte, size)
	for pos := range src {
		src[pos] = byte(rand.Intn(256))
	}
	first := make([]byte, size)
	simd.ToUpper8X16(first, src)
	for _, v := range upperVariants()[1:] {
		other := make([]byte, size)
		v.fn(other, src)
		if !bytes.Equal(first, other) {
			t.Fatalf("%s disagrees with ToUpper8X16.", v.name)
		}
	}
}

func TestToUpper8Idempotent(t *testing.T) {
	size := 1000
	src := make([]byte, size)
	for pos := range src {
		src[pos] = byte(rand.Intn(256))
	}
	once := make([]byte, size)
	twice := make([]byte, size)
	for _, v := range upperVariants() {
		v.fn(once, src)
		v.fn(twice, once)
		if !bytes.Equal(once, twice) {
			t.Fatalf("%s is not idempotent.", v.name)
		}
	}
}

func TestToUpper8MixedScript(t *testing.T) {
	src := []byte("Привіт, Всесвіт! Hello, World! Привіт, Всесвіт! Hello, World!")
	want := []byte("Привіт, Всесвіт! HELLO, WORLD! Привіт, Всесвіт! HELLO, WORLD!")
	for _, v := range upperVariants() {
		got := make([]byte, len(src))
		v.fn(got, src)
		if !bytes.Equal(got, want) {
			t.Fatalf("%s mangled the mixed-script sample: %q", v.name, got)
		}
	}
}

func TestToUpper8AllByteValues(t *testing.T) {
	// Every byte value, repeated so the buffer spans several chunks.
	// Only 0x61..0x7a may change.
	src := make([]byte, 1024)
	for pos := range src {
		src[pos] = byte(pos & 0xff)
	}
	for _, v := range upperVariants() {
		got := make([]byte, len(src))
		v.fn(got, src)
		for pos, curByte := range src {
			want := curByte
			if 'a' <= curByte && curByte <= 'z' {
				want = curByte - 32
			}
			if got[pos] != want {
				t.Fatalf("%s: byte 0x%02x became 0x%02x, want 0x%02x.",
					v.name, curByte, got[pos], want)
			}
		}
	}
}

func TestToUpper8Inplace(t *testing.T) {
	size := 777
	main := make([]byte, size)
	for pos := range main {
		main[pos] = byte(rand.Intn(256))
	}
	want := make([]byte, size)
	toUpper8Standard(want, main)
	simd.ToUpper8Inplace(main)
	if !bytes.Equal(main, want) {
		t.Fatal("Mismatched ToUpper8Inplace result.")
	}
}

func TestToUpper8Panics(t *testing.T) {
	mustPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic.", name)
			}
		}()
		f()
	}
	short := make([]byte, 8)
	long := make([]byte, 64)
	mustPanic("ToUpper8X16 short", func() { simd.ToUpper8X16(short, short) })
	mustPanic("ToUpper8X16x2 short", func() { simd.ToUpper8X16x2(short, short) })
	mustPanic("ToUpper8X32 short", func() { simd.ToUpper8X32(short, short) })
	mustPanic("ToUpper8 mismatch", func() { simd.ToUpper8(short, long) })
	mustPanic("ToUpper8X32 mismatch", func() { simd.ToUpper8X32(short, long) })
}
