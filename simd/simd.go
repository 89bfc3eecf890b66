// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

// BytesPerWord is the number of bytes in a SWAR word. Lanes are packed
// into uint64 values on every platform, so this is 8 even on 32-bit
// targets.
const BytesPerWord = 8

// Log2BytesPerWord is log2(BytesPerWord). This is relevant for manual
// bit-shifting when we know that's a safe way to divide and the compiler
// does not (e.g. dividend is of signed int type).
const Log2BytesPerWord = uint(3)

// BytesPerVec is the base vector width used by ToUpper8X16 and
// ToUpper8X16x2.
const BytesPerVec = 16

// Log2BytesPerVec supports efficient division by BytesPerVec.
const Log2BytesPerVec = uint(4)

// BytesPerWideVec is the wide vector width used by ToUpper8X32.
const BytesPerWideVec = 32

// Log2BytesPerWideVec supports efficient division by BytesPerWideVec.
const Log2BytesPerWideVec = uint(5)

// RoundUpPow2 returns val rounded up to a multiple of alignment, assuming
// alignment is a power of 2.
func RoundUpPow2(val, alignment int) int {
	return (val + alignment - 1) & (^(alignment - 1))
}

// DivUpPow2 efficiently divides a number by a power-of-2 divisor.  (This
// works for negative dividends since the language specifies arithmetic
// right-shifts of signed numbers.)
func DivUpPow2(dividend, divisor int, log2Divisor uint) int {
	return (dividend + divisor - 1) >> log2Divisor
}

// MakeUnsafe returns a byte slice of the given length with enough extra
// capacity that subslices of at least BytesPerVec bytes can always be
// handed to the fixed-width functions in this package after extension.
// Allocated memory is zero-initialized.
func MakeUnsafe(len int) []byte {
	return make([]byte, len, len+BytesPerWideVec)
}

// SWAR lane constants.  Each lane is one byte of a uint64.
const (
	wordLow7 = 0x7f7f7f7f7f7f7f7f
	wordHigh = 0x8080808080808080
	// 0x80 - 'a' in every lane: adding it to a lane with the high bit
	// cleared sets lane bit 7 iff the lane is >= 'a'.
	wordGeA = 0x1f1f1f1f1f1f1f1f
	// 0x80 - ('z' + 1) in every lane: adding it sets lane bit 7 iff
	// the lane is > 'z'.
	wordGtZ = 0x0505050505050505
)

// upperWord uppercases all eight lanes of w.  The per-lane range test is
// carry-free: with lane bit 7 masked off, each addend keeps the lane sum
// below 0x100, so lanes never interfere.  Lanes that had bit 7 set in the
// input (multibyte UTF-8 and friends) are excluded and pass through
// unchanged.
func upperWord(w uint64) uint64 {
	low7 := w & wordLow7
	geA := low7 + wordGeA
	gtZ := low7 + wordGtZ
	isLower := (geA &^ gtZ &^ w) & wordHigh
	// A lowercase lane now holds 0x80; shift it down to the 0x20 case bit.
	return w ^ (isLower >> 2)
}

// upperByte is the scalar reference for a single lane, used below one
// vector width.
func upperByte(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b ^ 0x20
	}
	return b
}
