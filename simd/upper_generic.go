// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64 || appengine

package simd

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// On non-x86 targets 32-byte vectors decompose into narrower operations;
// treat 16-byte NEON as "wide enough" only when ASIMD is present.
var wideVectorsAccelerated = cpu.ARM64.HasASIMD

// ToUpper8X16 sets dst[pos] := toupper(src[pos]) for every byte in src,
// processing one 16-byte chunk per iteration.  The tail is covered by one
// overlapping chunk anchored at len(src)-16.
// It panics if len(src) != len(dst) or len(src) < 16.
func ToUpper8X16(dst, src []byte) {
	nByte := len(src)
	if len(dst) != nByte {
		panic("ToUpper8X16() requires len(src) == len(dst).")
	}
	if nByte < BytesPerVec {
		panic("ToUpper8X16() requires len(src) >= 16.")
	}
	nVec := (nByte - 1) >> Log2BytesPerVec
	for pos := 0; pos < nVec*BytesPerVec; pos += BytesPerVec {
		upperChunk16(dst[pos:], src[pos:])
	}
	finalOffset := nByte - BytesPerVec
	upperChunk16(dst[finalOffset:], src[finalOffset:])
}

// ToUpper8X16x2 sets dst[pos] := toupper(src[pos]) for every byte in src,
// processing two independent 16-byte chunks per iteration.  The tail is
// covered by two overlapping chunks anchored at len(src)-32 and
// len(src)-16.
// It panics if len(src) != len(dst) or len(src) < 32.
func ToUpper8X16x2(dst, src []byte) {
	nByte := len(src)
	if len(dst) != nByte {
		panic("ToUpper8X16x2() requires len(src) == len(dst).")
	}
	if nByte < 2*BytesPerVec {
		panic("ToUpper8X16x2() requires len(src) >= 32.")
	}
	nPair := (nByte - 1) >> (Log2BytesPerVec + 1)
	for pos := 0; pos < nPair*2*BytesPerVec; pos += 2 * BytesPerVec {
		w0 := binary.LittleEndian.Uint64(src[pos:])
		w1 := binary.LittleEndian.Uint64(src[pos+BytesPerWord:])
		w2 := binary.LittleEndian.Uint64(src[pos+2*BytesPerWord:])
		w3 := binary.LittleEndian.Uint64(src[pos+3*BytesPerWord:])
		binary.LittleEndian.PutUint64(dst[pos:], upperWord(w0))
		binary.LittleEndian.PutUint64(dst[pos+BytesPerWord:], upperWord(w1))
		binary.LittleEndian.PutUint64(dst[pos+2*BytesPerWord:], upperWord(w2))
		binary.LittleEndian.PutUint64(dst[pos+3*BytesPerWord:], upperWord(w3))
	}
	upperChunk16(dst[nByte-2*BytesPerVec:], src[nByte-2*BytesPerVec:])
	upperChunk16(dst[nByte-BytesPerVec:], src[nByte-BytesPerVec:])
}

// ToUpper8X32 sets dst[pos] := toupper(src[pos]) for every byte in src,
// processing one 32-byte chunk per iteration.  The tail is covered by one
// overlapping chunk anchored at len(src)-32.
// It panics if len(src) != len(dst) or len(src) < 32.
func ToUpper8X32(dst, src []byte) {
	nByte := len(src)
	if len(dst) != nByte {
		panic("ToUpper8X32() requires len(src) == len(dst).")
	}
	if nByte < BytesPerWideVec {
		panic("ToUpper8X32() requires len(src) >= 32.")
	}
	nVec := (nByte - 1) >> Log2BytesPerWideVec
	for pos := 0; pos < nVec*BytesPerWideVec; pos += BytesPerWideVec {
		upperChunk32(dst[pos:], src[pos:])
	}
	finalOffset := nByte - BytesPerWideVec
	upperChunk32(dst[finalOffset:], src[finalOffset:])
}

// ToUpper8 sets dst[pos] := toupper(src[pos]) for every byte in src.  It
// accepts any length, falling back to a scalar loop below one chunk, and
// otherwise dispatches to the widest variant the buffer admits.  It panics
// if len(src) != len(dst).
func ToUpper8(dst, src []byte) {
	nByte := len(src)
	if len(dst) != nByte {
		panic("ToUpper8() requires len(src) == len(dst).")
	}
	if nByte < BytesPerVec {
		for pos, curByte := range src {
			dst[pos] = upperByte(curByte)
		}
		return
	}
	if nByte < BytesPerWideVec {
		ToUpper8X16(dst, src)
		return
	}
	if wideVectorsAccelerated {
		ToUpper8X16x2(dst, src)
		return
	}
	ToUpper8X32(dst, src)
}

// ToUpper8Inplace uppercases ASCII lowercase letters in main[] in place.
func ToUpper8Inplace(main []byte) {
	ToUpper8(main, main)
}

func upperChunk16(dst, src []byte) {
	w0 := binary.LittleEndian.Uint64(src)
	w1 := binary.LittleEndian.Uint64(src[BytesPerWord:])
	binary.LittleEndian.PutUint64(dst, upperWord(w0))
	binary.LittleEndian.PutUint64(dst[BytesPerWord:], upperWord(w1))
}

func upperChunk32(dst, src []byte) {
	w0 := binary.LittleEndian.Uint64(src)
	w1 := binary.LittleEndian.Uint64(src[BytesPerWord:])
	w2 := binary.LittleEndian.Uint64(src[2*BytesPerWord:])
	w3 := binary.LittleEndian.Uint64(src[3*BytesPerWord:])
	binary.LittleEndian.PutUint64(dst, upperWord(w0))
	binary.LittleEndian.PutUint64(dst[BytesPerWord:], upperWord(w1))
	binary.LittleEndian.PutUint64(dst[2*BytesPerWord:], upperWord(w2))
	binary.LittleEndian.PutUint64(dst[3*BytesPerWord:], upperWord(w3))
}
