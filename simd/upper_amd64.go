// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !appengine

package simd

import (
	"reflect"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// wideVectorsAccelerated reports whether the host executes 256-bit vector
// operations natively.  It only affects ToUpper8's dispatch choice; all
// fixed-width entry points always run when called.
var wideVectorsAccelerated = cpu.X86.HasAVX2

// ToUpper8X16 sets dst[pos] := toupper(src[pos]) for every byte in src,
// processing one 16-byte vector per iteration.  The tail is covered by one
// overlapping vector anchored at len(src)-16.
// It panics if len(src) != len(dst) or len(src) < 16.
func ToUpper8X16(dst, src []byte) {
	nByte := len(src)
	if len(dst) != nByte {
		panic("ToUpper8X16() requires len(src) == len(dst).")
	}
	if nByte < BytesPerVec {
		panic("ToUpper8X16() requires len(src) >= 16.")
	}
	srcHeader := (*reflect.SliceHeader)(unsafe.Pointer(&src))
	dstHeader := (*reflect.SliceHeader)(unsafe.Pointer(&dst))
	srcIter := srcHeader.Data
	dstIter := dstHeader.Data
	// (nByte - 1) >> 4 full vectors, then the overlapping tail; with this
	// count an exact multiple of 16 is not processed twice by both the
	// main loop and the tail.
	nVec := (nByte - 1) >> Log2BytesPerVec
	for vidx := 0; vidx < nVec; vidx++ {
		w0 := *((*uint64)(unsafe.Pointer(srcIter)))
		w1 := *((*uint64)(unsafe.Pointer(srcIter + BytesPerWord)))
		*((*uint64)(unsafe.Pointer(dstIter))) = upperWord(w0)
		*((*uint64)(unsafe.Pointer(dstIter + BytesPerWord))) = upperWord(w1)
		srcIter += BytesPerVec
		dstIter += BytesPerVec
	}
	finalOffset := uintptr(nByte - BytesPerVec)
	srcIter = srcHeader.Data + finalOffset
	dstIter = dstHeader.Data + finalOffset
	w0 := *((*uint64)(unsafe.Pointer(srcIter)))
	w1 := *((*uint64)(unsafe.Pointer(srcIter + BytesPerWord)))
	*((*uint64)(unsafe.Pointer(dstIter))) = upperWord(w0)
	*((*uint64)(unsafe.Pointer(dstIter + BytesPerWord))) = upperWord(w1)
}

// ToUpper8X16x2 sets dst[pos] := toupper(src[pos]) for every byte in src,
// processing two independent 16-byte vectors per iteration to expose
// instruction-level parallelism.  The tail is covered by two overlapping
// vectors anchored at len(src)-32 and len(src)-16.
// It panics if len(src) != len(dst) or len(src) < 32.
func ToUpper8X16x2(dst, src []byte) {
	nByte := len(src)
	if len(dst) != nByte {
		panic("ToUpper8X16x2() requires len(src) == len(dst).")
	}
	if nByte < 2*BytesPerVec {
		panic("ToUpper8X16x2() requires len(src) >= 32.")
	}
	srcHeader := (*reflect.SliceHeader)(unsafe.Pointer(&src))
	dstHeader := (*reflect.SliceHeader)(unsafe.Pointer(&dst))
	srcIter := srcHeader.Data
	dstIter := dstHeader.Data
	nPair := (nByte - 1) >> (Log2BytesPerVec + 1)
	for pidx := 0; pidx < nPair; pidx++ {
		// Load both vectors before storing either so the two chains stay
		// independent.
		w0 := *((*uint64)(unsafe.Pointer(srcIter)))
		w1 := *((*uint64)(unsafe.Pointer(srcIter + BytesPerWord)))
		w2 := *((*uint64)(unsafe.Pointer(srcIter + 2*BytesPerWord)))
		w3 := *((*uint64)(unsafe.Pointer(srcIter + 3*BytesPerWord)))
		*((*uint64)(unsafe.Pointer(dstIter))) = upperWord(w0)
		*((*uint64)(unsafe.Pointer(dstIter + BytesPerWord))) = upperWord(w1)
		*((*uint64)(unsafe.Pointer(dstIter + 2*BytesPerWord))) = upperWord(w2)
		*((*uint64)(unsafe.Pointer(dstIter + 3*BytesPerWord))) = upperWord(w3)
		srcIter += 2 * BytesPerVec
		dstIter += 2 * BytesPerVec
	}
	for _, finalOffset := range [2]uintptr{uintptr(nByte - 2*BytesPerVec), uintptr(nByte - BytesPerVec)} {
		srcIter = srcHeader.Data + finalOffset
		dstIter = dstHeader.Data + finalOffset
		w0 := *((*uint64)(unsafe.Pointer(srcIter)))
		w1 := *((*uint64)(unsafe.Pointer(srcIter + BytesPerWord)))
		*((*uint64)(unsafe.Pointer(dstIter))) = upperWord(w0)
		*((*uint64)(unsafe.Pointer(dstIter + BytesPerWord))) = upperWord(w1)
	}
}

// ToUpper8X32 sets dst[pos] := toupper(src[pos]) for every byte in src,
// processing one 32-byte vector per iteration.  The tail is covered by one
// overlapping vector anchored at len(src)-32.
// It panics if len(src) != len(dst) or len(src) < 32.
func ToUpper8X32(dst, src []byte) {
	nByte := len(src)
	if len(dst) != nByte {
		panic("ToUpper8X32() requires len(src) == len(dst).")
	}
	if nByte < BytesPerWideVec {
		panic("ToUpper8X32() requires len(src) >= 32.")
	}
	srcHeader := (*reflect.SliceHeader)(unsafe.Pointer(&src))
	dstHeader := (*reflect.SliceHeader)(unsafe.Pointer(&dst))
	srcIter := srcHeader.Data
	dstIter := dstHeader.Data
	nVec := (nByte - 1) >> Log2BytesPerWideVec
	for vidx := 0; vidx < nVec; vidx++ {
		*((*uint64)(unsafe.Pointer(dstIter))) = upperWord(*((*uint64)(unsafe.Pointer(srcIter))))
		*((*uint64)(unsafe.Pointer(dstIter + BytesPerWord))) = upperWord(*((*uint64)(unsafe.Pointer(srcIter + BytesPerWord))))
		*((*uint64)(unsafe.Pointer(dstIter + 2*BytesPerWord))) = upperWord(*((*uint64)(unsafe.Pointer(srcIter + 2*BytesPerWord))))
		*((*uint64)(unsafe.Pointer(dstIter + 3*BytesPerWord))) = upperWord(*((*uint64)(unsafe.Pointer(srcIter + 3*BytesPerWord))))
		srcIter += BytesPerWideVec
		dstIter += BytesPerWideVec
	}
	finalOffset := uintptr(nByte - BytesPerWideVec)
	srcIter = srcHeader.Data + finalOffset
	dstIter = dstHeader.Data + finalOffset
	*((*uint64)(unsafe.Pointer(dstIter))) = upperWord(*((*uint64)(unsafe.Pointer(srcIter))))
	*((*uint64)(unsafe.Pointer(dstIter + BytesPerWord))) = upperWord(*((*uint64)(unsafe.Pointer(srcIter + BytesPerWord))))
	*((*uint64)(unsafe.Pointer(dstIter + 2*BytesPerWord))) = upperWord(*((*uint64)(unsafe.Pointer(srcIter + 2*BytesPerWord))))
	*((*uint64)(unsafe.Pointer(dstIter + 3*BytesPerWord))) = upperWord(*((*uint64)(unsafe.Pointer(srcIter + 3*BytesPerWord))))
}

// ToUpper8 sets dst[pos] := toupper(src[pos]) for every byte in src.  It
// accepts any length, falling back to a scalar loop below one vector, and
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
		ToUpper8X32(dst, src)
		return
	}
	ToUpper8X16x2(dst, src)
}

// ToUpper8Inplace uppercases ASCII lowercase letters in main[] in place.
func ToUpper8Inplace(main []byte) {
	ToUpper8(main, main)
}
