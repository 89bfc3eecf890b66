// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bench

import (
	"bytes"

	"github.com/pkg/errors"
)

// The verification sample interleaves multibyte Cyrillic (every byte
// >= 0x80) with mixed-case ASCII, and is long enough for every kernel's
// minimum chunk width. Only the ASCII letters may change.
const (
	verifySample = "Привіт, Всесвіт! Hello, World! Привіт, Всесвіт! Hello, World!"
	verifyWant   = "Привіт, Всесвіт! HELLO, WORLD! Привіт, Всесвіт! HELLO, WORLD!"
)

// Verify runs k over the fixed sample and compares the output byte for
// byte with the known-correct result. A non-nil error means the kernel
// must not be benchmarked.
func Verify(k Kernel) error {
	if len(verifySample) < k.MinLen {
		return errors.Errorf("kernel %q: verification sample is shorter than the %d-byte minimum", k.Name, k.MinLen)
	}
	src := []byte(verifySample)
	dst := make([]byte, len(src))
	k.Transform(dst, src)
	if !bytes.Equal(dst, []byte(verifyWant)) {
		return errors.Errorf("kernel %q: verification mismatch: got %q, want %q", k.Name, dst, verifyWant)
	}
	// Applying the kernel to its own output must change nothing.
	again := make([]byte, len(dst))
	k.Transform(again, dst)
	if !bytes.Equal(again, dst) {
		return errors.Errorf("kernel %q: not idempotent: %q became %q", k.Name, dst, again)
	}
	return nil
}

// VerifyAll verifies every kernel in order and stops at the first
// failure.
func VerifyAll(kernels []Kernel) error {
	for _, k := range kernels {
		if err := Verify(k); err != nil {
			return errors.Wrap(err, "verification failed")
		}
	}
	return nil
}
