// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bench verifies and times the uppercase kernels. Every kernel is
// verified against a fixed mixed-script sample before any timing happens;
// timing an incorrect kernel would produce numbers that look meaningful
// and are not.
package bench

import "github.com/neon-sunset/rosetta-avx-test/simd"

// A Kernel is one uppercase variant under test.
type Kernel struct {
	// Name identifies the variant in verification errors and reports.
	Name string
	// MinLen is the smallest buffer the variant accepts; Transform
	// panics below it.
	MinLen int
	// Wide marks the 256-bit variant, which deserves a warning on hosts
	// without native wide vectors.
	Wide bool
	// Transform writes the uppercased src into dst.
	Transform func(dst, src []byte)
}

// Kernels returns the three variants in their fixed benchmarking order.
func Kernels() []Kernel {
	return []Kernel{
		{
			Name:      "16-byte single",
			MinLen:    simd.BytesPerVec,
			Transform: simd.ToUpper8X16,
		},
		{
			Name:      "16-byte dual-unrolled",
			MinLen:    2 * simd.BytesPerVec,
			Transform: simd.ToUpper8X16x2,
		},
		{
			Name:      "32-byte wide",
			MinLen:    simd.BytesPerWideVec,
			Wide:      true,
			Transform: simd.ToUpper8X32,
		},
	}
}
