// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package hwcap reports which instruction-set extensions the host CPU (or
// the emulation layer standing in for one) accelerates. The report is
// purely informational: kernel selection never depends on it, so the same
// three kernels run everywhere and their timings stay comparable across
// hosts.
package hwcap

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// A Feature is a named CPU capability and whether the host supports it.
type Feature struct {
	Name      string
	Supported bool
}

// probeOrder fixes the declaration order of the recognized capabilities;
// Probe and Partition preserve it.
var probeOrder = []struct {
	name string
	id   cpuid.FeatureID
}{
	{"AES", cpuid.AESNI},
	{"AVX", cpuid.AVX},
	{"AVX2", cpuid.AVX2},
	{"BMI1", cpuid.BMI1},
	{"BMI2", cpuid.BMI2},
	{"FMA", cpuid.FMA3},
	{"LZCNT", cpuid.LZCNT},
	{"CLMUL", cpuid.CLMUL},
	{"POPCNT", cpuid.POPCNT},
	{"SSE", cpuid.SSE},
	{"SSE2", cpuid.SSE2},
	{"SSE3", cpuid.SSE3},
	{"SSSE3", cpuid.SSSE3},
	{"SSE4.1", cpuid.SSE4},
	{"SSE4.2", cpuid.SSE42},
}

// Probe queries the host CPU once per call and returns one Feature per
// recognized capability, in declaration order.
func Probe() []Feature {
	features := make([]Feature, 0, len(probeOrder))
	for _, entry := range probeOrder {
		features = append(features, Feature{
			Name:      entry.name,
			Supported: cpuid.CPU.Supports(entry.id),
		})
	}
	return features
}

// Partition splits features into the names of supported and unsupported
// capabilities, preserving order within each list.
func Partition(features []Feature) (supported, unsupported []string) {
	for _, f := range features {
		if f.Supported {
			supported = append(supported, f.Name)
		} else {
			unsupported = append(unsupported, f.Name)
		}
	}
	return supported, unsupported
}

// WideVectorsAccelerated reports whether 256-bit vector operations run
// natively on the host. When false, the wide kernel still runs, but its
// chunks decompose into narrower operations and its numbers should be
// read accordingly.
func WideVectorsAccelerated() bool {
	return cpu.X86.HasAVX2
}
