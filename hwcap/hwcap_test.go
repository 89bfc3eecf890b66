// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hwcap_test

import (
	"testing"

	"github.com/neon-sunset/rosetta-avx-test/hwcap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wantOrder = []string{
	"AES", "AVX", "AVX2", "BMI1", "BMI2", "FMA", "LZCNT", "CLMUL",
	"POPCNT", "SSE", "SSE2", "SSE3", "SSSE3", "SSE4.1", "SSE4.2",
}

func TestProbeOrder(t *testing.T) {
	features := hwcap.Probe()
	require.Len(t, features, len(wantOrder))
	for i, f := range features {
		assert.Equal(t, wantOrder[i], f.Name)
	}
}

func TestProbeStable(t *testing.T) {
	// Hardware does not change between calls.
	assert.Equal(t, hwcap.Probe(), hwcap.Probe())
}

func TestPartition(t *testing.T) {
	features := []hwcap.Feature{
		{Name: "AES", Supported: true},
		{Name: "AVX", Supported: false},
		{Name: "AVX2", Supported: true},
		{Name: "BMI1", Supported: false},
	}
	supported, unsupported := hwcap.Partition(features)
	assert.Equal(t, []string{"AES", "AVX2"}, supported)
	assert.Equal(t, []string{"AVX", "BMI1"}, unsupported)
}

func TestPartitionCoversProbe(t *testing.T) {
	supported, unsupported := hwcap.Partition(hwcap.Probe())
	assert.Len(t, append(supported, unsupported...), len(wantOrder))
}
