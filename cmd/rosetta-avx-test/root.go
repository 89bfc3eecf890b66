// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/neon-sunset/rosetta-avx-test/bench"
	"github.com/neon-sunset/rosetta-avx-test/hwcap"
	"github.com/neon-sunset/rosetta-avx-test/log"
	"github.com/neon-sunset/rosetta-avx-test/mem"
	"github.com/neon-sunset/rosetta-avx-test/must"
)

const defaultSizeMiB = 16

type options struct {
	sizeMiB    int
	warmup     int
	iters      int
	seed       int64
	verifyOnly bool
	verbose    bool
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "rosetta-avx-test [size-mib]",
		Short: "Benchmark vectorized ASCII-uppercase kernels",
		Long: `rosetta-avx-test verifies three vectorized ASCII-uppercase kernels
(16-byte single, 16-byte dual-unrolled, 32-byte wide) and times each over a
large page-aligned random buffer, reporting average invocation time and
combined read+write bandwidth.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Reject a bad size before anything is allocated or run.
			opts.sizeMiB = defaultSizeMiB
			if len(args) == 1 {
				sizeMiB, err := parseSizeMiB(args[0])
				if err != nil {
					return err
				}
				opts.sizeMiB = sizeMiB
			}
			if opts.verbose {
				log.SetLevel(log.Debug)
			}
			return run(opts)
		},
	}
	defaults := bench.DefaultConfig()
	cmd.Flags().IntVar(&opts.warmup, "warmup", defaults.Warmup, "warm-up invocations per kernel (discarded)")
	cmd.Flags().IntVar(&opts.iters, "iters", defaults.Iters, "timed invocations per kernel")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "seed for the random source-buffer fill")
	cmd.Flags().BoolVar(&opts.verifyOnly, "verify-only", false, "verify the kernels and exit without timing")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

// parseSizeMiB parses the optional positional buffer-size argument.
func parseSizeMiB(arg string) (int, error) {
	sizeMiB, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Errorf("invalid buffer size %q: expected a decimal number of MiB", arg)
	}
	if sizeMiB <= 0 {
		return 0, errors.Errorf("invalid buffer size %d: must be positive", sizeMiB)
	}
	return sizeMiB, nil
}

func run(opts options) error {
	if opts.warmup < 0 || opts.iters <= 0 {
		return errors.New("iteration counts must be positive")
	}

	supported, unsupported := hwcap.Partition(hwcap.Probe())
	fmt.Printf("Accelerated: %s\n", strings.Join(supported, ", "))
	fmt.Printf("Not accelerated: %s\n", strings.Join(unsupported, ", "))
	fmt.Println()

	kernels := bench.Kernels()
	for _, k := range kernels {
		log.Printf("verifying kernel %q", k.Name)
		// An incorrect kernel makes every number below meaningless, so
		// this is a hard stop.
		must.Nil(bench.Verify(k))
	}
	fmt.Println("All kernels verified.")
	if opts.verifyOnly {
		return nil
	}
	if !hwcap.WideVectorsAccelerated() {
		fmt.Println("warning: 32-byte vectors are not natively accelerated on this host;" +
			" the wide kernel will run as narrower operations")
	}
	fmt.Println()

	nByte := opts.sizeMiB << 20
	log.Printf("allocating two %d MiB page-aligned buffers", opts.sizeMiB)
	src := mem.AlignedBytes(nByte)
	sink := mem.AlignedBytes(nByte)
	must.Truef(mem.IsAligned(src, mem.PageSize) && mem.IsAligned(sink, mem.PageSize),
		"buffers are not aligned to %d bytes", mem.PageSize)
	log.Printf("filling the source buffer with random bytes (seed %d)", opts.seed)
	mem.FillRandom(src, opts.seed)

	cfg := bench.Config{Warmup: opts.warmup, Iters: opts.iters}
	for _, k := range kernels {
		fmt.Printf("[%s]\n", k.Name)
		res := bench.Run(k, sink, src, cfg)
		fmt.Printf("  %s\n", res)
		fmt.Printf("  done\n\n")
	}
	return nil
}
