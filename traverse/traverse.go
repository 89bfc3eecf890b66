// Copyright 2026 the rosetta-avx-test authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package traverse provides a small parallel-for primitive. It is used for
// embarrassingly parallel work outside the measured path: sharded random
// buffer fills and the multi-core benchmark harness in the kernel tests.
package traverse

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// A T is a traverser. Limit bounds the number of concurrent invocations
// per traversal; zero means no limit.
type T struct {
	Limit int
}

// Limit returns a traverser with limit n.
func Limit(n int) T {
	if n <= 0 {
		panic(fmt.Sprintf("traverse.Limit: invalid limit: %d", n))
	}
	return T{Limit: n}
}

// Parallel is the default traverser for CPU-bound work.
var Parallel = T{Limit: runtime.GOMAXPROCS(0)}

// Each invokes fn(i) for 0 <= i < n, bounding concurrency by t.Limit.
// It returns after all invocations have completed; if any invocation
// fails, Each returns the first error observed. Panics in fn are
// propagated to the caller.
func (t T) Each(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	workers := n
	if t.Limit > 0 && t.Limit < workers {
		workers = t.Limit
	}
	var (
		mu    sync.Mutex
		first error
		next  int
		wg    sync.WaitGroup
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				mu.Lock()
				if first != nil || next >= n {
					mu.Unlock()
					return
				}
				i := next
				next++
				mu.Unlock()
				if err := apply(fn, i); err != nil {
					mu.Lock()
					if first == nil {
						first = err
					}
					mu.Unlock()
					return
				}
			}
		}()
	}
	wg.Wait()
	if err, ok := first.(panicErr); ok {
		panic(fmt.Sprintf("traverse child: %v\n%s", err.v, err.stack))
	}
	return first
}

// Range splits [0, n) into contiguous subranges, invoking fn once per
// subrange. It amortizes per-invocation costs when n is large and the
// per-element work is small.
func (t T) Range(n int, fn func(start, end int) error) error {
	m := n
	if t.Limit > 0 && t.Limit < n {
		m = t.Limit
	}
	return t.Each(m, func(i int) error {
		start := i * n / m
		end := (i + 1) * n / m
		if start == end {
			return nil
		}
		return fn(start, end)
	})
}

// Each is shorthand for (T{}).Each.
func Each(n int, fn func(i int) error) error {
	return T{}.Each(n, fn)
}

type panicErr struct {
	v     interface{}
	stack []byte
}

func (p panicErr) Error() string { return fmt.Sprint(p.v) }

func apply(fn func(i int) error, i int) (err error) {
	defer func() {
		if perr := recover(); perr != nil {
			err = panicErr{perr, debug.Stack()}
		}
	}()
	return fn(i)
}
