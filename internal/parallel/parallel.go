// Package parallel schedules independent scanline work across goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// For runs fn(i) for every i in [0, n) across the given number of worker
// goroutines and blocks until all calls return. Indices are handed out
// through a shared atomic counter, so slow scanlines do not stall fast
// ones behind a fixed partition.
//
// workers <= 0 selects GOMAXPROCS. With one worker (or n == 1) fn runs
// on the calling goroutine. Each index is processed exactly once; fn
// must be safe to call concurrently for distinct indices.
func For(workers, n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}
