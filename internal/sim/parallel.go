package sim

import (
	"runtime"
	"sync"
)

// parallelThreshold is the particle count above which the force loop is
// split across workers. Below it goroutine overhead dominates.
const parallelThreshold = 400

// accelerateParallel splits the force loop into contiguous chunks, one
// per CPU. Workers write disjoint ranges of s.acc so no locking is needed.
func (s *Simulation) accelerateParallel() {
	n := len(s.Particles)
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			s.accelerateRange(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
