package render

import (
	"runtime"
	"sync"
)

// parallelRows calls fn for every row in [0, rows), splitting the rows into
// one contiguous band per CPU. fn must only touch its own row.
func parallelRows(rows int, fn func(y int)) {
	if rows <= 0 {
		return
	}
	workers := min(runtime.GOMAXPROCS(0), rows)
	band := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < rows; start += band {
		end := min(start+band, rows)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := start; y < end; y++ {
				fn(y)
			}
		}()
	}
	wg.Wait()
}
