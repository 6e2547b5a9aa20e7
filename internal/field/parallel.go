package field

import (
	"runtime"
	"sync"
)

// ParallelRows calls fn for every index in [0, n) across a bounded set of
// workers and returns the per-index results concatenated in index order,
// so callers keep scan order no matter how the work was scheduled.
func ParallelRows[T any](n int, fn func(i int) []T) []T {
	if n <= 0 {
		return nil
	}
	rows := make([][]T, n)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			rows[i] = fn(i)
		}
		return flatten(rows)
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				rows[i] = fn(i)
			}
		}(start, end)
	}
	wg.Wait()

	return flatten(rows)
}

func flatten[T any](rows [][]T) []T {
	total := 0
	for _, r := range rows {
		total += len(r)
	}
	out := make([]T, 0, total)
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}

// Steps returns the sample coordinates start, start+step, ... that satisfy
// the bound. Inclusive selects <= bound instead of < bound. A non-positive
// step yields nil.
func Steps(start, bound, step float64, inclusive bool) []float64 {
	if step <= 0 {
		return nil
	}
	var out []float64
	for v := start; v < bound || (inclusive && v == bound); v += step {
		out = append(out, v)
	}
	return out
}
