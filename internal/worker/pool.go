// Package worker provides a generic concurrent worker pool for fan-out/fan-in
// batch runs. Used by `aoc all` to solve every registered puzzle at once while
// each puzzle keeps its own sequential scan.
package worker

import (
	"runtime"
	"sync"
)

// Result pairs a processed value with its original index to preserve ordering.
type Result[T any] struct {
	Index int
	Value T
	Err   error
}

// Pool fans out work items to a fixed number of goroutine workers
// and collects results preserving the original input order.
type Pool[I, T any] struct {
	concurrency int
}

// NewPool creates a worker pool with the given concurrency.
// If concurrency <= 0, defaults to runtime.NumCPU().
func NewPool[I, T any](concurrency int) *Pool[I, T] {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	return &Pool[I, T]{concurrency: concurrency}
}

// Concurrency returns the configured number of workers.
func (p *Pool[I, T]) Concurrency() int {
	return p.concurrency
}

// Process distributes items across workers, applies fn to each, and returns
// results in the same order as the input slice. Errors from individual items
// are captured per-result rather than aborting the whole batch.
func (p *Pool[I, T]) Process(items []I, fn func(I) (T, error)) []Result[T] {
	if len(items) == 0 {
		return nil
	}

	workers := min(p.concurrency, len(items))

	jobs := make(chan int, len(items))
	results := make([]Result[T], len(items))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				val, err := fn(items[i])
				results[i] = Result[T]{Index: i, Value: val, Err: err}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)

	wg.Wait()

	return results
}
