package domain

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Executor runs fn for every index in [0, n) and returns once all calls have
// finished. Implementations differ only in scheduling.
type Executor interface {
	Run(n int, fn func(i int))
}

// NewExecutor selects the executor once for the whole process. jobs <= 0 means
// one worker per available CPU; a single worker degrades to sequential
// iteration.
func NewExecutor(jobs int) Executor {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	if jobs == 1 {
		return NewSequentialExecutor()
	}

	return NewParallelExecutor(jobs)
}

type sequentialExecutor struct{}

// NewSequentialExecutor returns an Executor that runs every call in order on
// the calling goroutine.
func NewSequentialExecutor() Executor {
	return sequentialExecutor{}
}

func (sequentialExecutor) Run(n int, fn func(i int)) {
	for i := range n {
		fn(i)
	}
}

type parallelExecutor struct {
	limit int
}

// NewParallelExecutor returns an Executor running at most limit calls at once.
func NewParallelExecutor(limit int) Executor {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	return parallelExecutor{limit: limit}
}

func (e parallelExecutor) Run(n int, fn func(i int)) {
	var g errgroup.Group

	g.SetLimit(e.limit)

	for i := range n {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}

	_ = g.Wait()
}

// dispatch applies task to every item and returns the results in item order.
// Each call writes only its own slot, so no locking is needed. A panicking
// task is recovered and replaced by onPanic's result for that item.
func dispatch[T, R any](exec Executor, items []T, task func(T) R, onPanic func(T, any) R) []R {
	results := make([]R, len(items))

	exec.Run(len(items), func(i int) {
		defer func() {
			if r := recover(); r != nil {
				results[i] = onPanic(items[i], r)
			}
		}()

		results[i] = task(items[i])
	})

	return results
}
