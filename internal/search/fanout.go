package search

import (
	"fmt"

	"github.com/sourcegraph/conc/pool"
)

// fanout runs tasks that each produce a batch of results and concatenates
// the batches once every task has returned. The first task error becomes the
// error of the whole fan-out; no task is cancelled because of it.
type fanout[T any] struct {
	p *pool.ResultErrorPool[[]T]
}

func newFanout[T any](limit int) *fanout[T] {
	p := pool.NewWithResults[[]T]().WithErrors().WithFirstError()
	if limit > 0 {
		p = p.WithMaxGoroutines(limit)
	}
	return &fanout[T]{p: p}
}

// Go schedules task.
func (f *fanout[T]) Go(task func() ([]T, error)) {
	f.p.Go(task)
}

// Wait blocks until every scheduled task has returned. On success the result
// is never nil.
func (f *fanout[T]) Wait() ([]T, error) {
	batches, err := f.p.Wait()
	if err != nil {
		return nil, err
	}
	n := 0
	for _, b := range batches {
		n += len(b)
	}
	out := make([]T, 0, n)
	for _, b := range batches {
		out = append(out, b...)
	}
	return out, nil
}

// wrapStoreErr annotates a store error with the query that failed. A nil err
// stays nil.
func wrapStoreErr(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
