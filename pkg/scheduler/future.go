package scheduler

import (
	"context"
	"sync"
)

type Work[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

// Future resolves once with the value sent on its input channel.
type Future[T any] struct {
	input    chan T
	output   chan T
	resolved bool
	value    T
	cancel   context.CancelFunc
	lock     sync.Mutex
}

func NewFuture[T any](input chan T, cancel context.CancelFunc) *Future[T] {
	f := &Future[T]{
		input:  input,
		output: make(chan T, 1),
		cancel: cancel,
	}

	go func() {
		v := <-f.input
		f.lock.Lock()
		f.value = v
		f.resolved = true
		f.lock.Unlock()

		f.output <- v
		f.cancel()
	}()

	return f
}

// C returns a channel receiving the value once resolved.
func (f *Future[T]) C() <-chan T {
	return f.output
}

func (f *Future[T]) Poll() (value T, isResolved bool) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.resolved {
		return f.value, true
	}

	var none T
	return none, false
}

// Stop cancels the context of the work.
func (f *Future[T]) Stop() {
	f.cancel()
}

type queue[T any] []T

func (q *queue[T]) Len() int { return len(*q) }

func (q *queue[T]) Pop() T {
	old := *q
	x := old[0]
	var zero T
	old[0] = zero
	*q = old[1:]
	return x
}

func (q *queue[T]) Push(t T) {
	*q = append(*q, t)
}
