package scheduler

import (
	"context"
	"fmt"
	"sync"
)

type workRequest struct {
	fn  Work[any]
	c   chan Result[any]
	ctx context.Context
}

// Scheduler runs work on a fixed number of workers. Work beyond that waits
// in a FIFO queue.
type Scheduler struct {
	idle       int
	pending    queue[workRequest]
	work       chan workRequest
	done       chan struct{}
	stop       chan struct{}
	stopped    chan struct{}
	stopOnce   sync.Once
	running    sync.WaitGroup
	mainCtx    context.Context
	mainCancel context.CancelFunc
}

func NewScheduler(nbWorkers int) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		idle:       nbWorkers,
		work:       make(chan workRequest),
		done:       make(chan struct{}),
		stop:       make(chan struct{}),
		stopped:    make(chan struct{}),
		mainCtx:    ctx,
		mainCancel: cancel,
	}
	go s.run()
	return s
}

// AddWork queues w. Once the scheduler is closed the future resolves with context.Canceled.
func (s *Scheduler) AddWork(w Work[any]) *Future[Result[any]] {
	c := make(chan Result[any], 1)
	ctx, cancel := context.WithCancel(s.mainCtx)
	f := NewFuture(c, cancel)

	select {
	case s.work <- workRequest{fn: w, c: c, ctx: ctx}:
	case <-s.stopped:
		c <- Result[any]{Err: context.Canceled}
	}

	return f
}

// Close cancels all work and waits for running workers to return.
func (s *Scheduler) Close() {
	s.stopOnce.Do(func() {
		s.mainCancel()
		close(s.stop)
	})
	<-s.stopped
	s.running.Wait()
}

func (s *Scheduler) run() {
	for {
		select {
		case w := <-s.work:
			s.pending.Push(w)
			s.dispatch()
		case <-s.done:
			s.idle++
			s.dispatch()
		case <-s.stop:
			for s.pending.Len() > 0 {
				s.pending.Pop().c <- Result[any]{Err: context.Canceled}
			}
			close(s.stopped)
			return
		}
	}
}

func (s *Scheduler) dispatch() {
	for s.idle > 0 && s.pending.Len() > 0 {
		s.idle--
		s.running.Add(1)
		go s.execute(s.pending.Pop())
	}
}

func (s *Scheduler) execute(r workRequest) {
	defer s.running.Done()

	r.c <- call(r)

	select {
	case s.done <- struct{}{}:
	case <-s.stopped:
	}
}

func call(r workRequest) (res Result[any]) {
	defer func() {
		if p := recover(); p != nil {
			res = Result[any]{Err: fmt.Errorf("worker panicked: %v", p)}
		}
	}()

	// work cancelled while queued is not started
	if err := r.ctx.Err(); err != nil {
		return Result[any]{Err: err}
	}

	v, err := r.fn(r.ctx)
	return Result[any]{Data: v, Err: err}
}
