/*
	pool provides the bounded fork-join worker pool that is shared by the
	parallel traversal engines and the parallel reduction.
*/

package pool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size group of worker goroutines that execute batches of
// tasks submitted through Run.
//
// Task hand-off is unbuffered: a task is only given to a worker that is idle
// at the time of submission. When every worker is busy, the submitting
// goroutine executes the task itself. Batches can therefore be nested (a task
// may call Run) without deadlocking the pool and without ever spawning more
// goroutines than the configured number of workers.
type Pool struct {
	wg       sync.WaitGroup
	workers  int
	closed   int32
	taskChan chan task
}

// batch tracks the number of tasks of a single Run call that are yet to be
// executed.
type batch struct {
	pending       int64
	completedChan chan struct{}
}

type task struct {
	idx int
	fn  func(int)
	b   *batch
}

// New spins up a pool with numOfWorkers workers. A non-positive value
// selects runtime.NumCPU() workers. It is important for callers to invoke
// Close() on the returned pool when they are done using it.
func New(numOfWorkers int) *Pool {
	if numOfWorkers <= 0 {
		numOfWorkers = runtime.NumCPU()
	}

	p := &Pool{
		workers:  numOfWorkers,
		taskChan: make(chan task),
	}

	p.wg.Add(numOfWorkers)
	for i := 0; i < numOfWorkers; i++ {
		go p.worker()
	}

	return p
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int { return p.workers }

// Run invokes fn(i) for every i in [0, n) and blocks until all n invocations
// have returned. Invocations may run concurrently and in any order.
//
// Run can be called concurrently from multiple goroutines and from within a
// running task, but not concurrently with Close.
func (p *Pool) Run(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	// The completion channel is buffered so that the task that completes the
	// batch never blocks, even if the submitter is still dispatching.
	b := &batch{
		pending:       int64(n),
		completedChan: make(chan struct{}, 1),
	}

	inline := atomic.LoadInt32(&p.closed) == 1
	for i := 0; i < n; i++ {
		t := task{idx: i, fn: fn, b: b}
		if inline {
			execute(t)

			continue
		}

		select {
		case p.taskChan <- t:
		default:
			// No idle worker; run the task on the submitting goroutine.
			execute(t)
		}
	}

	// Block until every task of the batch has been executed.
	<-b.completedChan
}

// Close stops all workers and waits for them to exit. Subsequent Run calls
// execute their tasks on the calling goroutine.
func (p *Pool) Close() {
	if !atomic.CompareAndSwapInt32(&p.closed, 0, 1) {
		return
	}

	close(p.taskChan)
	p.wg.Wait()
}

// worker polls the task channel and executes incoming tasks. The worker exits
// when the task channel is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for t := range p.taskChan {
		execute(t)
	}
}

func execute(t task) {
	t.fn(t.idx)

	// Only the last task of the batch signals completion.
	if atomic.AddInt64(&t.b.pending, -1) == 0 {
		t.b.completedChan <- struct{}{}
	}
}
