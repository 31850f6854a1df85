// Package parallel runs independent jobs on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
	CancelFunc func()
)

type Pool struct {
	wg      sync.WaitGroup
	pending sync.WaitGroup
	workers int
	Do      WorkerFunc
	Wait    WaitFunc
	Cancel  CancelFunc
}

// Start spawns numWorkers goroutines, GOMAXPROCS when numWorkers < 1. A
// single worker runs jobs inline on the caller.
//
// Do queues a job, blocking while the queue is full. Wait blocks until the
// queued jobs are done; with done set it first closes the pool, which then
// accepts no further jobs.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		workers: numWorkers,
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}
	if numWorkers == 1 {
		return pool
	}

	jobs := make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range jobs {
				f()
			}
		})
	}

	pool.Do = func(f func()) {
		pool.pending.Add(1)
		jobs <- func() {
			defer pool.pending.Done()
			f()
		}
	}
	pool.Cancel = sync.OnceFunc(func() { close(jobs) })
	pool.Wait = func(done bool) {
		if !done {
			pool.pending.Wait()
			return
		}
		pool.Cancel()
		pool.wg.Wait()
	}

	return pool
}

func (p *Pool) Workers() int {
	return p.workers
}
