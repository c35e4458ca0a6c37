// Copyright 2025 jxl-oxide Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool runs block transforms on a fixed set of goroutines that
// live as long as the Pool. Decoding an image dispatches thousands of
// independent varblocks, so workers are spawned once and fed through a
// channel.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForAtomic(len(blocks), func(i int) {
//	    vardct.Transform(blocks[i].Coeffs, blocks[i].Type)
//	})
//
// A panic in fn is re-raised in the goroutine that called ParallelFor or
// ParallelForAtomic once every worker of that call has finished.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of workers shared by many parallel loops.
type Pool struct {
	workers int
	jobs    chan job

	// mu is held for reading while a loop queues jobs and for writing by
	// Close, so jobs is never closed under a pending send.
	mu     sync.RWMutex
	closed bool
}

type job struct {
	fn  func()
	run *run
}

// run tracks the jobs of one parallel loop and the first panic among them.
type run struct {
	wg        sync.WaitGroup
	panicOnce sync.Once
	panicVal  any
	panicked  bool
}

func (r *run) exec(fn func()) {
	defer r.wg.Done()
	defer func() {
		if v := recover(); v != nil {
			r.panicOnce.Do(func() {
				r.panicVal = v
				r.panicked = true
			})
		}
	}()
	fn()
}

func (r *run) wait() {
	r.wg.Wait()
	if r.panicked {
		panic(r.panicVal)
	}
}

// New starts a pool of numWorkers goroutines, or GOMAXPROCS of them when
// numWorkers <= 0. They run until Close.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: numWorkers,
		jobs:    make(chan job, numWorkers*2),
	}
	for range numWorkers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for j := range p.jobs {
		j.run.exec(j.fn)
	}
}

// Workers returns the number of goroutines in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers once queued jobs finish. It may run concurrently
// with loops: it waits for loops that are still queueing jobs, and loops
// started after it run on the caller's goroutine. It is safe to call more
// than once.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
}

// sequential reports whether a loop over n items should skip the workers.
func (p *Pool) sequential(n int) bool {
	return p == nil || min(p.workers, n) == 1
}

// submit queues fns as jobs of r. It reports false, queueing nothing, if
// the pool is closed.
func (p *Pool) submit(r *run, fns []func()) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	r.wg.Add(len(fns))
	for _, fn := range fns {
		p.jobs <- job{fn: fn, run: r}
	}
	return true
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. It returns when every range is done. A nil Pool
// runs fn(0, n) inline.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.sequential(n) {
		fn(0, n)
		return
	}

	workers := min(p.workers, n)
	chunk := (n + workers - 1) / workers

	fns := make([]func(), 0, workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		fns = append(fns, func() { fn(start, end) })
	}

	r := &run{}
	if !p.submit(r, fns) {
		fn(0, n)
		return
	}
	r.wait()
}

// ParallelForAtomic calls fn(i) for every i in [0, n), handing out indices
// one at a time so that uneven items balance across workers. A nil Pool
// runs the loop inline.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if p.sequential(n) {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	drain := func() {
		for {
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			fn(i)
		}
	}
	fns := make([]func(), min(p.workers, n))
	for i := range fns {
		fns[i] = drain
	}

	r := &run{}
	if !p.submit(r, fns) {
		drain()
		return
	}
	r.wait()
}
