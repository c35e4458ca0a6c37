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

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers(): got %d, want 4", pool.Workers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.Workers() != runtime.GOMAXPROCS(0) {
		t.Errorf("Workers(): got %d, want %d", pool.Workers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 4, 5, 100, 1023} {
		hits := make([]int32, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Errorf("n=%d: index %d visited %d times, want 1", n, i, h)
			}
		}
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 257
	var count atomic.Int64
	results := make([]int, n)
	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
		count.Add(1)
	})

	if count.Load() != int64(n) {
		t.Errorf("count: got %d, want %d", count.Load(), n)
	}
	for i, r := range results {
		if r != i*2 {
			t.Errorf("results[%d]: got %d, want %d", i, r, i*2)
		}
	}
}

func TestZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) { called = true })
	pool.ParallelForAtomic(0, func(i int) { called = true })
	if called {
		t.Error("fn called for an empty range")
	}
}

func TestNilPool(t *testing.T) {
	var pool *Pool

	sum := 0
	pool.ParallelForAtomic(10, func(i int) { sum += i })
	if sum != 45 {
		t.Errorf("sum: got %d, want 45", sum)
	}

	var ranges [][2]int
	pool.ParallelFor(10, func(start, end int) { ranges = append(ranges, [2]int{start, end}) })
	if len(ranges) != 1 || ranges[0] != [2]int{0, 10} {
		t.Errorf("ranges: got %v, want [[0 10]]", ranges)
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	for i, r := range results {
		if r != i*2 {
			t.Errorf("results[%d]: got %d, want %d", i, r, i*2)
		}
	}
}

func TestCloseDuringLoops(t *testing.T) {
	pool := New(4)

	const loops, n = 8, 500
	var total atomic.Int64
	var wg sync.WaitGroup
	for l := range loops {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				if l%2 == 0 {
					pool.ParallelForAtomic(n, func(int) { total.Add(1) })
				} else {
					pool.ParallelFor(n, func(start, end int) { total.Add(int64(end - start)) })
				}
			}
		}()
	}
	pool.Close()
	wg.Wait()

	if got, want := total.Load(), int64(loops*20*n); got != want {
		t.Errorf("items: got %d, want %d", got, want)
	}
}

func TestPanicPropagates(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
	}()
	pool.ParallelForAtomic(64, func(i int) {
		if i == 17 {
			panic("boom")
		}
	})
	t.Error("ParallelForAtomic returned without panicking")
}

func TestPoolUsableAfterPanic(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	func() {
		defer func() { _ = recover() }()
		pool.ParallelFor(8, func(start, end int) { panic("boom") })
	}()

	var count atomic.Int64
	pool.ParallelFor(8, func(start, end int) { count.Add(int64(end - start)) })
	if count.Load() != 8 {
		t.Errorf("count: got %d, want 8", count.Load())
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	for b.Loop() {
		pool.ParallelFor(1000, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func BenchmarkParallelForAtomic(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	for b.Loop() {
		pool.ParallelForAtomic(1000, func(i int) {
			_ = i * i
		})
	}
}
