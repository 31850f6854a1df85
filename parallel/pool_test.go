package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestPoolRunsEveryJob(t *testing.T) {
	for _, n := range []int{1, 3, 0} {
		pool := Start(n)
		if n == 0 && pool.Workers() != runtime.GOMAXPROCS(0) {
			t.Errorf("Start(0) spawned %d workers", pool.Workers())
		}

		var sum atomic.Int64
		for i := range 100 {
			pool.Do(func() { sum.Add(int64(i)) })
		}
		pool.Wait(true)

		if got := sum.Load(); got != 4950 {
			t.Errorf("Start(%d): sum = %d, want 4950", n, got)
		}
	}
}

func TestPoolWaitIsRepeatable(t *testing.T) {
	pool := Start(2)
	var count atomic.Int32
	pool.Do(func() { count.Add(1) })
	pool.Wait(true)
	pool.Wait(true)
	pool.Cancel()

	if count.Load() != 1 {
		t.Errorf("ran %d jobs", count.Load())
	}
}

func TestPoolWaitKeepsPoolOpen(t *testing.T) {
	pool := Start(4)
	var count atomic.Int32
	for range 10 {
		pool.Do(func() { count.Add(1) })
	}
	pool.Wait(false)
	if count.Load() != 10 {
		t.Fatalf("first batch ran %d jobs", count.Load())
	}

	for range 5 {
		pool.Do(func() { count.Add(1) })
	}
	pool.Wait(true)
	if count.Load() != 15 {
		t.Errorf("ran %d jobs", count.Load())
	}
}
