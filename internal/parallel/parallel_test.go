package parallel

import (
	"sync/atomic"
	"testing"
)

func countVisits(n int, cfg Config) []int64 {
	visits := make([]int64, n)
	For(n, func(i int) {
		atomic.AddInt64(&visits[i], 1)
	}, cfg)
	return visits
}

func assertAllOnce(t *testing.T, visits []int64) {
	t.Helper()
	for i, v := range visits {
		if v != 1 {
			t.Errorf("index %d visited %d times, want 1", i, v)
		}
	}
}

func TestForParallel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinChunkSize = 64

	assertAllOnce(t, countVisits(1000, cfg))
}

func TestForDisabledRunsInline(t *testing.T) {
	assertAllOnce(t, countVisits(100, Config{Enabled: false}))
}

func TestForBelowChunkThreshold(t *testing.T) {
	cfg := DefaultConfig()
	assertAllOnce(t, countVisits(cfg.MinChunkSize-1, cfg))
}

func TestForZeroItems(t *testing.T) {
	called := false
	For(0, func(int) { called = true }, DefaultConfig())
	if called {
		t.Error("body should not run for n = 0")
	}
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 100000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		seq := cfg
		seq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, seq)
		}
	})
}
