package window_test

import (
	"testing"

	"github.com/nachocab/plot/window"
)

// benchmarkTransform runs Transform over n synthetic points with window
// size k. It resets the timer before entering the loop and fails on
// unexpected errors.
func benchmarkTransform(b *testing.B, n, k int) {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i % 97)
	}
	opts := window.DefaultOptions(k)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := window.Transform(xs, opts); err != nil {
			b.Fatalf("Transform failed: %v", err)
		}
	}
}

// BenchmarkTransform_K5 measures the incremental path with a small window.
func BenchmarkTransform_K5(b *testing.B) { benchmarkTransform(b, 10_000, 5) }

// BenchmarkTransform_K500 measures the incremental path with a large
// window; throughput should match K5 because the slide is O(1) per step.
func BenchmarkTransform_K500(b *testing.B) { benchmarkTransform(b, 10_000, 500) }
