package buffer

import (
	"fmt"
	"testing"

	"github.com/c360/genbuf/metric"
)

// BenchmarkPush benchmarks insertions across buffer sizes, with and without
// Prometheus metrics enabled.
func BenchmarkPush(b *testing.B) {
	for _, capacity := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprintf("StatsOnly_%d", capacity), func(b *testing.B) {
			buf, err := New[int](capacity)
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf.Push(i)
			}
		})

		b.Run(fmt.Sprintf("WithMetrics_%d", capacity), func(b *testing.B) {
			registry := metric.NewMetricsRegistry()
			buf, err := New[int](capacity, WithMetrics[int](registry, fmt.Sprintf("bench_%d", capacity)))
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf.Push(i)
			}
		})
	}
}

// BenchmarkGet benchmarks lookups over a mix of valid and stale handles.
func BenchmarkGet(b *testing.B) {
	for _, capacity := range []int{100, 1000} {
		b.Run(fmt.Sprintf("Valid_%d", capacity), func(b *testing.B) {
			buf, err := New[int](capacity)
			if err != nil {
				b.Fatal(err)
			}

			handles := make([]Handle[int], capacity)
			for i := 0; i < capacity; i++ {
				handles[i] = buf.Push(i)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf.Get(handles[i%capacity])
			}
		})

		b.Run(fmt.Sprintf("Stale_%d", capacity), func(b *testing.B) {
			buf, err := New[int](capacity)
			if err != nil {
				b.Fatal(err)
			}

			handles := make([]Handle[int], capacity)
			for i := 0; i < capacity; i++ {
				handles[i] = buf.Push(i)
			}
			// A second lap invalidates every collected handle
			for i := 0; i < capacity; i++ {
				buf.Push(i)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf.Get(handles[i%capacity])
			}
		})
	}
}

// BenchmarkIsValid benchmarks the validity check alone.
func BenchmarkIsValid(b *testing.B) {
	buf, err := New[int](1000)
	if err != nil {
		b.Fatal(err)
	}

	handles := make([]Handle[int], 1000)
	for i := 0; i < 1000; i++ {
		handles[i] = buf.Push(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.IsValid(handles[i%1000])
	}
}

// BenchmarkAll benchmarks full enumeration of a wrapped buffer.
func BenchmarkAll(b *testing.B) {
	buf, err := New[int](1000)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 2500; i++ {
		buf.Push(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range buf.All() {
			_ = v
		}
	}
}
