// Package buffer provides a fixed-capacity circular buffer that issues
// generation-checked handles on insertion.
//
// A Handle lets a caller retrieve a value later while detecting whether the
// slot has since been overwritten by a newer insertion. Staleness is derived
// from the write cursor and a single generation counter; no per-slot
// metadata is stored.
package buffer

import (
	"fmt"

	"github.com/c360/genbuf/errors"
)

// OverwriteCallback is called with a value that is being displaced, either
// because its slot is overwritten by a newer insertion or because the buffer
// is cleared.
type OverwriteCallback[T any] func(value T)

// Handle is a typed token granting staleness-checked access to a slot's
// value. It combines a slot index with the generation that was current when
// the value was inserted.
//
// Handles are copyable and comparable: two handles are equal iff both index
// and generation match. The element type parameter keeps handles from
// buffers of different element types apart at compile time, but a handle
// carries no instance identity - two buffers of the same element type can
// cross-validate a handle whose index and generation happen to coincide.
// That is an inherent limitation of the design, not a bug.
type Handle[T any] struct {
	index      int
	generation uint32
}

func newHandle[T any](index int, generation uint32) Handle[T] {
	return Handle[T]{index: index, generation: generation}
}

// Index returns the slot index the handle refers to.
func (h Handle[T]) Index() int {
	return h.index
}

// Generation returns the generation recorded at insertion time.
func (h Handle[T]) Generation() uint32 {
	return h.generation
}

// String returns a human-readable representation of the handle.
func (h Handle[T]) String() string {
	return fmt.Sprintf("Handle{index: %d, generation: %d}", h.index, h.generation)
}

// New creates a generational buffer with the given maximum capacity.
// Capacity is fixed for the lifetime of the buffer.
//
// A capacity of zero or less is rejected with a classified Invalid error
// wrapping errors.ErrInvalidCapacity: cursor arithmetic is modular in the
// capacity, so a zero-capacity buffer has no defined insertion behavior and
// is disallowed outright.
//
// Stats are always collected. Prometheus metrics are optional via
// WithMetrics(); a registration failure surfaces as an error.
func New[T any](capacity int, options ...Option[T]) (*GenerationalBuffer[T], error) {
	if capacity <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidCapacity, "Buffer", "New",
			fmt.Sprintf("capacity %d", capacity))
	}

	opts := applyOptions(options...)

	// Stats are always initialized - observability is not optional
	stats := NewStatistics()

	var metrics *bufferMetrics
	// Optionally expose stats as Prometheus metrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		var err error
		metrics, err = newBufferMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.Wrap(err, "Buffer", "New", "metrics registration")
		}
	}

	return &GenerationalBuffer[T]{
		entries:     make([]T, 0, capacity),
		maxCapacity: capacity,
		stats:       stats,
		metrics:     metrics,
		opts:        opts,
	}, nil
}
