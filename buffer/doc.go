// Package buffer implements a fixed-capacity, append-only circular buffer
// whose insertions return generation-checked handles, with built-in
// statistics tracking and optional Prometheus metrics integration.
//
// # Overview
//
// GenerationalBuffer hands out handles instead of raw indices. A handle
// records the slot it points at and the generation that was current when
// the value was inserted; once the write cursor comes back around and
// overwrites the slot, the handle silently stops resolving. This solves the
// classic stale-reference problem of slot-based storage while keeping
// insert and lookup O(1).
//
// # Quick Start
//
// Basic usage:
//
//	buf, err := buffer.New[int](1000)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	h := buf.Push(42)
//
//	value, ok := buf.Get(h) // 42, true
//
// After the cursor laps the buffer, old handles go stale:
//
//	buf, _ := buffer.New[string](2)
//	h1 := buf.Push("a")
//	buf.Push("b")
//	buf.Push("c") // overwrites "a"
//
//	_, ok := buf.Get(h1) // false: slot reused on a later lap
//
// With metrics and an overwrite callback:
//
//	buf, err := buffer.New[*Session](5000,
//		buffer.WithMetrics[*Session](registry, "session_window"),
//		buffer.WithOverwriteCallback[*Session](func(s *Session) { s.Release() }),
//	)
//
// # Generation Tracking
//
// The buffer stores exactly one generation counter and one write cursor.
// A slot's expected generation is derived on demand from its position
// relative to the cursor: slots behind the cursor were written on the
// current lap, slots at or ahead of it on the previous one. No per-slot
// generation array exists, so staleness tracking costs O(1) space for the
// whole buffer regardless of capacity.
//
// The generation counter is a uint32 with wrapping arithmetic. Overflow is
// tolerated: a counter wrap can in principle revalidate a handle issued
// exactly 2^32 laps earlier, which is accepted as out of practical reach.
//
// # Handle Semantics
//
//   - Handles are small, copyable, comparable values.
//   - A handle is valid iff its slot is live and its generation matches the
//     slot's derived generation. IsValid and Get always agree.
//   - Lookups with fabricated or foreign handles return absence, never
//     panic. Staleness is the structure's core feature, not an error:
//     no lookup path returns an error value.
//   - Handles are phantom-typed by the element type, so handles from
//     buffers of different element types cannot be confused at compile
//     time. Instance identity is not embedded: two buffers of the same
//     element type can cross-validate coincidentally matching handles.
//     This is a documented limitation of the design.
//
// # Enumeration
//
// All, Values, and Handles return lazy, restartable range-over-func
// sequences over the live slots:
//
//	for h, v := range buf.All() {
//		// every h satisfies buf.IsValid(h)
//	}
//
// Order is implementation-defined. Early states happen to look
// insertion-ordered before the first wrap; do not rely on it.
//
// # Ownership Model
//
// The buffer performs no internal locking. It follows a single-owner
// discipline: one goroutine mutates via Push and Clear, and shared
// read-only access may coexist with other readers but never with a writer.
// Every operation is a bounded, synchronous computation with no blocking
// and no I/O. Callers needing cross-goroutine mutation must wrap the buffer
// in their own mutual exclusion or message passing.
//
// Statistics are the exception: they use atomic counters and may be read
// from a monitoring goroutine at any time via buf.Stats().
//
// # Observability
//
// Statistics (always on):
//   - Pushes, lookups, hits, stale rejections, overwrites, laps, clears
//   - Computed hit rate, throughput, utilization
//   - Available via buf.Stats(), zero configuration
//
// Prometheus metrics (optional):
//   - Enabled via WithMetrics() with a metric.MetricsRegistry and prefix
//   - Counters and gauges under the genbuf_buffer namespace with a
//     component label per buffer instance
//
// # Performance Characteristics
//
// Operations:
//   - Push: O(1); the growth phase may reallocate the backing array
//     internally, which never changes handle semantics as observed by
//     callers
//   - Get, GetPtr, IsValid: O(1)
//   - Len, Capacity, IsEmpty, IsFull: O(1)
//   - Clear: O(n) to release entries
//
// Memory: capacity * sizeof(T) for storage plus two integers of
// bookkeeping; statistics add ~100 bytes.
package buffer
