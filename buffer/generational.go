package buffer

import "fmt"

// GenerationalBuffer is an append-only circular buffer of fixed maximum
// capacity. Push returns a Handle that Get and IsValid check against the
// slot's expected generation, so callers detect when a slot has been
// overwritten by a later lap of the write cursor.
//
// The expected generation of a slot is computed from the slot's position
// relative to the cursor; it is never stored per slot, keeping the
// staleness-tracking overhead at one counter for the whole buffer.
//
// The buffer is single-owner: one writer, or any number of readers, but
// never both at once. It performs no internal locking (see the package
// documentation). Statistics use atomic counters and may be read from
// another goroutine at any time.
type GenerationalBuffer[T any] struct {
	entries           []T
	maxCapacity       int
	nextIndex         int    // slot the next Push writes to
	currentGeneration uint32 // incremented on each full lap of the cursor

	stats   *Statistics // always initialized
	metrics *bufferMetrics
	opts    *bufferOptions[T]
}

// Push inserts a value and returns a handle to it.
//
// While the buffer is below capacity the value is appended; once full, the
// oldest slot is overwritten and the displaced value is handed to the
// overwrite callback if one is configured. The returned handle is valid
// until the cursor returns to its slot on a later lap.
//
// The generation counter wraps on uint32 overflow; overflow is expected and
// tolerated, not an error.
func (b *GenerationalBuffer[T]) Push(value T) Handle[T] {
	// Captured before any mutation
	index := b.nextIndex
	generation := b.currentGeneration

	if len(b.entries) < b.maxCapacity {
		// Buffer is not full yet, just append
		b.entries = append(b.entries, value)
	} else {
		// Buffer is full, overwrite the oldest entry
		displaced := b.entries[index]
		b.entries[index] = value

		b.stats.Overwrite()
		if b.metrics != nil {
			b.metrics.recordOverwrite()
		}

		if b.opts.overwriteCallback != nil {
			b.opts.overwriteCallback(displaced)
		}
	}

	// Advance to the next position
	b.nextIndex = (b.nextIndex + 1) % b.maxCapacity

	// If the cursor wrapped around, a lap is complete
	if b.nextIndex == 0 {
		b.currentGeneration++ // wrapping add
		b.stats.Lap()
		if b.metrics != nil {
			b.metrics.recordLap()
		}
	}

	b.stats.Push()
	b.stats.UpdateSize(int64(len(b.entries)))
	if b.metrics != nil {
		b.metrics.recordPush(len(b.entries), b.maxCapacity, b.currentGeneration)
	}

	return newHandle[T](index, generation)
}

// Get returns the value the handle refers to, or the zero value and false
// if the handle is stale, out of range, or fabricated. It never panics,
// whatever the handle contains.
func (b *GenerationalBuffer[T]) Get(h Handle[T]) (T, bool) {
	var zero T

	b.stats.Lookup()
	if b.metrics != nil {
		b.metrics.recordLookup()
	}

	if h.index < 0 || h.index >= len(b.entries) {
		b.recordStale()
		return zero, false
	}

	if h.generation != b.generationAt(h.index) {
		b.recordStale()
		return zero, false
	}

	b.stats.Hit()
	return b.entries[h.index], true
}

// GetPtr returns a pointer to the value the handle refers to, for in-place
// mutation, or nil if the handle is not valid.
//
// The pointer is only good until the next Push or Clear: growth-phase
// appends may move the backing array, and a later lap overwrites the slot.
func (b *GenerationalBuffer[T]) GetPtr(h Handle[T]) *T {
	b.stats.Lookup()
	if b.metrics != nil {
		b.metrics.recordLookup()
	}

	if h.index < 0 || h.index >= len(b.entries) {
		b.recordStale()
		return nil
	}

	if h.generation != b.generationAt(h.index) {
		b.recordStale()
		return nil
	}

	b.stats.Hit()
	return &b.entries[h.index]
}

// IsValid reports whether the handle still refers to live data. It agrees
// with Get: IsValid(h) is true exactly when Get(h) finds a value.
func (b *GenerationalBuffer[T]) IsValid(h Handle[T]) bool {
	if h.index < 0 || h.index >= len(b.entries) {
		return false
	}
	return h.generation == b.generationAt(h.index)
}

// Len returns the current number of live entries.
func (b *GenerationalBuffer[T]) Len() int {
	return len(b.entries)
}

// Capacity returns the fixed maximum capacity of the buffer.
func (b *GenerationalBuffer[T]) Capacity() int {
	return b.maxCapacity
}

// IsEmpty returns true if the buffer holds no entries.
func (b *GenerationalBuffer[T]) IsEmpty() bool {
	return len(b.entries) == 0
}

// IsFull returns true if the buffer has reached its maximum capacity.
func (b *GenerationalBuffer[T]) IsFull() bool {
	return len(b.entries) == b.maxCapacity
}

// Clear removes all entries and resets the cursor and generation to zero.
// Every handle issued before the call becomes invalid: the live length
// drops to zero, so the index guard in Get rejects them all.
//
// Cleared values are handed to the overwrite callback if one is configured,
// and slots are zeroed so referenced memory can be collected.
func (b *GenerationalBuffer[T]) Clear() {
	if b.opts.overwriteCallback != nil {
		for _, value := range b.entries {
			b.opts.overwriteCallback(value)
		}
	}

	clear(b.entries) // release references for GC
	b.entries = b.entries[:0]
	b.nextIndex = 0
	b.currentGeneration = 0

	b.stats.Clear()
	b.stats.UpdateSize(0)
	if b.metrics != nil {
		b.metrics.recordClear()
	}
}

// Stats returns buffer statistics (always available for observability).
func (b *GenerationalBuffer[T]) Stats() *Statistics {
	return b.stats
}

// String returns a debug summary of the buffer state.
func (b *GenerationalBuffer[T]) String() string {
	return fmt.Sprintf("GenerationalBuffer{capacity: %d, len: %d, nextIndex: %d, generation: %d}",
		b.maxCapacity, len(b.entries), b.nextIndex, b.currentGeneration)
}

// generationAt computes the generation that should occupy a slot, from the
// slot's position relative to the write cursor alone. Slots behind the
// cursor belong to the current lap; slots at or ahead of it were written on
// the previous lap, so their generation is one less, saturating at zero for
// slots never yet wrapped over (those are excluded from lookup by the
// length guard anyway).
func (b *GenerationalBuffer[T]) generationAt(index int) uint32 {
	if index < b.nextIndex {
		return b.currentGeneration
	}
	if b.currentGeneration == 0 {
		return 0
	}
	return b.currentGeneration - 1
}

func (b *GenerationalBuffer[T]) recordStale() {
	b.stats.Stale()
	if b.metrics != nil {
		b.metrics.recordStale()
	}
}
