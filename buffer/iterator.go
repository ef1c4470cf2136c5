package buffer

import "iter"

// All returns a sequence of (handle, value) pairs, one per live slot, in no
// particular order. Every yielded handle satisfies IsValid at yield time.
//
// The sequence is lazy and restartable. It reads the live entries directly;
// the single-owner rule applies, so do not Push or Clear while ranging.
func (b *GenerationalBuffer[T]) All() iter.Seq2[Handle[T], T] {
	return func(yield func(Handle[T], T) bool) {
		for i, value := range b.entries {
			if !yield(newHandle[T](i, b.generationAt(i)), value) {
				return
			}
		}
	}
}

// Values returns a sequence of the live values, in no particular order.
func (b *GenerationalBuffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range b.entries {
			if !yield(value) {
				return
			}
		}
	}
}

// Handles returns a sequence of the currently valid handles, in no
// particular order.
func (b *GenerationalBuffer[T]) Handles() iter.Seq[Handle[T]] {
	return func(yield func(Handle[T]) bool) {
		for i := range b.entries {
			if !yield(newHandle[T](i, b.generationAt(i))) {
				return
			}
		}
	}
}
