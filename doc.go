// Package genbuf provides a fixed-capacity circular buffer with
// generation-checked handles.
//
// # Packages
//
//   - buffer: the GenerationalBuffer container. Push returns a Handle;
//     Get, GetPtr, and IsValid detect when the handle's slot has been
//     overwritten by a later insertion, without storing per-slot metadata.
//   - errors: classified error handling (transient / invalid / fatal)
//     shared across the library.
//   - metric: Prometheus registry plumbing for optional metrics export.
//
// # Design
//
// The buffer keeps one write cursor and one generation counter. A slot's
// expected generation is derived from its position relative to the cursor,
// so staleness detection costs O(1) space for the entire buffer. See the
// buffer package documentation for the full semantics and the ownership
// model.
//
//	buf, err := buffer.New[Event](4096)
//	if err != nil {
//		return err
//	}
//	h := buf.Push(ev)
//	...
//	if ev, ok := buf.Get(h); ok {
//		// slot not yet reused, ev is the value inserted at h
//	}
package genbuf
