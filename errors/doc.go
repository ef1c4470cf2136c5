// Package errors provides standardized error handling patterns for the genbuf library.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input, non-retryable), and
// Fatal (unrecoverable, stop processing).
//
// Classification lets embedding systems make informed decisions about error
// handling without hardcoded error string matching. It integrates with Go's
// standard error handling patterns, supporting errors.Is(), errors.As(), and
// error wrapping chains.
//
// Nothing in genbuf fails transiently: the library's own errors are surfaced
// at construction and metric-registration time and are either Invalid or
// Fatal. The Transient class exists so embedding code can route all three
// classes through one switch.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	if capacity <= 0 {
//	    return errors.WrapInvalid(errors.ErrInvalidCapacity, "Buffer", "New", "capacity validation")
//	}
//
// Check classification at call sites:
//
//	buf, err := buffer.New[int](n)
//	if errors.IsInvalid(err) {
//	    // caller bug: bad capacity, do not retry
//	}
//
// Wrapped errors follow the "component.method: action failed: cause" format
// and always preserve the underlying error for errors.Is / errors.As.
package errors
