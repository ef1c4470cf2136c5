package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorTransient, "transient"},
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"invalid capacity", ErrInvalidCapacity, true},
		{"already registered", ErrAlreadyRegistered, true},
		{"metric registration", ErrMetricRegistration, false},
		{"plain error", fmt.Errorf("something broke"), false},
		{"wrapped invalid capacity", fmt.Errorf("wrap: %w", ErrInvalidCapacity), true},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, true},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalid(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"plain error", fmt.Errorf("boom"), false},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, true},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsFatal(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"plain error", fmt.Errorf("boom"), false},
		{"classified transient", &ClassifiedError{Class: ErrorTransient, Err: fmt.Errorf("test")}, true},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsTransient(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"nil error", nil, ErrorTransient},
		{"invalid capacity", ErrInvalidCapacity, ErrorInvalid},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, ErrorFatal},
		{"unknown error", fmt.Errorf("mystery"), ErrorTransient},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Classify(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestClassifiedError(t *testing.T) {
	underlying := fmt.Errorf("underlying issue")
	ce := &ClassifiedError{
		Class:     ErrorInvalid,
		Err:       underlying,
		Message:   "Buffer.New: capacity validation failed: underlying issue",
		Component: "Buffer",
		Operation: "New",
	}

	if ce.Error() != ce.Message {
		t.Errorf("expected message %q, got %q", ce.Message, ce.Error())
	}
	if !errors.Is(ce, underlying) {
		t.Error("expected Unwrap chain to reach underlying error")
	}
}

func TestClassifiedError_NoMessage(t *testing.T) {
	underlying := fmt.Errorf("underlying issue")
	ce := &ClassifiedError{Class: ErrorFatal, Err: underlying}

	if ce.Error() != underlying.Error() {
		t.Errorf("expected %q, got %q", underlying.Error(), ce.Error())
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		if Wrap(nil, "Buffer", "New", "anything") != nil {
			t.Error("wrapping nil should return nil")
		}
	})

	t.Run("format", func(t *testing.T) {
		err := Wrap(ErrInvalidCapacity, "Buffer", "New", "capacity validation")
		expected := "Buffer.New: capacity validation failed: invalid buffer capacity"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
		if !errors.Is(err, ErrInvalidCapacity) {
			t.Error("wrapped error should match sentinel via errors.Is")
		}
	})
}

func TestWrapClassified(t *testing.T) {
	tests := []struct {
		name     string
		wrapFn   func(error, string, string, string) error
		expected ErrorClass
	}{
		{"WrapTransient", WrapTransient, ErrorTransient},
		{"WrapInvalid", WrapInvalid, ErrorInvalid},
		{"WrapFatal", WrapFatal, ErrorFatal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.wrapFn(nil, "Buffer", "Op", "action") != nil {
				t.Fatal("wrapping nil should return nil")
			}

			err := test.wrapFn(ErrMetricRegistration, "Buffer", "Op", "action")

			var ce *ClassifiedError
			if !errors.As(err, &ce) {
				t.Fatal("expected a ClassifiedError")
			}
			if ce.Class != test.expected {
				t.Errorf("expected class %v, got %v", test.expected, ce.Class)
			}
			if ce.Component != "Buffer" || ce.Operation != "Op" {
				t.Errorf("unexpected component/operation: %s/%s", ce.Component, ce.Operation)
			}
			if !errors.Is(err, ErrMetricRegistration) {
				t.Error("classified error should preserve sentinel via errors.Is")
			}
			if !strings.Contains(err.Error(), "action failed") {
				t.Errorf("expected wrapped format, got %q", err.Error())
			}
		})
	}
}

func TestStandardErrors(t *testing.T) {
	sentinels := []error{
		ErrInvalidCapacity,
		ErrAlreadyRegistered,
		ErrMetricRegistration,
	}

	for _, err := range sentinels {
		if err == nil || err.Error() == "" {
			t.Errorf("sentinel %v should have a message", err)
		}
	}
}
