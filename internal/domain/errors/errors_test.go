package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		text string
	}{
		{"already exists", ErrAlreadyExists, "already exists"},
		{"not found", ErrNotFound, "not found"},
		{"invalid credentials", ErrInvalidCredentials, "invalid credentials"},
		{"insufficient stock", ErrInsufficientStock, "insufficient stock"},
		{"invalid transition", ErrInvalidTransition, "invalid status transition"},
		{"forbidden", ErrForbidden, "forbidden"},
		{"validation", ErrValidation, "validation failed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Error() != tc.text {
				t.Fatalf("unexpected message %q", tc.err.Error())
			}
			wrapped := fmt.Errorf("storage: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("wrapped error lost identity: %v", wrapped)
			}
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrAlreadyExists,
		ErrNotFound,
		ErrInvalidCredentials,
		ErrInsufficientStock,
		ErrInvalidTransition,
		ErrForbidden,
		ErrValidation,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && stdErrors.Is(a, b) {
				t.Fatalf("sentinels %v and %v must not match", a, b)
			}
		}
	}
}
