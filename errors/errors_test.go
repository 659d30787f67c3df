/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Country", "249")

	// Test error message
	expected := `Country with key "249" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("static instance", "testmodels.Country")

	expected := `static instance with key "testmodels.Country" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "name",
			message:  "required field missing",
			expected: `validation failed for field "name": required field missing`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "target must be a pointer to a struct",
			expected: "validation failed: target must be a pointer to a struct",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestParsingError(t *testing.T) {
	cause := errors.New("unterminated flow sequence")
	err := NewParsingError("testmodels.Country", "currencyCode", "Accepts", `["a"`, cause)

	expected := `could not parse @Accepts on testmodels.Country.currencyCode (value "[\"a\""): unterminated flow sequence`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsParsingError(err) {
		t.Error("IsParsingError should return true for ParsingError")
	}

	if !errors.Is(err, cause) {
		t.Error("ParsingError should unwrap to its cause")
	}

	var pe *ParsingError
	if !errors.As(err, &pe) || pe.Keyword != "Accepts" {
		t.Errorf("errors.As should expose the ParsingError, got %+v", pe)
	}
}

func TestParsingErrorWithoutKeyword(t *testing.T) {
	cause := errors.New("malformed struct tag")
	err := NewParsingError("testmodels.Country", "", "", "", cause)

	expected := "could not read annotations of testmodels.Country: malformed struct tag"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
	if !IsParsingError(err) {
		t.Error("IsParsingError should return true for a scan failure")
	}
}

func TestAccessorErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		expected string
	}{
		{
			name:     "unknown",
			err:      NewUnknownAccessorError("testmodels.Country", "fooBar"),
			sentinel: ErrUnknownAccessor,
			expected: `method "fooBar" is not a get or set accessor of testmodels.Country`,
		},
		{
			name:     "undeclared",
			err:      NewUndeclaredAccessorError("testmodels.Country", "getId"),
			sentinel: ErrUndeclaredAccessor,
			expected: `method "getId" was either not defined or does not have an annotation in testmodels.Country`,
		},
		{
			name:     "missing field",
			err:      NewMissingFieldError("testmodels.Country", "flag", "getFlag"),
			sentinel: ErrMissingField,
			expected: `field "flag" was not found in testmodels.Country, so method "getFlag" could not be called`,
		},
		{
			name:     "duplicate",
			err:      NewDuplicateAnnotationError("testmodels.Country", "currencyCode", "accepts"),
			sentinel: ErrDuplicateAnnotation,
			expected: "@accepts declared more than once on testmodels.Country.currencyCode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("%T should match %v", tt.err, tt.sentinel)
			}
		})
	}
}

func TestInvocationError(t *testing.T) {
	err := NewInvocationError("testmodels.Country", "setTest", "method", "setTest", io.ErrUnexpectedEOF)

	expected := "calling testmodels.Country.setTest (@method setTest): unexpected EOF"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsInvocationError(err) {
		t.Error("IsInvocationError should return true for InvocationError")
	}

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("InvocationError should unwrap to its cause")
	}
}

func TestErrorWrapping(t *testing.T) {
	// Test that wrapped errors still match
	original := NewUndeclaredAccessorError("testmodels.Country", "getId")
	wrapped := fmt.Errorf("dispatch failed: %w", original)

	if !errors.Is(wrapped, ErrUndeclaredAccessor) {
		t.Error("Wrapped UndeclaredAccessorError should still match ErrUndeclaredAccessor")
	}

	if !IsUndeclaredAccessor(wrapped) {
		t.Error("IsUndeclaredAccessor should work with wrapped errors")
	}
}

func TestSentinelErrors(t *testing.T) {
	// Ensure sentinel errors are distinct
	sentinels := []error{
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
		ErrParsing,
		ErrDuplicateAnnotation,
		ErrUnknownAccessor,
		ErrUndeclaredAccessor,
		ErrMissingField,
		ErrInvocation,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
