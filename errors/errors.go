/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when an item or shared instance is not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when registering something that already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrParsing is returned when an annotation value cannot be parsed
	ErrParsing = errors.New("annotation parsing failed")

	// ErrDuplicateAnnotation is returned when a single-valued annotation is declared more than once
	ErrDuplicateAnnotation = errors.New("duplicate annotation")

	// ErrUnknownAccessor is returned when a method name has neither a get nor a set shape
	ErrUnknownAccessor = errors.New("unknown accessor")

	// ErrUndeclaredAccessor is returned when an accessor is missing from the declared allow-list
	ErrUndeclaredAccessor = errors.New("undeclared accessor")

	// ErrMissingField is returned when an accessor refers to a field the type does not have
	ErrMissingField = errors.New("missing field")

	// ErrInvocation is returned when a dispatched call fails for any other reason
	ErrInvocation = errors.New("invocation failed")
)

// NotFoundError represents an error when an item is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when something is already registered
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ParsingError reports an annotation whose raw value could not be parsed. An
// empty Keyword means the declarations of Class could not be read at all.
type ParsingError struct {
	Class   string
	Member  string
	Keyword string
	Value   string
	Err     error
}

func (e *ParsingError) Error() string {
	var msg string
	if e.Keyword == "" {
		msg = fmt.Sprintf("could not read annotations of %s", member(e.Class, e.Member))
	} else {
		msg = fmt.Sprintf("could not parse @%s on %s", e.Keyword, member(e.Class, e.Member))
		msg += fmt.Sprintf(" (value %q)", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParsingError) Is(target error) bool {
	return target == ErrParsing
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}

// DuplicateAnnotationError reports a single-valued annotation declared more than once on a member.
type DuplicateAnnotationError struct {
	Class   string
	Member  string
	Keyword string
}

func (e *DuplicateAnnotationError) Error() string {
	return fmt.Sprintf("@%s declared more than once on %s", e.Keyword, member(e.Class, e.Member))
}

func (e *DuplicateAnnotationError) Is(target error) bool {
	return target == ErrDuplicateAnnotation
}

// UnknownAccessorError reports a method name that is neither get- nor set-prefixed.
type UnknownAccessorError struct {
	Class string
	Name  string
}

func (e *UnknownAccessorError) Error() string {
	return fmt.Sprintf("method %q is not a get or set accessor of %s", e.Name, e.Class)
}

func (e *UnknownAccessorError) Is(target error) bool {
	return target == ErrUnknownAccessor
}

// UndeclaredAccessorError reports an accessor that was not declared on the type.
type UndeclaredAccessorError struct {
	Class string
	Name  string
}

func (e *UndeclaredAccessorError) Error() string {
	return fmt.Sprintf("method %q was either not defined or does not have an annotation in %s", e.Name, e.Class)
}

func (e *UndeclaredAccessorError) Is(target error) bool {
	return target == ErrUndeclaredAccessor
}

// MissingFieldError reports an accessor whose derived field does not exist.
type MissingFieldError struct {
	Class string
	Field string
	Name  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("field %q was not found in %s, so method %q could not be called", e.Field, e.Class, e.Name)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// InvocationError wraps any other failure raised while dispatching a call.
type InvocationError struct {
	Class   string
	Member  string
	Keyword string
	Value   string
	Err     error
}

func (e *InvocationError) Error() string {
	msg := fmt.Sprintf("calling %s", member(e.Class, e.Member))
	if e.Keyword != "" {
		msg += fmt.Sprintf(" (@%s %s)", e.Keyword, e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvocationError) Is(target error) bool {
	return target == ErrInvocation
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

func member(class, name string) string {
	if name == "" {
		return class
	}
	return class + "." + name
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(typ, key string) error {
	return &NotFoundError{Type: typ, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(typ, key string) error {
	return &AlreadyExistsError{Type: typ, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewParsingError creates a new ParsingError
func NewParsingError(class, member, keyword, value string, err error) error {
	return &ParsingError{Class: class, Member: member, Keyword: keyword, Value: value, Err: err}
}

// NewDuplicateAnnotationError creates a new DuplicateAnnotationError
func NewDuplicateAnnotationError(class, member, keyword string) error {
	return &DuplicateAnnotationError{Class: class, Member: member, Keyword: keyword}
}

// NewUnknownAccessorError creates a new UnknownAccessorError
func NewUnknownAccessorError(class, name string) error {
	return &UnknownAccessorError{Class: class, Name: name}
}

// NewUndeclaredAccessorError creates a new UndeclaredAccessorError
func NewUndeclaredAccessorError(class, name string) error {
	return &UndeclaredAccessorError{Class: class, Name: name}
}

// NewMissingFieldError creates a new MissingFieldError
func NewMissingFieldError(class, field, name string) error {
	return &MissingFieldError{Class: class, Field: field, Name: name}
}

// NewInvocationError creates a new InvocationError
func NewInvocationError(class, member, keyword, value string, err error) error {
	return &InvocationError{Class: class, Member: member, Keyword: keyword, Value: value, Err: err}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsParsingError checks if an error is an annotation parsing error
func IsParsingError(err error) bool {
	return errors.Is(err, ErrParsing)
}

// IsDuplicateAnnotation checks if an error is a duplicate annotation error
func IsDuplicateAnnotation(err error) bool {
	return errors.Is(err, ErrDuplicateAnnotation)
}

// IsUnknownAccessor checks if an error is an unknown accessor error
func IsUnknownAccessor(err error) bool {
	return errors.Is(err, ErrUnknownAccessor)
}

// IsUndeclaredAccessor checks if an error is an undeclared accessor error
func IsUndeclaredAccessor(err error) bool {
	return errors.Is(err, ErrUndeclaredAccessor)
}

// IsMissingField checks if an error is a missing field error
func IsMissingField(err error) bool {
	return errors.Is(err, ErrMissingField)
}

// IsInvocationError checks if an error is an invocation error
func IsInvocationError(err error) bool {
	return errors.Is(err, ErrInvocation)
}
