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
	// ErrNotFound is returned when a key is not present in a shared map
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when registering something that is already registered
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInitFailed is returned when a specialization could not be initialized
	ErrInitFailed = errors.New("specialization initialization failed")

	// ErrTypeMismatch is returned when a stored value does not have the requested type
	ErrTypeMismatch = errors.New("type mismatch")
)

// NotFoundError represents an error when a key is not found
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

// AlreadyExistsError represents an error when something is registered twice
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

// InitError reports that the default value of a specialization could not be built.
// Cause carries the recovered panic or the factory error.
type InitError struct {
	Type  string
	Cause error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initialization of %s failed: %v", e.Type, e.Cause)
}

func (e *InitError) Is(target error) bool {
	return target == ErrInitFailed
}

func (e *InitError) Unwrap() error {
	return e.Cause
}

// TypeMismatchError reports a stored value whose dynamic type differs from the requested one
type TypeMismatchError struct {
	Key  string
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("value for key %q is %s, not %s", e.Key, e.Got, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind, key string) error {
	return &NotFoundError{Type: kind, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(kind, key string) error {
	return &AlreadyExistsError{Type: kind, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInitError creates a new InitError
func NewInitError(typeName string, cause error) error {
	return &InitError{Type: typeName, Cause: cause}
}

// NewTypeMismatchError creates a new TypeMismatchError
func NewTypeMismatchError(key, want, got string) error {
	return &TypeMismatchError{Key: key, Want: want, Got: got}
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

// IsInitFailed checks if an error is a specialization initialization failure
func IsInitFailed(err error) bool {
	return errors.Is(err, ErrInitFailed)
}

// IsTypeMismatch checks if an error is a type mismatch error
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}
