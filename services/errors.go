package services

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("not found")

// NotFoundError reports a missing record of the named entity.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ValidationError carries every violated constraint of one payload.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func notFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func invalid(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}

// storeErr wraps a failed store call so the endpoint boundary reports it as an
// internal error.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
