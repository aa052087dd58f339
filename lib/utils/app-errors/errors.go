package apperrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError is a missing or invalid input value. Maps to 400.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// NotFoundError is an id or reference that does not resolve. Maps to 404.
type NotFoundError struct {
	Entity string
	Ref    string
}

func (e NotFoundError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Ref)
}

// ConflictError is a state conflict with existing data. Maps to 409.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string {
	return e.Message
}

// UnauthorizedError is a failed credential check. Maps to 401.
type UnauthorizedError struct {
	Message string
}

func (e UnauthorizedError) Error() string {
	return e.Message
}

// ForbiddenError is an operation the caller may not perform. Maps to 403.
type ForbiddenError struct {
	Message string
}

func (e ForbiddenError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...interface{}) error {
	return ValidationError{Message: fmt.Sprintf(format, args...)}
}

func NewNotFound(entity, ref string) error {
	return NotFoundError{Entity: entity, Ref: ref}
}

func NewConflict(format string, args ...interface{}) error {
	return ConflictError{Message: fmt.Sprintf(format, args...)}
}

func NewUnauthorized(message string) error {
	return UnauthorizedError{Message: message}
}

func NewForbidden(message string) error {
	return ForbiddenError{Message: message}
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target UnauthorizedError
	return errors.As(err, &target)
}

func IsForbidden(err error) bool {
	var target ForbiddenError
	return errors.As(err, &target)
}
