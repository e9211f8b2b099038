// Package apperr defines the error kinds surfaced by the production ledger and their HTTP mapping.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError indicates malformed or out-of-range input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s %s", e.Field, e.Message)
}

// NotFoundError indicates that a referenced entity is absent, or not visible to the caller.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// AuthorizationError indicates that the caller's role does not permit the operation.
// The message never names the target resource.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	if e.Message == "" {
		return "not authorized"
	}
	return e.Message
}

// ConflictError indicates a concurrent mutation or a state that does not allow the operation.
type ConflictError struct {
	Message string
	Err     error
}

func (e *ConflictError) Error() string { return "conflict: " + e.Message }

func (e *ConflictError) Unwrap() error { return e.Err }

// InternalError wraps an unexpected storage or infrastructure fault.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

func Validation(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

func NotFound(resource string, id int64) error {
	return &NotFoundError{Resource: resource, ID: id}
}

func Forbidden(msg string) error {
	return &AuthorizationError{Message: msg}
}

func Conflict(msg string) error {
	return &ConflictError{Message: msg}
}

// Internal wraps err unless it already carries one of the typed kinds.
func Internal(op string, err error) error {
	if err == nil {
		return nil
	}
	if Typed(err) {
		return err
	}
	return &InternalError{Op: op, Err: err}
}

// Typed reports whether err is (or wraps) one of the kinds defined in this package.
func Typed(err error) bool {
	var (
		v *ValidationError
		n *NotFoundError
		a *AuthorizationError
		c *ConflictError
		i *InternalError
	)
	return errors.As(err, &v) || errors.As(err, &n) || errors.As(err, &a) ||
		errors.As(err, &c) || errors.As(err, &i)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}

func IsForbidden(err error) bool {
	var a *AuthorizationError
	return errors.As(err, &a)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// HTTPStatus returns the status code the transport answers with for err.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsForbidden(err):
		return http.StatusForbidden
	case IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
