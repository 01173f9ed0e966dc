package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// DomainError standardizes faults that escape a handler. Handlers build their
// envelopes inline; this type exists for the middleware boundary, which is the
// last place a fault can be converted into a response instead of a crash.
type DomainError struct {
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewInternalError wraps an unexpected fault.
func NewInternalError(err error) *DomainError {
	return &DomainError{
		Message:    "An error occurred while processing your request.",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts an arbitrary error into a DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return &DomainError{Message: fiberErr.Message, HTTPStatus: fiberErr.Code}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &DomainError{Message: "resource not found", HTTPStatus: http.StatusNotFound}
	}
	return NewInternalError(err)
}
